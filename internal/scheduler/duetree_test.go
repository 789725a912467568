package scheduler

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnakamura/decksched/internal/deck"
)

func makeDeck(id, parentID int64, name string, newPerDay, revPerDay int) deck.Deck {
	d := deck.Deck{
		ID:        id,
		Name:      name,
		NewPerDay: newPerDay,
		RevPerDay: revPerDay,
	}
	if parentID != 0 {
		d.ParentID = sql.NullInt64{Int64: parentID, Valid: true}
	}
	return d
}

func TestBuildArena(t *testing.T) {
	t.Run("parents precede children", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(2, 1, "A::B", deck.Unlimited, deck.Unlimited),
			makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
			makeDeck(3, 2, "A::B::C", deck.Unlimited, deck.Unlimited),
		})

		require.Len(t, tree.Nodes, 3)
		for i, n := range tree.Nodes {
			if n.Parent >= 0 {
				assert.Less(t, n.Parent, i)
			}
		}
		root, ok := tree.Node(1)
		require.True(t, ok)
		assert.Equal(t, 0, root.Depth)
		leaf, ok := tree.Node(3)
		require.True(t, ok)
		assert.Equal(t, 2, leaf.Depth)
	})

	t.Run("deck with a missing parent becomes a root", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
			makeDeck(4, 99, "Orphan", deck.Unlimited, deck.Unlimited),
		})

		assert.Len(t, tree.Roots(), 2)
		n, ok := tree.Node(4)
		require.True(t, ok)
		assert.Equal(t, -1, n.Parent)
	})

	t.Run("siblings are ordered by name", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "Zeta", deck.Unlimited, deck.Unlimited),
			makeDeck(2, 0, "Alpha", deck.Unlimited, deck.Unlimited),
		})

		require.Len(t, tree.Roots(), 2)
		assert.Equal(t, "Alpha", tree.Nodes[tree.Roots()[0]].Deck.Name)
		assert.Equal(t, "Zeta", tree.Nodes[tree.Roots()[1]].Deck.Name)
	})
}

func TestDueTree_PropagateLimits(t *testing.T) {
	const today = 20000

	t.Run("child limit is clamped by every ancestor", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", 3, 100),
			makeDeck(2, 1, "A::B", 2, deck.Unlimited),
			makeDeck(3, 1, "A::C", deck.Unlimited, 10),
		})
		tree.propagateLimits(today)

		a, _ := tree.Node(1)
		b, _ := tree.Node(2)
		c, _ := tree.Node(3)
		assert.Equal(t, 3, a.EffNewLimit)
		assert.Equal(t, 2, b.EffNewLimit)
		// Unlimited child inherits the parent's cap.
		assert.Equal(t, 3, c.EffNewLimit)
		assert.Equal(t, 100, b.EffRevLimit)
		assert.Equal(t, 10, c.EffRevLimit)
	})

	t.Run("unlimited everywhere stays unlimited", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
			makeDeck(2, 1, "A::B", deck.Unlimited, deck.Unlimited),
		})
		tree.propagateLimits(today)

		b, _ := tree.Node(2)
		assert.Equal(t, deck.Unlimited, b.EffNewLimit)
		assert.Equal(t, deck.Unlimited, b.EffRevLimit)
	})

	t.Run("cards taken today reduce the remaining limit", func(t *testing.T) {
		d := makeDeck(1, 0, "A", 5, 100)
		d.NewTakenToday = 3
		d.CountersDay = today
		tree := buildArena([]deck.Deck{d})
		tree.propagateLimits(today)

		n, _ := tree.Node(1)
		assert.Equal(t, 2, n.EffNewLimit)
	})

	t.Run("counters from an older day are ignored", func(t *testing.T) {
		d := makeDeck(1, 0, "A", 5, 100)
		d.NewTakenToday = 3
		d.CountersDay = today - 1
		tree := buildArena([]deck.Deck{d})
		tree.propagateLimits(today)

		n, _ := tree.Node(1)
		assert.Equal(t, 5, n.EffNewLimit)
	})
}

func TestDueTree_ChargeTaken(t *testing.T) {
	const today = 20000

	t.Run("an answer charges the deck and every ancestor", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", 10, 20),
			makeDeck(2, 1, "A::B", 5, deck.Unlimited),
			makeDeck(3, 2, "A::B::C", 2, 4),
		})
		tree.propagateLimits(today)

		tree.ChargeTaken(3, 1, 0)
		tree.ChargeTaken(3, 0, 1)

		a, _ := tree.Node(1)
		b, _ := tree.Node(2)
		c, _ := tree.Node(3)
		assert.Equal(t, 1, c.EffNewLimit)
		assert.Equal(t, 4, b.EffNewLimit)
		assert.Equal(t, 9, a.EffNewLimit)
		assert.Equal(t, 3, c.EffRevLimit)
		assert.Equal(t, 19, a.EffRevLimit)
	})

	t.Run("unlimited decks stay unlimited", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
			makeDeck(2, 1, "A::B", 1, deck.Unlimited),
		})
		tree.propagateLimits(today)

		tree.ChargeTaken(2, 1, 1)

		a, _ := tree.Node(1)
		b, _ := tree.Node(2)
		assert.Equal(t, deck.Unlimited, a.EffNewLimit)
		assert.Equal(t, 0, b.EffNewLimit)
		assert.Equal(t, deck.Unlimited, b.EffRevLimit)
	})

	t.Run("limits never go below zero", func(t *testing.T) {
		tree := buildArena([]deck.Deck{makeDeck(1, 0, "A", 1, 1)})
		tree.propagateLimits(today)

		tree.ChargeTaken(1, 1, 0)
		tree.ChargeTaken(1, 1, 0)

		n, _ := tree.Node(1)
		assert.Equal(t, 0, n.EffNewLimit)
	})

	t.Run("unknown deck is a no-op", func(t *testing.T) {
		tree := buildArena([]deck.Deck{makeDeck(1, 0, "A", 1, 1)})
		tree.propagateLimits(today)
		tree.ChargeTaken(42, 1, 1)

		n, _ := tree.Node(1)
		assert.Equal(t, 1, n.EffNewLimit)
	})
}

func TestDueTree_AggregateCounts(t *testing.T) {
	const today = 20000

	t.Run("parent shows children clamped by its own limit", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", 3, deck.Unlimited),
			makeDeck(2, 1, "A::B", 2, deck.Unlimited),
			makeDeck(3, 1, "A::C", 2, deck.Unlimited),
		})
		tree.propagateLimits(today)
		setRaw(tree, 2, 10, 0, 0)
		setRaw(tree, 3, 10, 0, 0)
		tree.aggregateCounts()

		b, _ := tree.Node(2)
		c, _ := tree.Node(3)
		a, _ := tree.Node(1)
		assert.Equal(t, 2, b.New)
		assert.Equal(t, 2, c.New)
		// Children could deliver 4 but the parent caps the display at 3.
		assert.Equal(t, 3, a.New)
	})

	t.Run("unlimited decks sum without clamping", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
			makeDeck(2, 1, "A::B", deck.Unlimited, deck.Unlimited),
		})
		tree.propagateLimits(today)
		setRaw(tree, 1, 5, 7, 1)
		setRaw(tree, 2, 3, 2, 4)
		tree.aggregateCounts()

		a, _ := tree.Node(1)
		assert.Equal(t, 8, a.New)
		assert.Equal(t, 9, a.Rev)
		assert.Equal(t, 5, a.Learn)
	})

	t.Run("learning counts are never limited", func(t *testing.T) {
		tree := buildArena([]deck.Deck{
			makeDeck(1, 0, "A", 1, 1),
			makeDeck(2, 1, "A::B", 1, 1),
		})
		tree.propagateLimits(today)
		setRaw(tree, 1, 0, 0, 50)
		setRaw(tree, 2, 0, 0, 50)
		tree.aggregateCounts()

		a, _ := tree.Node(1)
		assert.Equal(t, 100, a.Learn)
	})
}

func setRaw(tree *DueTree, deckID int64, rawNew, rawRev, rawLearn int) {
	i := tree.index[deckID]
	tree.Nodes[i].RawNew = rawNew
	tree.Nodes[i].RawRev = rawRev
	tree.Nodes[i].RawLearn = rawLearn
}

func TestDueTree_SelfAndAncestors(t *testing.T) {
	tree := buildArena([]deck.Deck{
		makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
		makeDeck(2, 1, "A::B", deck.Unlimited, deck.Unlimited),
		makeDeck(3, 2, "A::B::C", deck.Unlimited, deck.Unlimited),
	})

	assert.Equal(t, []int64{3, 2, 1}, tree.SelfAndAncestors(3))
	assert.Equal(t, []int64{1}, tree.SelfAndAncestors(1))
	// Unknown decks still charge themselves.
	assert.Equal(t, []int64{42}, tree.SelfAndAncestors(42))
}

func TestDueTree_SubtreeDecks(t *testing.T) {
	tree := buildArena([]deck.Deck{
		makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
		makeDeck(2, 1, "A::B", deck.Unlimited, deck.Unlimited),
		makeDeck(3, 0, "Z", deck.Unlimited, deck.Unlimited),
	})

	assert.Equal(t, []int64{1, 2, 3}, tree.SubtreeDecks(0))
	assert.Equal(t, []int64{1, 2}, tree.SubtreeDecks(1))
	assert.Equal(t, []int64{3}, tree.SubtreeDecks(3))
	assert.Empty(t, tree.SubtreeDecks(42))
}

func TestDueTree_Totals(t *testing.T) {
	tree := buildArena([]deck.Deck{
		makeDeck(1, 0, "A", deck.Unlimited, deck.Unlimited),
		makeDeck(2, 0, "B", deck.Unlimited, deck.Unlimited),
	})
	tree.propagateLimits(20000)
	setRaw(tree, 1, 1, 2, 3)
	setRaw(tree, 2, 4, 5, 6)
	tree.aggregateCounts()

	n, r, l := tree.Totals(0)
	assert.Equal(t, 5, n)
	assert.Equal(t, 7, r)
	assert.Equal(t, 9, l)

	n, r, l = tree.Totals(2)
	assert.Equal(t, 4, n)
	assert.Equal(t, 5, r)
	assert.Equal(t, 6, l)
}
