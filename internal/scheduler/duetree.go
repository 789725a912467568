package scheduler

import (
	"context"
	"fmt"
	"sort"

	"github.com/hnakamura/decksched/internal/deck"
)

// DueNode is one deck in the due tree. Raw counts cover only cards the
// deck owns directly; the displayed counts include descendants, clamped
// by the deck's effective limit.
type DueNode struct {
	Deck     deck.Deck
	Parent   int // index into Nodes, -1 for roots
	Children []int
	Depth    int

	// Effective remaining limits after clamping by every ancestor.
	// deck.Unlimited means no cap anywhere on the path to the root.
	EffNewLimit int
	EffRevLimit int

	RawNew   int
	RawRev   int
	RawLearn int

	// Displayed counts: self plus descendants, clamped once per node.
	New   int
	Rev   int
	Learn int
}

// DueTree is the transient forest of due counts, rebuilt on every full
// reset and never persisted. Nodes are stored in an arena with index
// links; parents always precede their children, so a forward pass is
// top-down and a reverse pass is bottom-up.
type DueTree struct {
	Nodes []DueNode
	roots []int
	index map[int64]int
}

// Node returns the tree node for the deck, if present.
func (t *DueTree) Node(deckID int64) (*DueNode, bool) {
	i, ok := t.index[deckID]
	if !ok {
		return nil, false
	}
	return &t.Nodes[i], true
}

// Roots returns the indexes of the root nodes in name order.
func (t *DueTree) Roots() []int {
	return t.roots
}

// SelfAndAncestors returns the deck and every ancestor, leaf first.
// Unknown decks yield just themselves so limit charging still works.
func (t *DueTree) SelfAndAncestors(deckID int64) []int64 {
	i, ok := t.index[deckID]
	if !ok {
		return []int64{deckID}
	}
	var ids []int64
	for i >= 0 {
		ids = append(ids, t.Nodes[i].Deck.ID)
		i = t.Nodes[i].Parent
	}
	return ids
}

// ChargeTaken reduces the effective remaining limits of the deck and
// every ancestor after an answer. The storage layer records the same
// charge in the taken-today counters; mirroring it here keeps later
// probes of a drained deck within the day's limits without a rebuild.
func (t *DueTree) ChargeTaken(deckID int64, newDelta, revDelta int) {
	i, ok := t.index[deckID]
	if !ok {
		return
	}
	for i >= 0 {
		n := &t.Nodes[i]
		n.EffNewLimit = chargeLimit(n.EffNewLimit, newDelta)
		n.EffRevLimit = chargeLimit(n.EffRevLimit, revDelta)
		i = n.Parent
	}
}

func chargeLimit(limit, delta int) int {
	if limit == deck.Unlimited {
		return limit
	}
	if limit -= delta; limit < 0 {
		return 0
	}
	return limit
}

// SubtreeDecks returns the deck ids of the scope's subtree in tree
// order, the scope itself first. Scope 0 means the whole forest.
func (t *DueTree) SubtreeDecks(scope int64) []int64 {
	var ids []int64
	var walk func(i int)
	walk = func(i int) {
		ids = append(ids, t.Nodes[i].Deck.ID)
		for _, c := range t.Nodes[i].Children {
			walk(c)
		}
	}
	if scope == 0 {
		for _, r := range t.roots {
			walk(r)
		}
		return ids
	}
	if i, ok := t.index[scope]; ok {
		walk(i)
	}
	return ids
}

// Totals returns the displayed counts for the scope: the scope node's
// counts, or the sum over roots when scope is 0.
func (t *DueTree) Totals(scope int64) (newCount, revCount, learnCount int) {
	if scope == 0 {
		for _, r := range t.roots {
			n := t.Nodes[r]
			newCount += n.New
			revCount += n.Rev
			learnCount += n.Learn
		}
		return newCount, revCount, learnCount
	}
	if n, ok := t.Node(scope); ok {
		return n.New, n.Rev, n.Learn
	}
	return 0, 0, 0
}

// buildArena arranges decks into an indexed forest. Decks whose parent
// is missing from the hierarchy are treated as roots rather than
// dropped, so a stray row cannot hide its subtree.
func buildArena(decks []deck.Deck) *DueTree {
	byID := make(map[int64]*deck.Deck, len(decks))
	for i := range decks {
		byID[decks[i].ID] = &decks[i]
	}

	childIDs := make(map[int64][]int64)
	var rootIDs []int64
	for i := range decks {
		d := decks[i]
		if d.ParentID.Valid && byID[d.ParentID.Int64] != nil {
			childIDs[d.ParentID.Int64] = append(childIDs[d.ParentID.Int64], d.ID)
		} else {
			rootIDs = append(rootIDs, d.ID)
		}
	}
	byName := func(ids []int64) {
		sort.Slice(ids, func(a, b int) bool { return byID[ids[a]].Name < byID[ids[b]].Name })
	}
	byName(rootIDs)
	for _, ids := range childIDs {
		byName(ids)
	}

	tree := &DueTree{
		Nodes: make([]DueNode, 0, len(decks)),
		index: make(map[int64]int, len(decks)),
	}
	var push func(id int64, parent, depth int)
	push = func(id int64, parent, depth int) {
		if _, seen := tree.index[id]; seen {
			return
		}
		i := len(tree.Nodes)
		tree.Nodes = append(tree.Nodes, DueNode{
			Deck:        *byID[id],
			Parent:      parent,
			Depth:       depth,
			EffNewLimit: deck.Unlimited,
			EffRevLimit: deck.Unlimited,
		})
		tree.index[id] = i
		if parent >= 0 {
			tree.Nodes[parent].Children = append(tree.Nodes[parent].Children, i)
		} else {
			tree.roots = append(tree.roots, i)
		}
		for _, c := range childIDs[id] {
			push(c, i, depth+1)
		}
	}
	for _, r := range rootIDs {
		push(r, -1, 0)
	}
	return tree
}

// propagateLimits computes each deck's effective remaining limit per
// kind: min(own remaining, parent's effective). Top-down, so a child
// can never draw more than any ancestor permits.
func (t *DueTree) propagateLimits(today int) {
	for i := range t.Nodes {
		n := &t.Nodes[i]
		n.EffNewLimit = n.Deck.RemainingNewToday(today)
		n.EffRevLimit = n.Deck.RemainingRevToday(today)
		if n.Parent >= 0 {
			p := t.Nodes[n.Parent]
			n.EffNewLimit = minLimit(n.EffNewLimit, p.EffNewLimit)
			n.EffRevLimit = minLimit(n.EffRevLimit, p.EffRevLimit)
		}
	}
}

// aggregateCounts computes displayed counts bottom-up: a deck shows its
// own cards plus its children's displayed counts, clamped once by its
// effective limit. A count used up by a limit at a lower level is not
// available again at a higher one. Learning has no daily limit.
func (t *DueTree) aggregateCounts() {
	for i := len(t.Nodes) - 1; i >= 0; i-- {
		n := &t.Nodes[i]
		n.New = n.RawNew
		n.Rev = n.RawRev
		n.Learn = n.RawLearn
		for _, c := range n.Children {
			n.New += t.Nodes[c].New
			n.Rev += t.Nodes[c].Rev
			n.Learn += t.Nodes[c].Learn
		}
		n.New = clampCount(n.New, n.EffNewLimit)
		n.Rev = clampCount(n.Rev, n.EffRevLimit)
	}
}

// minLimit treats deck.Unlimited as no cap.
func minLimit(a, b int) int {
	if a == deck.Unlimited {
		return b
	}
	if b == deck.Unlimited {
		return a
	}
	if b < a {
		return b
	}
	return a
}

func clampCount(count, limit int) int {
	if limit == deck.Unlimited || count <= limit {
		return count
	}
	return limit
}

// buildTree loads the hierarchy, propagates limits, and fills raw
// counts for every deck. This is the only whole-hierarchy walk the
// scheduler performs; everything else is per-deck.
func (s *Scheduler) buildTree(ctx context.Context, t Timing) (*DueTree, error) {
	decks, err := s.store.DeckHierarchy(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deck hierarchy: %w", err)
	}
	tree := buildArena(decks)
	tree.propagateLimits(t.Today)

	for i := range tree.Nodes {
		n := &tree.Nodes[i]
		deckID := n.Deck.ID

		if lim := s.countCap(n.EffNewLimit); lim > 0 {
			if n.RawNew, err = s.store.CountDue(ctx, t, deckID, KindNew, lim); err != nil {
				return nil, fmt.Errorf("count new(%d): %w", deckID, err)
			}
		}
		if lim := s.countCap(n.EffRevLimit); lim > 0 {
			if n.RawRev, err = s.store.CountDue(ctx, t, deckID, KindReview, lim); err != nil {
				return nil, fmt.Errorf("count review(%d): %w", deckID, err)
			}
		}
		if n.RawLearn, err = s.store.CountDue(ctx, t, deckID, KindLearn, s.cfg.ReportLimit); err != nil {
			return nil, fmt.Errorf("count learn(%d): %w", deckID, err)
		}
	}

	tree.aggregateCounts()
	return tree, nil
}

// countCap bounds a raw-count query by the effective limit, or by the
// report limit when the deck is unlimited.
func (s *Scheduler) countCap(effLimit int) int {
	if effLimit == deck.Unlimited || effLimit > s.cfg.ReportLimit {
		return s.cfg.ReportLimit
	}
	return effLimit
}
