package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Consume(t *testing.T) {
	t.Run("removes the answered card and decrements its counter", func(t *testing.T) {
		sess := newSession(0)
		sess.newCount = 2
		sess.queues[KindNew].append([]queueEntry{
			{cardID: 1, noteID: 10},
			{cardID: 2, noteID: 20},
		})

		sess.consume(1, 10)

		assert.Equal(t, 1, sess.newCount)
		e, ok := sess.queues[KindNew].front()
		assert.True(t, ok)
		assert.Equal(t, int64(2), e.cardID)
	})

	t.Run("removes queued siblings from every queue without decrementing", func(t *testing.T) {
		sess := newSession(0)
		sess.newCount = 2
		sess.revCount = 1
		sess.queues[KindNew].append([]queueEntry{
			{cardID: 1, noteID: 10},
			{cardID: 2, noteID: 10},
		})
		sess.queues[KindReview].append([]queueEntry{
			{cardID: 3, noteID: 10},
		})

		sess.consume(1, 10)

		assert.True(t, sess.queues[KindNew].empty())
		assert.True(t, sess.queues[KindReview].empty())
		// Only the answered card decrements; buried siblings leave the
		// counts overstated until the next reset.
		assert.Equal(t, 1, sess.newCount)
		assert.Equal(t, 1, sess.revCount)
	})

	t.Run("card absent from all queues still removes siblings", func(t *testing.T) {
		sess := newSession(0)
		sess.revCount = 1
		sess.queues[KindReview].append([]queueEntry{
			{cardID: 5, noteID: 10},
		})

		sess.consume(99, 10)

		assert.True(t, sess.queues[KindReview].empty())
		assert.Equal(t, 1, sess.revCount)
	})
}

func TestSession_DropCard(t *testing.T) {
	sess := newSession(0)
	sess.learnCount = 2
	sess.queues[KindLearn].append([]queueEntry{
		{cardID: 1, noteID: 10},
		{cardID: 2, noteID: 20},
	})

	sess.dropCard(KindLearn, 1)
	assert.Equal(t, 1, sess.learnCount)

	// Dropping an absent card does not decrement.
	sess.dropCard(KindLearn, 99)
	assert.Equal(t, 1, sess.learnCount)
}

func TestSession_Count(t *testing.T) {
	sess := newSession(0)
	sess.newCount = 1
	sess.revCount = 2
	sess.learnCount = 3

	assert.Equal(t, 1, sess.count(KindNew))
	assert.Equal(t, 2, sess.count(KindReview))
	// Both learning kinds share one counter.
	assert.Equal(t, 3, sess.count(KindLearn))
	assert.Equal(t, 3, sess.count(KindDayLearn))
	assert.Equal(t, 6, sess.totalCount())

	sess.decrement(KindDayLearn)
	assert.Equal(t, 2, sess.count(KindLearn))
}
