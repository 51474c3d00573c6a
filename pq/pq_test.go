package pq_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/densepath/pq"
)

func TestQueue_NewIsEmpty(t *testing.T) {
	q := pq.New[string, int]()
	require.True(t, q.IsEmpty())
	require.Equal(t, 0, q.Len())
	require.NoError(t, q.Validate())
}

func TestQueue_EmptyErrors(t *testing.T) {
	q := pq.New[string, int]()

	_, err := q.PeekFirst()
	require.ErrorIs(t, err, pq.ErrEmptyQueue)
	_, err = q.PeekFirstPriority()
	require.ErrorIs(t, err, pq.ErrEmptyQueue)
	_, err = q.RemoveFirst()
	require.ErrorIs(t, err, pq.ErrEmptyQueue)
}

func TestQueue_NilErrors(t *testing.T) {
	var q *pq.Queue[string, int]

	require.True(t, q.IsEmpty())
	require.ErrorIs(t, q.Insert("a", 1), pq.ErrNilQueue)
	_, err := q.RemoveFirst()
	require.ErrorIs(t, err, pq.ErrNilQueue)
	_, err = q.PeekFirst()
	require.ErrorIs(t, err, pq.ErrNilQueue)
	require.ErrorIs(t, q.Destroy(), pq.ErrNilQueue)
}

func TestQueue_InsertPeekRemove(t *testing.T) {
	q := pq.New[string, int]()
	require.NoError(t, q.Insert("c", 3))
	require.NoError(t, q.Insert("a", 1))
	require.NoError(t, q.Insert("b", 2))

	v, err := q.PeekFirst()
	require.NoError(t, err)
	require.Equal(t, "a", v)
	p, err := q.PeekFirstPriority()
	require.NoError(t, err)
	require.Equal(t, 1, p)
	require.Equal(t, 3, q.Len(), "peek must not mutate")

	for _, want := range []string{"a", "b", "c"} {
		got, err := q.RemoveFirst()
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NoError(t, q.Validate())
	}
	require.True(t, q.IsEmpty())
}

func TestQueue_InsertSmallerThanRoot(t *testing.T) {
	// A new minimum must climb all the way to index 0 and stop there.
	q := pq.New[int, int64]()
	for p := int64(100); p > 0; p -= 7 {
		require.NoError(t, q.Insert(int(p), p))
		require.NoError(t, q.Validate())
	}
	require.NoError(t, q.Insert(-1, -5))
	p, err := q.PeekFirstPriority()
	require.NoError(t, err)
	require.Equal(t, int64(-5), p)
}

func TestQueue_DuplicatePriorities(t *testing.T) {
	q := pq.New[int, int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, q.Insert(i, 4))
	}
	for i := 0; i < 10; i++ {
		p, err := q.PeekFirstPriority()
		require.NoError(t, err)
		require.Equal(t, 4, p)
		_, err = q.RemoveFirst()
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	}
}

func TestQueue_Destroy(t *testing.T) {
	type payload struct{ id int }
	q := pq.New[*payload, int]()
	kept := &payload{id: 1}
	require.NoError(t, q.Insert(kept, 1))
	require.NoError(t, q.Insert(&payload{id: 2}, 2))

	require.NoError(t, q.Destroy())
	require.True(t, q.IsEmpty())
	require.ErrorIs(t, q.Insert(kept, 0), pq.ErrDestroyed)
	_, err := q.RemoveFirst()
	require.ErrorIs(t, err, pq.ErrDestroyed)
	require.ErrorIs(t, q.Destroy(), pq.ErrDestroyed)

	// Caller-owned payloads survive destruction.
	require.Equal(t, 1, kept.id)
}

// TestQueue_RandomizedAgainstSorted drives random insert/remove sequences
// and checks every extraction against a sorted reference slice.
func TestQueue_RandomizedAgainstSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		q := pq.New[int, int]()
		var ref []int
		inserted, removed := 0, 0

		for step := 0; step < 300; step++ {
			if len(ref) == 0 || rng.Intn(3) > 0 {
				p := rng.Intn(50) - 10
				require.NoError(t, q.Insert(p, p))
				ref = append(ref, p)
				inserted++
			} else {
				sort.Ints(ref)
				got, err := q.RemoveFirst()
				require.NoError(t, err)
				require.Equal(t, ref[0], got)
				ref = ref[1:]
				removed++
			}
			require.NoError(t, q.Validate())
			require.Equal(t, inserted-removed, q.Len())
		}

		sort.Ints(ref)
		for _, want := range ref {
			got, err := q.RemoveFirst()
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
		require.True(t, q.IsEmpty())
	}
}

func TestQueue_SizeAccounting(t *testing.T) {
	q := pq.New[struct{}, uint8]()
	const n, k = 37, 20
	for i := 0; i < n; i++ {
		require.NoError(t, q.Insert(struct{}{}, uint8(i*13%7)))
	}
	for i := 0; i < k; i++ {
		_, err := q.RemoveFirst()
		require.NoError(t, err)
	}
	require.Equal(t, n-k, q.Len())
}
