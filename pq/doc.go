// Package pq implements a binary min-heap priority queue on top of
// dynarray.Array.
//
// Overview:
//
//   - The backing array is read as a complete binary tree: the children of
//     index i live at 2i+1 and 2i+2, its parent at (i-1)/2.
//   - Heap property: for every non-root index i, priority(parent(i)) <= priority(i).
//     It is restored after every mutation and never required to hold mid-mutation.
//   - Lower priority values come out first.
//
// Operations:
//
//   - Insert:      append at the end, then sift up while strictly smaller than the
//     parent. The climb stops explicitly at the root (index 0).
//   - RemoveFirst: save the root, move the last entry into the root slot, shrink by
//     one, then sift down iteratively towards the smallest of {node, left, right}.
//   - PeekFirst / PeekFirstPriority: read the root without mutation.
//   - Destroy:     release every remaining entry; the queue rejects further use.
//
// Ownership:
//
//   - Entries are stored by value. RemoveFirst hands the payload to the caller and
//     zeroes the vacated slot, so the queue keeps no reference to it afterwards.
//
// Errors (sentinel):
//
//   - ErrNilQueue      method called on a nil *Queue.
//   - ErrEmptyQueue    peek/remove on an empty queue.
//   - ErrDestroyed     any mutation or read after Destroy.
//   - ErrHeapViolation reported by Validate when the heap property is broken.
//
// Complexity:
//
//   - Insert, RemoveFirst: O(log n); Peek*, IsEmpty, Len: O(1); Validate: O(n).
//
// Thread safety:
//
//   - A Queue is not safe for concurrent use; it is meant to be owned by one caller.
package pq
