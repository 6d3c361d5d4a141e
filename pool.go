// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pearlmatch

import "container/heap"

// candidate is a pending evaluation of one buyer against one group at
// a known score.
type candidate struct {
	score int64
	group int
	buyer int
}

// candidateHeap orders candidates by score descending, ties broken by
// the lower group index and then the lower buyer index, so pop order
// is total and deterministic.
type candidateHeap []candidate

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	if h[i].group != h[j].group {
		return h[i].group < h[j].group
	}
	return h[i].buyer < h[j].buyer
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }

func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]
	return c
}

// candidatePool is the matcher's work queue. It may hold several live
// candidates for the same buyer; bestKnown carries a buyer's most
// recently discovered score so a stale candidate is corrected when it
// surfaces, without rewriting the heap.
type candidatePool struct {
	heap      candidateHeap
	bestKnown map[int]int64
}

func newCandidatePool(size int) *candidatePool {
	return &candidatePool{
		heap:      make(candidateHeap, 0, size),
		bestKnown: make(map[int]int64),
	}
}

func (p *candidatePool) push(c candidate) { heap.Push(&p.heap, c) }

func (p *candidatePool) empty() bool { return len(p.heap) == 0 }

// popBest removes the highest-ranked candidate. A pending bestKnown
// entry for the candidate's buyer supersedes the popped score and is
// consumed.
func (p *candidatePool) popBest() candidate {
	c := heap.Pop(&p.heap).(candidate)
	if score, ok := p.bestKnown[c.buyer]; ok {
		c.score = score
		delete(p.bestKnown, c.buyer)
	}
	return c
}

// recordBest notes that a better option was discovered for a buyer
// before its corresponding candidate was popped.
func (p *candidatePool) recordBest(buyer int, score int64) {
	p.bestKnown[buyer] = score
}
