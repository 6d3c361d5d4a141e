// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pearlmatch

import (
	"github.com/sirupsen/logrus"
)

type displaceMatcher struct {
	verbose bool
}

// DisplaceMatcher returns a Matcher that processes buyer/group
// candidates in descending score order, seats buyers provisionally,
// and displaces the weakest occupant of a full group when a
// higher-scoring buyer arrives. Displaced buyers are re-queued against
// their next viable preference until the pool drains. Worst case is
// O(B*G*log(B*G)) for B buyers and G groups, due to repeated push/pop
// across cascading displacements.
func DisplaceMatcher(verbose bool) Matcher {
	return displaceMatcher{verbose}
}

// matchRun owns all mutable state of one Match call: the candidate
// pool, the seat tables and the per-buyer seated flags. Nothing is
// shared outside the run.
type matchRun struct {
	m      displaceMatcher
	buyers []Buyer
	groups []Group
	pool   *candidatePool
	table  *occupancyTable
	seated []bool
}

func (m displaceMatcher) Match(buyers []Buyer, groups []Group) (Assignment, bool) {
	capacity := 0
	if len(groups) > 0 {
		capacity = len(buyers) / len(groups)
	}

	run := &matchRun{
		m:      m,
		buyers: buyers,
		groups: groups,
		pool:   newCandidatePool(len(buyers) * len(groups)),
		table:  newOccupancyTable(len(groups), capacity),
		seated: make([]bool, len(buyers)),
	}

	if capacity > 0 {
		for b := range buyers {
			for g := range groups {
				run.pool.push(candidate{run.affinity(b, g), g, b})
			}
		}
		for !run.pool.empty() {
			run.process(run.pool.popBest())
		}
	}

	assignment := make(Assignment, len(groups))
	seated := 0
	perfect := true
	for g := range groups {
		seats := run.table.seats[g]
		assignment[g] = seats
		if len(seats) != capacity {
			perfect = false
		}
		seated += len(seats)
	}
	if seated != len(buyers) {
		perfect = false
	}
	return assignment, perfect
}

func (r *matchRun) affinity(buyer, group int) int64 {
	return Affinity(r.buyers[buyer].Goals, r.groups[group].Features)
}

// process routes one candidate. A candidate aimed at its buyer's top
// preference goes straight to the displacement engine; otherwise the
// resolver picks the buyer's current best target, and a mismatch for a
// still-unseated buyer becomes a corrected candidate instead of a
// seating attempt.
func (r *matchRun) process(c candidate) {
	if r.buyers[c.buyer].Prefs[0] == c.group {
		r.seat(c)
		return
	}

	target := r.resolve(c.buyer)
	score := r.affinity(c.buyer, target)

	if target != c.group && !r.seated[c.buyer] {
		// Re-aim the buyer at the resolved group. The corrected
		// candidate keeps the higher of the two scores as its queue
		// position so the rivals it was rescored against cannot
		// overtake it; the recorded entry restores the real score at
		// pop time.
		r.pool.recordBest(c.buyer, score)
		if c.score > score {
			r.pool.push(candidate{c.score, target, c.buyer})
		} else {
			r.pool.push(candidate{score, target, c.buyer})
		}
		if r.m.verbose {
			logrus.Debugf("buyer %d redirected from group %d to group %d at score %d",
				c.buyer, c.group, target, score)
		}
		return
	}

	r.seat(candidate{score, c.group, c.buyer})
}

// resolve returns the first group in the buyer's preference order that
// either has room or holds a weakest seat the buyer outscores. When no
// group qualifies it falls back to the first preference; the
// displacement engine no-ops there and a later candidate retries the
// buyer.
func (r *matchRun) resolve(buyer int) int {
	prefs := r.buyers[buyer].Prefs
	for _, g := range prefs {
		if r.table.hasRoom(g) {
			return g
		}
		if r.affinity(buyer, g) > r.table.minSeat(g).Score {
			return g
		}
	}
	return prefs[0]
}

// seat attempts to place the candidate's buyer into its group. This is
// the only place seats are created or destroyed. An eviction requires
// a strictly higher score, so a group's total seated score never
// decreases and no equal-score swap cycle can occur.
func (r *matchRun) seat(c candidate) {
	if r.seated[c.buyer] {
		return
	}

	if r.table.hasRoom(c.group) {
		r.table.insert(c.group, Seat{c.score, c.buyer})
		r.seated[c.buyer] = true
		return
	}

	min := r.table.minSeat(c.group)
	if c.score <= min.Score {
		return
	}

	r.table.evict(c.group, min)
	r.seated[min.Buyer] = false
	r.table.insert(c.group, Seat{c.score, c.buyer})
	r.seated[c.buyer] = true

	next := r.resolve(min.Buyer)
	r.pool.push(candidate{r.affinity(min.Buyer, next), next, min.Buyer})
	if r.m.verbose {
		logrus.Debugf("group %d: buyer %d(%d) displaced buyer %d(%d), requeued against group %d",
			c.group, c.buyer, c.score, min.Buyer, min.Score, next)
	}
}
