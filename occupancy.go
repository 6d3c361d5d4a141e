// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pearlmatch

// occupancyTable holds the current seats of every group. Each group
// owns at most capacity seats; seats are created and destroyed only by
// the displacement engine.
type occupancyTable struct {
	seats    [][]Seat
	capacity int
}

func newOccupancyTable(groups, capacity int) *occupancyTable {
	t := &occupancyTable{
		seats:    make([][]Seat, groups),
		capacity: capacity,
	}
	for i := range t.seats {
		t.seats[i] = make([]Seat, 0, capacity)
	}
	return t
}

func (t *occupancyTable) hasRoom(group int) bool {
	return len(t.seats[group]) < t.capacity
}

// minSeat returns the weakest occupant of a group, ties going to the
// lower buyer index. The group must hold at least one seat.
func (t *occupancyTable) minSeat(group int) Seat {
	min := t.seats[group][0]
	for _, s := range t.seats[group][1:] {
		if s.Score < min.Score || s.Score == min.Score && s.Buyer < min.Buyer {
			min = s
		}
	}
	return min
}

// insert adds a seat to a group that has room.
func (t *occupancyTable) insert(group int, s Seat) {
	t.seats[group] = append(t.seats[group], s)
}

// evict removes an exact seat from a group.
func (t *occupancyTable) evict(group int, s Seat) {
	held := t.seats[group]
	for i := range held {
		if held[i] == s {
			t.seats[group] = append(held[:i], held[i+1:]...)
			return
		}
	}
}
