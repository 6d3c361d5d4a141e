// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pearlmatch provides batch assignment of buyers to
// capacity-bounded groups that respects affinity scores and
// per-buyer preference orders.
package pearlmatch

// Vector is an integer feature or goal vector.
type Vector []int64

// Buyer identity is its index in the slice passed to Match.
type Buyer struct {
	Goals Vector
	Prefs []int // group indices, most preferred first
	Info  interface{}
}

// Group identity is its index in the slice passed to Match. Its
// capacity is implicit: the buyer count divided by the group count.
type Group struct {
	Features Vector
	Info     interface{}
}

// Seat is one occupied slot in a group.
type Seat struct {
	Score int64
	Buyer int
}

// Assignment maps every group index to its seated buyers.
type Assignment map[int][]Seat

type Matcher interface {
	// Match seats every buyer into a group. perfect reports that each
	// buyer holds exactly one seat and each group is filled to
	// capacity, which holds whenever the buyer count divides evenly
	// among the groups.
	Match(buyers []Buyer, groups []Group) (assignment Assignment, perfect bool)
}

// Affinity returns the dot product of a buyer's goal vector and a
// group's feature vector. Vectors of unequal length are truncated to
// the shorter one.
func Affinity(goals, features Vector) int64 {
	n := len(goals)
	if len(features) < n {
		n = len(features)
	}
	var score int64
	for i := 0; i < n; i++ {
		score += goals[i] * features[i]
	}
	return score
}
