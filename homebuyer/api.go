// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package homebuyer uses pearlmatch to place home buyers into
// neighborhoods by pearl-value affinity and declared priorities.
package homebuyer

// HomeBuyer identity is its position in the input file.
type HomeBuyer struct {
	ID         int
	Goals      []int64
	Priorities []int // neighborhood identities, most preferred first
}

// Neighborhood identity is its position in the input file. Capacity is
// implicit: the buyer count divided by the neighborhood count.
type Neighborhood struct {
	ID       int
	Features []int64
}

// Matcher holds the placement options.
type Matcher struct {
	// Verbose enables per-step progress logging at debug level.
	Verbose bool `yaml:"verbose" json:"verbose"`

	// Strict makes Match fail when the placement is not perfect
	// instead of returning a partial one.
	Strict bool `yaml:"strict" json:"strict"`
}

type Summary struct {
	Buyers        int   `json:"buyers"`
	Neighborhoods int   `json:"neighborhoods"`
	Capacity      int   `json:"capacity"`
	Seated        int   `json:"seated"`
	TotalScore    int64 `json:"total_score"`
	Perfect       bool  `json:"perfect"`
}
