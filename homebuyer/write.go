// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homebuyer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/milandre/pearlmatch"
)

// WriteAssignment writes one line per neighborhood in ascending
// identity order: `N<id>: H<buyer>(<score>) ...`. Buyers within a line
// are ordered by descending score, ties by ascending buyer identity,
// so the output is byte-identical across runs.
func WriteAssignment(w io.Writer, assignment pearlmatch.Assignment) error {
	groups := make([]int, 0, len(assignment))
	for g := range assignment {
		groups = append(groups, g)
	}
	sort.Ints(groups)

	bw := bufio.NewWriter(w)
	for _, g := range groups {
		seats := append([]pearlmatch.Seat(nil), assignment[g]...)
		sort.Slice(seats, func(i, j int) bool {
			if seats[i].Score != seats[j].Score {
				return seats[i].Score > seats[j].Score
			}
			return seats[i].Buyer < seats[j].Buyer
		})

		fmt.Fprintf(bw, "%s%d:", neighborhoodLine, g)
		for _, s := range seats {
			fmt.Fprintf(bw, " %s%d(%d)", homeBuyerLine, s.Buyer, s.Score)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteFile writes the assignment to a file.
func WriteFile(path string, assignment pearlmatch.Assignment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteAssignment(f, assignment); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
