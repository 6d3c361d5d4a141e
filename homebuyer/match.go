// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homebuyer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/milandre/pearlmatch"
)

// Match places every home buyer into a neighborhood and reports a run
// summary. With Strict set, an imperfect placement (possible only when
// the buyer count does not divide evenly among the neighborhoods) is
// returned as an error.
func (m *Matcher) Match(buyers []HomeBuyer, hoods []Neighborhood) (pearlmatch.Assignment, Summary, error) {
	pb := genBuyers(buyers)
	pg := genGroups(hoods)

	capacity := 0
	if len(hoods) > 0 {
		capacity = len(buyers) / len(hoods)
	}
	if m.Verbose {
		logrus.Debugf("placing %d buyers into %d neighborhoods, capacity %d",
			len(buyers), len(hoods), capacity)
	}

	assignment, perfect := pearlmatch.DisplaceMatcher(m.Verbose).Match(pb, pg)

	summ := Summary{
		Buyers:        len(buyers),
		Neighborhoods: len(hoods),
		Capacity:      capacity,
		Perfect:       perfect,
	}
	for _, seats := range assignment {
		summ.Seated += len(seats)
		for _, s := range seats {
			summ.TotalScore += s.Score
		}
	}

	logrus.Infof("placed %d of %d buyers, total score %d", summ.Seated, summ.Buyers, summ.TotalScore)

	if m.Strict && !perfect {
		return nil, summ, fmt.Errorf("placement is not perfect: %d of %d buyers seated", summ.Seated, summ.Buyers)
	}
	return assignment, summ, nil
}

func genBuyers(buyers []HomeBuyer) []pearlmatch.Buyer {
	pb := make([]pearlmatch.Buyer, len(buyers))
	for i, b := range buyers {
		pb[i] = pearlmatch.Buyer{
			Goals: pearlmatch.Vector(b.Goals),
			Prefs: b.Priorities,
			Info:  b,
		}
	}
	return pb
}

func genGroups(hoods []Neighborhood) []pearlmatch.Group {
	pg := make([]pearlmatch.Group, len(hoods))
	for i, h := range hoods {
		pg[i] = pearlmatch.Group{
			Features: pearlmatch.Vector(h.Features),
			Info:     h,
		}
	}
	return pg
}
