// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homebuyer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placementInstance = `N N0 E:1 W:0 R:0
N N1 E:0 W:1 R:0
N N2 E:0 W:0 R:1
H H0 E:1 W:2 R:3 N0>N1>N2
H H1 E:4 W:5 R:6 N1>N2>N0
H H2 E:7 W:8 R:9 N2>N0>N1
`

func TestMatcher_Match(t *testing.T) {
	buyers, hoods, err := ParseInstance(strings.NewReader(placementInstance))
	require.NoError(t, err)

	m := &Matcher{}
	assignment, summ, err := m.Match(buyers, hoods)
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Buyers:        3,
		Neighborhoods: 3,
		Capacity:      1,
		Seated:        3,
		TotalScore:    15,
		Perfect:       true,
	}, summ)

	var buf bytes.Buffer
	require.NoError(t, WriteAssignment(&buf, assignment))
	assert.Equal(t, "N0: H0(1)\nN1: H1(5)\nN2: H2(9)\n", buf.String())
}

func TestMatcher_Match_Deterministic(t *testing.T) {
	buyers, hoods, err := ParseInstance(strings.NewReader(placementInstance))
	require.NoError(t, err)

	m := &Matcher{}
	var outputs []string
	for i := 0; i < 2; i++ {
		assignment, _, err := m.Match(buyers, hoods)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, WriteAssignment(&buf, assignment))
		outputs = append(outputs, buf.String())
	}
	assert.Equal(t, outputs[0], outputs[1], "identical input must produce byte-identical output")
}

func TestMatcher_Match_Strict(t *testing.T) {
	// Three buyers over two capacity-1 neighborhoods cannot all be
	// seated.
	buyers := []HomeBuyer{
		{ID: 0, Goals: []int64{1}, Priorities: []int{0, 1}},
		{ID: 1, Goals: []int64{2}, Priorities: []int{0, 1}},
		{ID: 2, Goals: []int64{3}, Priorities: []int{0, 1}},
	}
	hoods := []Neighborhood{
		{ID: 0, Features: []int64{1}},
		{ID: 1, Features: []int64{1}},
	}

	m := &Matcher{}
	_, summ, err := m.Match(buyers, hoods)
	require.NoError(t, err)
	assert.False(t, summ.Perfect)
	assert.Equal(t, 2, summ.Seated)

	m.Strict = true
	_, _, err = m.Match(buyers, hoods)
	assert.Error(t, err)
}
