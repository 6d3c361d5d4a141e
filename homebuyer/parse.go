// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homebuyer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	neighborhoodLine = "N"
	homeBuyerLine    = "H"
	pearlValueSplit  = ":"
	prioritySplit    = ">"
)

// ParseInstance reads a problem instance in the line-oriented format:
//
//	N <id> <pearl:value> <pearl:value> ...
//	H <id> <pearl:value> ... N0>N2>N1
//
// Vectors are built in token order. Identities follow line order; the
// id tokens are trusted to agree with it. The input is schema-trusted:
// lines that are structurally malformed beyond what the value parser
// catches are undefined behavior, not a reported failure.
func ParseInstance(r io.Reader) ([]HomeBuyer, []Neighborhood, error) {
	var (
		buyers []HomeBuyer
		hoods  []Neighborhood
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 3 {
			continue
		}
		switch fields[0] {
		case neighborhoodLine:
			features, err := parseValues(fields[2:])
			if err != nil {
				return nil, nil, err
			}
			hoods = append(hoods, Neighborhood{ID: len(hoods), Features: features})
		case homeBuyerLine:
			goals, err := parseValues(fields[2 : len(fields)-1])
			if err != nil {
				return nil, nil, err
			}
			priorities, err := parsePriorities(fields[len(fields)-1])
			if err != nil {
				return nil, nil, err
			}
			buyers = append(buyers, HomeBuyer{ID: len(buyers), Goals: goals, Priorities: priorities})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}

	return buyers, hoods, nil
}

// LoadInstance reads a problem instance from a file.
func LoadInstance(path string) ([]HomeBuyer, []Neighborhood, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ParseInstance(f)
}

func parseValues(tokens []string) ([]int64, error) {
	values := make([]int64, len(tokens))
	for i, tok := range tokens {
		_, val, ok := strings.Cut(tok, pearlValueSplit)
		if !ok {
			return nil, fmt.Errorf("pearl token %q has no value", tok)
		}
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pearl token %q: %w", tok, err)
		}
		values[i] = n
	}
	return values, nil
}

// parsePriorities decodes the trailing priority token, e.g. "N0>N2>N1".
// The second character of each entry is the neighborhood identity.
func parsePriorities(token string) ([]int, error) {
	entries := strings.Split(token, prioritySplit)
	priorities := make([]int, len(entries))
	for i, entry := range entries {
		if len(entry) < 2 {
			return nil, fmt.Errorf("priority entry %q is too short", entry)
		}
		n, err := strconv.Atoi(entry[1:2])
		if err != nil {
			return nil, fmt.Errorf("priority entry %q: %w", entry, err)
		}
		priorities[i] = n
	}
	return priorities, nil
}
