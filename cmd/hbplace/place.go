// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/milandre/pearlmatch/homebuyer"
)

func doPlace(inFile, outFile string, matcher *homebuyer.Matcher) error {
	buyers, hoods, err := homebuyer.LoadInstance(inFile)
	if err != nil {
		return fmt.Errorf("load input file failed: %w", err)
	}

	assignment, _, err := matcher.Match(buyers, hoods)
	if err != nil {
		return err
	}

	if err := homebuyer.WriteFile(outFile, assignment); err != nil {
		return fmt.Errorf("write output file failed: %w", err)
	}
	return nil
}
