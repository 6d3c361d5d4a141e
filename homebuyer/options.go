// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package homebuyer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOptions reads matcher options from a YAML file.
func LoadOptions(path string) (*Matcher, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	m := new(Matcher)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse options file failed: %w", err)
	}
	return m, nil
}
