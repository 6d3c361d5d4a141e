// Copyright 2024 milandre. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/milandre/pearlmatch/homebuyer"
)

func main() {
	app := &cli.App{
		Name:      "hbplace",
		Usage:     "Place home buyers into neighborhoods by affinity and priority",
		ArgsUsage: "<input-file> <output-file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log per-step matching progress",
			},
			&cli.StringFlag{
				Name:  "options",
				Usage: "load matcher options from a YAML `FILE`",
			},
			&cli.StringFlag{
				Name:  "log",
				Value: "info",
				Usage: "log level (debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("expected exactly two arguments: <input-file> <output-file>")
	}
	inFile, outFile := ctx.Args().Get(0), ctx.Args().Get(1)

	if isDir(inFile) || isDir(outFile) {
		return errors.New("the input and output paths must be files, not directories")
	}
	if _, err := os.Stat(inFile); err != nil {
		return fmt.Errorf("input file not found: %s", inFile)
	}

	level, err := logrus.ParseLevel(ctx.String("log"))
	if err != nil {
		return fmt.Errorf("invalid log level %q", ctx.String("log"))
	}
	logrus.SetLevel(level)

	matcher := &homebuyer.Matcher{Verbose: ctx.Bool("verbose")}
	if path := ctx.String("options"); path != "" {
		matcher, err = homebuyer.LoadOptions(path)
		if err != nil {
			return fmt.Errorf("load options file failed: %w", err)
		}
	}
	if matcher.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return doPlace(inFile, outFile, matcher)
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
