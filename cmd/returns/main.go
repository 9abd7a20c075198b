// SPDX-License-Identifier: MIT

// Command returns reads a CSV price table and prints period returns,
// cumulative returns and per-column statistics.
//
// Rows are observations (time flows down), columns are series. Configuration
// comes from the environment:
//
//	RETURNS_INPUT        path to the CSV file, "-" for stdin (default "-")
//	RETURNS_HEADER       first record names the columns (default true)
//	RETURNS_FORMAT       text | json (default text)
//	RETURNS_COMPOUNDING  geometric | simple (default geometric)
//	RETURNS_LEADING_NAN  first return is NaN instead of 0 (default false)
//	RETURNS_LOG_LEVEL    debug | info | warn | error (default info)
//	RETURNS_LOG_DEV      console logging (default false)
//
// Example:
//
//	printf 'a,b\n100,50\n110,55\n99,60\n' | RETURNS_FORMAT=json returns
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := newLogger(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err = run(cfg, log, os.Stdin, os.Stdout); err != nil {
		log.Error("run failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

// run executes one load, transform, render pass.
func run(cfg *Config, log *zap.Logger, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if cfg.Input != "-" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	names, prices, err := readPrices(in, cfg.Header)
	if err != nil {
		return err
	}
	log.Info("loaded prices",
		zap.String("input", cfg.Input),
		zap.Int("rows", prices.Rows()),
		zap.Int("cols", prices.Cols()))

	rep, err := buildReport(names, prices, cfg.seriesOptions()...)
	if err != nil {
		return err
	}
	log.Debug("report built",
		zap.String("compounding", cfg.Compounding),
		zap.Bool("leading_nan", cfg.LeadingNaN))

	return writeReport(stdout, rep, cfg.Format)
}
