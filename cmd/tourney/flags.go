package main

import (
	"fmt"

	"github.com/lorenzotomasdiez/prisoners-tourney/internal/config"
	"github.com/lorenzotomasdiez/prisoners-tourney/internal/strategy"
	"github.com/spf13/pflag"
)

// addCountFlags registers one count flag per strategy kind.
func addCountFlags(fs *pflag.FlagSet) {
	for _, k := range strategy.Kinds() {
		fs.IntP(k.Flag(), k.Shorthand(), 0, fmt.Sprintf("Number of %s players to add to the tournament", k))
	}
}

// applyFlags overrides cfg with every flag the user set explicitly.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	var err error
	if fs.Changed("rounds") {
		if cfg.Rounds, err = fs.GetInt("rounds"); err != nil {
			return err
		}
	}
	if fs.Changed("seed") {
		if cfg.Seed, err = fs.GetInt64("seed"); err != nil {
			return err
		}
	}
	if fs.Changed("verbose") {
		if cfg.Verbose, err = fs.GetBool("verbose"); err != nil {
			return err
		}
	}
	if fs.Changed("oneplayer") {
		if cfg.OnePerKind, err = fs.GetBool("oneplayer"); err != nil {
			return err
		}
	}
	if fs.Changed("log-level") {
		if cfg.LogLevel, err = fs.GetString("log-level"); err != nil {
			return err
		}
	}
	if cfg.Counts == nil {
		cfg.Counts = strategy.Counts{}
	}
	for _, k := range strategy.Kinds() {
		if !fs.Changed(k.Flag()) {
			continue
		}
		n, err := fs.GetInt(k.Flag())
		if err != nil {
			return err
		}
		cfg.Counts[k] = n
	}
	return cfg.Validate()
}
