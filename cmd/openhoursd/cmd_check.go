/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/friendsincode/openhours/internal/api"
	"github.com/friendsincode/openhours/internal/hours"
	"github.com/friendsincode/openhours/internal/importer"
	"github.com/friendsincode/openhours/internal/store"
)

var (
	checkScope   string
	checkFixture string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a one-shot open-hours evaluation",
	Long:  "Evaluate the schedule catalog against the current instant and print the decision bundle as JSON. With --fixture the catalog is read from a YAML file instead of the configured store.",
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkScope, "scope", "", "schedule scope to evaluate (default: configured default scope)")
	checkCmd.Flags().StringVar(&checkFixture, "fixture", "", "YAML fixture file to evaluate against instead of the configured store")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	ctx := context.Background()

	var st store.RecordStore
	if checkFixture != "" {
		mem := store.NewMemoryStore()
		if _, err := importer.Import(ctx, mem, checkFixture, logger); err != nil {
			return err
		}
		st = mem
	} else {
		var err error
		st, err = openStore(ctx)
		if err != nil {
			return err
		}
	}

	scope := checkScope
	if scope == "" {
		scope = cfg.DefaultScope
	}

	svc := hours.NewService(st, cfg.Location(), cfg.EarlyOpenMargin(), logger)

	var payload any
	decision, err := svc.Check(ctx, scope)
	if err != nil {
		payload = api.ErrorPayload{
			ErrorOccured: api.FlagTrue,
			ErrorMessage: "Problem occured during execution. Kindly try again.",
		}
	} else {
		payload = api.NewDecisionPayload(decision)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode decision: %w", err)
	}
	return nil
}
