/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/friendsincode/openhours/internal/config"
	"github.com/friendsincode/openhours/internal/db"
	"github.com/friendsincode/openhours/internal/importer"
	"github.com/friendsincode/openhours/internal/store"
)

var importFixture string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import schedule records into the configured store",
	Long:  "Load schedule records from a YAML fixture and write them to the configured record store (DynamoDB table or SQL database)",
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFixture, "fixture", "", "YAML fixture file to import (required)")
	_ = importCmd.MarkFlagRequired("fixture")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	ctx := context.Background()
	st, err := openStore(ctx)
	if err != nil {
		return err
	}

	count, err := importer.Import(ctx, st, importFixture, logger)
	if err != nil {
		return err
	}

	fmt.Printf("imported %d schedule records\n", count)
	return nil
}

// openStore builds the record store the CLI commands operate on, mirroring
// the server's backend selection.
func openStore(ctx context.Context) (store.RecordStore, error) {
	switch cfg.StoreBackend {
	case config.StoreDynamoDB:
		return store.NewDynamoStore(ctx, store.DynamoConfig{
			Region:          cfg.AWSRegion,
			Table:           cfg.ScheduleTable,
			Endpoint:        cfg.AWSEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		}, logger)
	case config.StorePostgres, config.StoreMySQL, config.StoreSQLite:
		database, err := db.Connect(cfg)
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		st := store.NewGormStore(database)
		if err := st.Migrate(); err != nil {
			return nil, fmt.Errorf("migrate schedule table: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.StoreBackend)
	}
}
