package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/mpetit/ticketscan/internal/config"
	"github.com/mpetit/ticketscan/internal/storage"
)

// openStorage opens the configured ticket database and runs migrations.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("db.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", dbPath, err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}
