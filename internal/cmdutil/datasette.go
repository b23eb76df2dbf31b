package cmdutil

import (
	"fmt"
	"log/slog"

	"github.com/lepinkainen/booktracker/internal/datastore"
	"github.com/spf13/viper"
)

// DatabaseName is the Datasette database the catalog is published to.
const DatabaseName = "booktracker"

// newStore picks the remote Datasette client when a URL is configured and
// the local SQLite file otherwise. Tests replace it.
var newStore = func() datastore.Store {
	if url := viper.GetString("datasette.url"); url != "" {
		return datastore.NewDatasetteClient(url, viper.GetString("datasette.token"))
	}
	return datastore.NewSQLiteStore(viper.GetString("datasette.dbfile"))
}

// WriteToDatastore publishes records to the configured datastore when
// datasette.enabled is set. Rows sharing a primary key are replaced.
func WriteToDatastore[T any](records []T, schema, table, description string, toMap func(T) map[string]any) error {
	if !viper.GetBool("datasette.enabled") {
		return nil
	}

	store := newStore()
	if err := store.Connect(); err != nil {
		return fmt.Errorf("failed to connect to datastore: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close datastore", "error", err)
		}
	}()

	if err := store.CreateTable(schema); err != nil {
		return err
	}

	rows := make([]map[string]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, toMap(record))
	}

	if err := store.BatchInsert(DatabaseName, table, rows); err != nil {
		return err
	}

	slog.Info("Wrote records to datastore", "description", description, "table", table, "count", len(rows))
	return nil
}
