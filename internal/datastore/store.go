// Package datastore publishes catalog rows to SQLite or a remote Datasette.
package datastore

import "sort"

// Store defines the interface for a table-oriented publishing target
type Store interface {
	// Connect establishes a connection to the data store
	Connect() error

	// CreateTable creates a new table with the given schema if it doesn't exist
	CreateTable(schema string) error

	// BatchInsert writes records into the specified table, replacing rows
	// whose primary key already exists
	BatchInsert(database string, table string, records []map[string]any) error

	// Close closes the connection to the data store
	Close() error
}

// columnsOf returns the sorted column names of the first record.
func columnsOf(records []map[string]any) []string {
	columns := make([]string, 0, len(records[0]))
	for col := range records[0] {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}
