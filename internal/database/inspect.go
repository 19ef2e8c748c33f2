package database

import (
	"context"
)

// TableStatus reports whether a required table is present.
type TableStatus struct {
	Name   string
	Exists bool
}

// InspectTables checks the given tables on a freshly acquired connection.
// It never creates anything.
func InspectTables(ctx context.Context, provider Provider, tables ...string) ([]TableStatus, error) {
	conn, err := provider.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	migrator := conn.DB.WithContext(ctx).Migrator()
	statuses := make([]TableStatus, 0, len(tables))
	for _, table := range tables {
		statuses = append(statuses, TableStatus{Name: table, Exists: migrator.HasTable(table)})
	}
	return statuses, nil
}
