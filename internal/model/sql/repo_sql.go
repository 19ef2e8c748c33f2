package sql

import (
	"context"
	"designers/internal/database"
	"fmt"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	provider database.Provider
}

// NewGormRepository creates a new repository instance
func NewGormRepository(provider database.Provider) *GormRepository {
	return &GormRepository{provider: provider}
}

// acquire hands out a connection for a single operation. The caller defers
// Release right after a successful call.
func (r *GormRepository) acquire(ctx context.Context) (*database.Conn, error) {
	if r == nil || r.provider == nil {
		return nil, database.Unavailable(fmt.Errorf("repository not initialised"))
	}
	return r.provider.Acquire(ctx)
}
