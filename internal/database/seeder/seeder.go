package seeder

import (
	"context"

	"skillbridge/internal/database"
)

// Seeder inserts reference data. Implementations must be safe to re-run.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
