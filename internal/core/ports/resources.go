package ports

import (
	"context"

	"go.trai.ch/rebuild/internal/core/domain"
)

// ResourceSyncer copies resource files next to the executable.
//
//go:generate mockgen -source=resources.go -destination=mocks/mock_resources.go -package=mocks
type ResourceSyncer interface {
	// Sync copies every configured resource whose destination is missing or older.
	Sync(ctx context.Context, cfg *domain.Config) ([]domain.CopiedResource, error)
}

// CompileDatabase maintains a compile_commands.json file for editor tooling.
type CompileDatabase interface {
	// Update merges commands into the database of cfg and reports whether the
	// file was rewritten.
	Update(cfg *domain.Config, commands []domain.CompileCommand) (bool, error)
}
