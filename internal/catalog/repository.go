package catalog

import (
	"context"
	"slices"
)

// Repository supplies the artist catalog. The catalog is fixed for the lifetime of the process.
type Repository interface {
	ListArtists(ctx context.Context) ([]Artist, error)
	ListLocations(ctx context.Context) ([]string, error)
}

// MemoryRepository serves a catalog held in process memory.
type MemoryRepository struct {
	artists   []Artist
	locations []string
}

// NewMemoryRepository creates a repository over the given catalog.
func NewMemoryRepository(artists []Artist, locations []string) *MemoryRepository {
	return &MemoryRepository{
		artists:   slices.Clone(artists),
		locations: slices.Clone(locations),
	}
}

// NewSeedRepository creates a repository over the launch catalog.
func NewSeedRepository() *MemoryRepository {
	return NewMemoryRepository(SeedArtists(), SeedLocations())
}

// ListArtists returns a copy of the catalog in its canonical order.
func (repository *MemoryRepository) ListArtists(ctx context.Context) ([]Artist, error) {
	return slices.Clone(repository.artists), nil
}

// ListLocations returns a copy of the selectable locations.
func (repository *MemoryRepository) ListLocations(ctx context.Context) ([]string, error) {
	return slices.Clone(repository.locations), nil
}
