package repository

import (
	"ifind-attorney/internal/domain/model"
	"ifind-attorney/internal/domain/repository"
)

// StaticFirmsRepository serves the compiled-in seed directory. It is the
// default data source when no external database is configured.
type StaticFirmsRepository struct {
	*memoryDirectory
}

func NewStaticFirmsRepository() repository.FirmsRepository {
	return &StaticFirmsRepository{memoryDirectory: newMemoryDirectory(seedDirectory)}
}

// NewFirmsRepositoryFromMap builds a directory from an arbitrary state-keyed
// map. Used by tests and by the external loaders once rows are fetched.
func NewFirmsRepositoryFromMap(byState map[string][]model.LawFirm) repository.FirmsRepository {
	return &StaticFirmsRepository{memoryDirectory: newMemoryDirectory(byState)}
}
