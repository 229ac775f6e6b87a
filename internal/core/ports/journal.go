package ports

import "go.trai.ch/imago/internal/core/domain"

// Journal persists the latest outcome per target across runs. It is purely
// informational: skip decisions come from the image store, never from here.
//
//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=mocks/mock_journal.go -package=mocks
type Journal interface {
	// Record stores the outcome for a target, replacing any previous entry.
	Record(rec domain.RunRecord) error

	// List returns all entries sorted by target name.
	List() ([]domain.RunRecord, error)
}
