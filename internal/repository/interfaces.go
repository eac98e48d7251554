package repository

import (
	"context"
	"errors"
	"time"

	"esgcompass/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
// Implementations wrap it with context, so check with errors.Is.
var ErrNotFound = errors.New("not found")

// StoredProfile is a named preference profile with its priority entries.
type StoredProfile struct {
	Name      string
	SessionID string
	Entries   map[string]domain.PriorityEntry
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileInfo is the listing view of a stored profile.
type ProfileInfo struct {
	Name       string
	SessionID  string
	FieldCount int
	UpdatedAt  time.Time
}

// ProfileRepo persists preference profiles. Save is an upsert: saving an
// existing name replaces its priority entries wholesale.
type ProfileRepo interface {
	Save(ctx context.Context, profile *StoredProfile) error
	Get(ctx context.Context, name string) (*StoredProfile, error)
	List(ctx context.Context) ([]ProfileInfo, error)
	Delete(ctx context.Context, name string) error
}
