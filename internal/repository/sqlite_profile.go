package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"esgcompass/internal/db"
	"esgcompass/internal/domain"
)

const timeLayout = time.RFC3339

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

// Save upserts the profile and replaces its priority rows. Callers
// wanting atomicity run it inside UnitOfWork.WithinTx with a tx-scoped
// repo; a plain *sql.DB works for single-writer use.
func (r *SQLiteProfileRepo) Save(ctx context.Context, profile *StoredProfile) error {
	now := time.Now().UTC().Format(timeLayout)

	_, err := r.db.ExecContext(ctx, `INSERT INTO profiles (name, session_id, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET session_id = excluded.session_id, updated_at = excluded.updated_at`,
		profile.Name, profile.SessionID, now, now)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, `DELETE FROM priorities WHERE profile_name = ?`, profile.Name); err != nil {
		return fmt.Errorf("clearing priorities: %w", err)
	}

	// Stable insert order keeps runs deterministic.
	ids := make([]string, 0, len(profile.Entries))
	for id := range profile.Entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		entry := profile.Entries[id]
		_, err := r.db.ExecContext(ctx, `INSERT INTO priorities (profile_name, field_id, importance, notes, added_from)
			VALUES (?, ?, ?, ?, ?)`,
			profile.Name, id, string(entry.Importance), entry.Notes, entry.AddedFrom)
		if err != nil {
			return fmt.Errorf("saving priority %s: %w", id, err)
		}
	}

	return nil
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, name string) (*StoredProfile, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, session_id, created_at, updated_at
		FROM profiles WHERE name = ?`, name)

	var p StoredProfile
	var createdAt, updatedAt string
	err := row.Scan(&p.Name, &p.SessionID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	rows, err := r.db.QueryContext(ctx, `SELECT field_id, importance, notes, added_from
		FROM priorities WHERE profile_name = ? ORDER BY field_id`, name)
	if err != nil {
		return nil, fmt.Errorf("getting priorities: %w", err)
	}
	defer rows.Close()

	p.Entries = make(map[string]domain.PriorityEntry)
	for rows.Next() {
		var fieldID, importance string
		var entry domain.PriorityEntry
		if err := rows.Scan(&fieldID, &importance, &entry.Notes, &entry.AddedFrom); err != nil {
			return nil, fmt.Errorf("scanning priority: %w", err)
		}
		entry.Importance = domain.ImportanceTier(importance)
		p.Entries[fieldID] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating priorities: %w", err)
	}

	return &p, nil
}

func (r *SQLiteProfileRepo) List(ctx context.Context) ([]ProfileInfo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT p.name, p.session_id, p.updated_at, COUNT(pr.field_id)
		FROM profiles p
		LEFT JOIN priorities pr ON pr.profile_name = p.name
		GROUP BY p.name
		ORDER BY p.updated_at DESC, p.name`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var infos []ProfileInfo
	for rows.Next() {
		var info ProfileInfo
		var updatedAt string
		if err := rows.Scan(&info.Name, &info.SessionID, &updatedAt, &info.FieldCount); err != nil {
			return nil, fmt.Errorf("scanning profile: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}

	return infos, nil
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}
	return nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
