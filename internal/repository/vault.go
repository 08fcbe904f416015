package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/genvault/genvault-go/internal/model"
	"github.com/go-sql-driver/mysql"
)

var (
	ErrDuplicateEntry = errors.New("vault entry already exists")
	ErrUserIDRequired = errors.New("user id is required")
)

// VaultRepository handles vault entry persistence in MySQL.
type VaultRepository struct {
	db *sql.DB
}

// NewVaultRepository creates a new VaultRepository.
func NewVaultRepository(db *sql.DB) *VaultRepository {
	return &VaultRepository{db: db}
}

// Create inserts a new entry and sets the generated sequence number on it.
func (r *VaultRepository) Create(ctx context.Context, entry *model.StoredEntry) error {
	if entry.UserID == "" {
		return ErrUserIDRequired
	}

	query := `INSERT INTO vault_entries (id, user_id, site_name, link, sealed_password) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.SiteName,
		entry.Link,
		entry.SealedPassword,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateEntry
		}
		return err
	}

	seq, err := result.LastInsertId()
	if err != nil {
		return err
	}

	entry.Seq = seq
	return nil
}

// ListByUser retrieves all vault entries for a user, oldest first.
func (r *VaultRepository) ListByUser(ctx context.Context, userID string) ([]model.StoredEntry, error) {
	query := `SELECT seq, id, user_id, site_name, link, sealed_password, created_at
		FROM vault_entries WHERE user_id = ? ORDER BY seq ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.StoredEntry
	for rows.Next() {
		var e model.StoredEntry
		if err := rows.Scan(
			&e.Seq, &e.ID, &e.UserID, &e.SiteName,
			&e.Link, &e.SealedPassword, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

const errDupEntry = 1062

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error.
func isDuplicateEntryError(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDupEntry
}
