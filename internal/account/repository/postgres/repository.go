package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mkobayashi/account-service/internal/account/domain"
	"github.com/mkobayashi/account-service/internal/account/identity"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies it
// too.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repository struct {
	db DB
}

func NewRepository(db DB) *Repository {
	return &Repository{db: db}
}

// identifierColumn maps a classified identifier to its column. Callers must
// have rejected KindInvalid already; the column name never comes from user
// input.
func identifierColumn(kind identity.Kind) string {
	if kind == identity.KindTag {
		return "tag"
	}
	return "email"
}

func (r *Repository) FindByIdentifier(ctx context.Context, kind identity.Kind, value string) (*domain.Account, error) {
	query := fmt.Sprintf(`
		SELECT id, email, tag, name, password_hash, password_salt, updated_at
		FROM accounts
		WHERE %s = $1
		LIMIT 1
	`, identifierColumn(kind))

	return r.scanAccount(r.db.QueryRow(ctx, query, value))
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `
		SELECT id, email, tag, name, password_hash, password_salt, updated_at
		FROM accounts
		WHERE id = $1
		LIMIT 1
	`

	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.Email, &account.Tag, &account.Name,
		&account.PasswordHash, &account.PasswordSalt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

func (r *Repository) Insert(ctx context.Context, account *domain.Account) (int64, error) {
	query := `
		INSERT INTO accounts (email, tag, name, password_hash, password_salt, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, query,
		account.Email, account.Tag, account.Name,
		account.PasswordHash, account.PasswordSalt, account.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert account: %w", err)
	}

	return id, nil
}

func (r *Repository) Delete(ctx context.Context, kind identity.Kind, value string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM accounts WHERE %s = $1`, identifierColumn(kind))

	tag, err := r.db.Exec(ctx, query, value)
	if err != nil {
		return false, fmt.Errorf("failed to delete account: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Exists(ctx context.Context, kind identity.Kind, value string) (bool, error) {
	query := fmt.Sprintf(`SELECT 1 FROM accounts WHERE %s = $1 LIMIT 1`, identifierColumn(kind))

	var one int
	err := r.db.QueryRow(ctx, query, value).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}

	return true, nil
}

// CredentialsMatch performs the whole credential check in one query: the
// account must exist under the classified identifier AND carry exactly the
// supplied password hash.
func (r *Repository) CredentialsMatch(ctx context.Context, kind identity.Kind, value, passwordHash string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT 1 FROM accounts
		WHERE %s = $1 AND password_hash = $2
		LIMIT 1
	`, identifierColumn(kind))

	var one int
	err := r.db.QueryRow(ctx, query, value, passwordHash).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify credentials: %w", err)
	}

	return true, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT id, email, tag, name, password_hash, password_salt, updated_at
		FROM accounts
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Email, &account.Tag, &account.Name,
			&account.PasswordHash, &account.PasswordSalt, &account.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return accounts, nil
}
