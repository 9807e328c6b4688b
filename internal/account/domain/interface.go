package domain

//go:generate mockgen -destination=../../mocks/mock_account_store.go -package=mocks github.com/mkobayashi/account-service/internal/account/domain AccountStore

import (
	"context"

	"github.com/mkobayashi/account-service/internal/account/identity"
)

// AccountStore is the persistence collaborator. Find methods return
// (nil, nil) when no row matches; an error always means the store itself
// failed.
type AccountStore interface {
	FindByIdentifier(ctx context.Context, kind identity.Kind, value string) (*Account, error)
	FindByID(ctx context.Context, id int64) (*Account, error)
	Insert(ctx context.Context, account *Account) (int64, error)
	Delete(ctx context.Context, kind identity.Kind, value string) (bool, error)
	Exists(ctx context.Context, kind identity.Kind, value string) (bool, error)
	CredentialsMatch(ctx context.Context, kind identity.Kind, value, passwordHash string) (bool, error)
	List(ctx context.Context) ([]Account, error)
}
