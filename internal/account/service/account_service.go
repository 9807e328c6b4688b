package service

import (
	"context"
	"time"

	"github.com/mkobayashi/account-service/internal/account/domain"
	"github.com/mkobayashi/account-service/internal/account/dto"
	"github.com/mkobayashi/account-service/internal/account/identity"
	"github.com/mkobayashi/account-service/internal/apperr"
)

const (
	msgUserNotFound      = "the user does not exist"
	msgRequestedNotFound = "the requested user does not exist"
	msgTokenExpired      = "Token has expired"
	msgTokenOutOfDate    = "Token is out of date"
)

type AccountService struct {
	store  domain.AccountStore
	tokens TokenSigner
	Now    func() time.Time
}

func NewAccountService(store domain.AccountStore, tokens TokenSigner) *AccountService {
	return &AccountService{
		store:  store,
		tokens: tokens,
		Now:    time.Now,
	}
}

// Register inserts a new account, stamping updated_at with the current time.
// The store enforces email and tag uniqueness.
func (s *AccountService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterOutput, error) {
	account := &domain.Account{
		Email:        input.Email,
		Tag:          input.Tag,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		PasswordSalt: input.PasswordSalt,
		UpdatedAt:    s.Now().Unix(),
	}

	id, err := s.store.Insert(ctx, account)
	if err != nil {
		return nil, apperr.Database(err)
	}

	return &dto.RegisterOutput{ID: id}, nil
}

// VerifyByPassword checks the supplied credential digest against the stored
// one in a single query. A mismatch is a successful negative result, not an
// error.
func (s *AccountService) VerifyByPassword(ctx context.Context, identifier, passwordHash string) (*dto.VerifyOutput, error) {
	kind := identity.Classify(identifier)
	if kind == identity.KindInvalid {
		return nil, apperr.InvalidRequest("invalid user identifier")
	}

	verified, err := s.store.CredentialsMatch(ctx, kind, identifier, passwordHash)
	if err != nil {
		return nil, apperr.Database(err)
	}

	return &dto.VerifyOutput{Verified: verified}, nil
}

// IssueToken builds and signs a session payload for the given account. The
// payload's updated_at is re-stamped to the current time so the freshness
// window opens at issuance, not at the account's last change.
func (s *AccountService) IssueToken(ctx context.Context, accountID int64) (*dto.TokenOutput, error) {
	account, err := s.store.FindByID(ctx, accountID)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if account == nil {
		return nil, apperr.InvalidRequest(msgUserNotFound)
	}

	token, err := s.tokens.Issue(account)
	if err != nil {
		return nil, err
	}

	return &dto.TokenOutput{Token: token}, nil
}

// VerifyByToken recomputes a token's validity from scratch: signature, payload
// shape, expiry window, then staleness against the account's current state.
// There is no server-side session storage to consult.
func (s *AccountService) VerifyByToken(ctx context.Context, tokenString string) (*dto.VerifyOutput, error) {
	claims, appErr := s.tokens.Parse(tokenString)
	if appErr != nil {
		return nil, appErr
	}

	now := s.Now().Unix()
	if now < claims.UpdatedAt || now >= claims.UpdatedAt+claims.ValidityTime {
		return &dto.VerifyOutput{Verified: false, Message: msgTokenExpired}, nil
	}

	account, err := s.store.FindByID(ctx, claims.ID)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if account == nil {
		return nil, apperr.InvalidRequest(msgUserNotFound)
	}

	// The account changed after this token was issued.
	if claims.UpdatedAt < account.UpdatedAt {
		return &dto.VerifyOutput{Verified: false, Message: msgTokenOutOfDate}, nil
	}

	return &dto.VerifyOutput{Verified: true}, nil
}

func (s *AccountService) Account(ctx context.Context, identifier string) (*dto.AccountOutput, error) {
	kind := identity.Classify(identifier)
	if kind == identity.KindInvalid {
		return nil, apperr.InvalidRequest("invalid user identifier")
	}

	account, err := s.store.FindByIdentifier(ctx, kind, identifier)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if account == nil {
		return nil, apperr.InvalidRequest(msgRequestedNotFound)
	}

	return dto.NewAccountOutput(account), nil
}

func (s *AccountService) Accounts(ctx context.Context) ([]dto.AccountOutput, error) {
	accounts, err := s.store.List(ctx)
	if err != nil {
		return nil, apperr.Database(err)
	}

	out := make([]dto.AccountOutput, 0, len(accounts))
	for i := range accounts {
		out = append(out, *dto.NewAccountOutput(&accounts[i]))
	}

	return out, nil
}

func (s *AccountService) Delete(ctx context.Context, identifier string) error {
	kind := identity.Classify(identifier)
	if kind == identity.KindInvalid {
		return apperr.InvalidRequest("invalid user identifier")
	}

	deleted, err := s.store.Delete(ctx, kind, identifier)
	if err != nil {
		return apperr.Database(err)
	}
	if !deleted {
		return apperr.InvalidRequest(msgRequestedNotFound)
	}

	return nil
}

func (s *AccountService) Exists(ctx context.Context, identifier string) (*dto.ExistenceOutput, error) {
	kind := identity.Classify(identifier)
	if kind == identity.KindInvalid {
		return nil, apperr.InvalidRequest("invalid user identifier")
	}

	exists, err := s.store.Exists(ctx, kind, identifier)
	if err != nil {
		return nil, apperr.Database(err)
	}

	return &dto.ExistenceOutput{Exists: exists}, nil
}
