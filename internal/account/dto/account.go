package dto

import "github.com/mkobayashi/account-service/internal/account/domain"

// AccountOutput is the public projection of an account. The credential hash
// and salt never leave the service.
type AccountOutput struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Tag       string `json:"tag"`
	Name      string `json:"name"`
	UpdatedAt int64  `json:"updated_at"`
}

func NewAccountOutput(account *domain.Account) *AccountOutput {
	return &AccountOutput{
		ID:        account.ID,
		Email:     account.Email,
		Tag:       account.Tag,
		Name:      account.Name,
		UpdatedAt: account.UpdatedAt,
	}
}

type ExistenceOutput struct {
	Exists bool `json:"exists"`
}
