package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/mkobayashi/account-service/internal/account/identity"
)

// RegisterInput is the registration request body. The password hash and salt
// arrive pre-computed from the client; the server never sees a password.
type RegisterInput struct {
	Email        string `json:"email"`
	Tag          string `json:"tag"`
	Name         string `json:"name"`
	PasswordHash string `json:"password_hash"`
	PasswordSalt string `json:"password_salt"`
}

func (r RegisterInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, identity.EmailRules...),
		validation.Field(&r.Tag, identity.TagRules...),
		validation.Field(&r.Name, identity.NameRules...),
		validation.Field(&r.PasswordHash, identity.PasswordHashRules...),
		validation.Field(&r.PasswordSalt, identity.PasswordSaltRules...),
	)
}

type RegisterOutput struct {
	ID int64 `json:"id"`
}
