// Package identity classifies the user-supplied identifier strings used to
// look up accounts: an email address or a tag handle beginning with "@".
package identity

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Kind is the three-way classification of an identifier.
type Kind int

const (
	KindInvalid Kind = iota
	KindEmail
	KindTag
)

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindTag:
		return "tag"
	default:
		return "invalid"
	}
}

var (
	tagPattern          = regexp.MustCompile(`^@[0-9a-zA-Z_]+$`)
	passwordHashPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)
	passwordSaltPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)
)

// Field rule sets, one per account field. Kept enumerable so the handler and
// dto layers validate with exactly the same rules the classifier uses.
var (
	EmailRules = []validation.Rule{
		validation.Required,
		validation.Length(10, 200),
		is.Email,
	}
	TagRules = []validation.Rule{
		validation.Required,
		validation.Length(2, 100),
		validation.Match(tagPattern),
	}
	NameRules = []validation.Rule{
		validation.Required,
		validation.Length(1, 100),
	}
	PasswordHashRules = []validation.Rule{
		validation.Required,
		validation.Match(passwordHashPattern),
	}
	PasswordSaltRules = []validation.Rule{
		validation.Required,
		validation.Match(passwordSaltPattern),
	}
)

// Classify decides whether identifier is an email or a tag. The email rules
// are tried first, the tag rules second; anything that satisfies neither is
// KindInvalid and must be rejected before building any query.
func Classify(identifier string) Kind {
	if validation.Validate(identifier, EmailRules...) == nil {
		return KindEmail
	}
	if validation.Validate(identifier, TagRules...) == nil {
		return KindTag
	}
	return KindInvalid
}
