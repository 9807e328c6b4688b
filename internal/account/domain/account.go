package domain

// Account is the stored user record. The service layer only ever reads it;
// mutations happen through Insert and Delete, and every credential-affecting
// mutation advances UpdatedAt.
type Account struct {
	ID           int64
	Email        string
	Tag          string
	Name         string
	PasswordHash string
	PasswordSalt string
	UpdatedAt    int64
}
