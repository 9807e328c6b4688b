package dto

// VerifyOutput is the result of a credential or token check. A false Verified
// with a Message is a successful negative outcome, not an error: the message
// distinguishes an expired token from one invalidated by an account change.
type VerifyOutput struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message,omitempty"`
}

type TokenOutput struct {
	Token string `json:"token"`
}
