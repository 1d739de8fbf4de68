package models

// Credentials is the login request body. It exists only for the lifetime of
// a single request and is never persisted.
type Credentials struct {
	// Email identifies the account being authenticated.
	Email string `json:"email"`

	// Password is the plaintext password supplied by the client.
	// It is compared against the stored bcrypt hash and then discarded.
	Password string `json:"password"`
}

// RegisterRequest is the registration request body. Transient, like
// [Credentials]; the password is hashed before anything is stored.
type RegisterRequest struct {
	// Email becomes the unique login identifier of the new account.
	Email string `json:"email"`

	// Password is the plaintext password chosen by the user.
	Password string `json:"password"`

	// Name is the display name of the new account.
	Name string `json:"name"`
}
