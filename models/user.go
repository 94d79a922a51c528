package models

// UserProfile holds the public identity attributes of a wallet owner as
// returned by the profile endpoints. All sensitive material stays inside
// the encrypted wallet; this struct is safe to display.
type UserProfile struct {
	// ID is the server-side identifier of the user.
	ID string `json:"id"`

	// Name is the display name of the user.
	Name string `json:"nome"`

	// Username is the unique public handle used in wallet URLs.
	Username string `json:"username"`

	// Email is the address the account was registered with. It doubles as
	// the identifier half of the session credential.
	Email string `json:"email"`

	// IsEC reports whether this account is an accrediting entity
	// (entidade credenciadora) allowed to issue certificates and request
	// verifications.
	IsEC bool `json:"isEC"`
}

// SearchResult is a single hit from the username search endpoint.
type SearchResult struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}
