package models

// UserRegistration creates a regular wallet account.
type UserRegistration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"nome"`
}

// ECRegistration creates an accrediting-entity account. The two key
// fields carry base64 file contents uploaded by the registrant: the
// authentication public key used for signature login, and the signing
// certificate used to verify issued certificates.
type ECRegistration struct {
	Name      string `json:"name"`
	Kind      string `json:"tipo"`
	KindOther string `json:"tipoOutro,omitempty"`
	TaxID     *int64 `json:"nif"`
	Email     string `json:"email"`
	Phone     string `json:"tel"`

	// AuthenticationKey is the base64-encoded public key for the
	// challenge/signature login flow.
	AuthenticationKey string `json:"authenticationKey"`

	// Certificate is the base64-encoded signing certificate.
	Certificate string `json:"certificate"`
}
