package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// VerificationTarget names the wallet field a verification request is
// about: the field key plus which wallet section it lives in.
type VerificationTarget struct {
	Key  string    `json:"chave"`
	Kind EntryKind `json:"tipo"`
}

// VerificationRequest asks a wallet owner to disclose one field. Email
// identifies the owner; RequestKey is the requester's master key, used
// server-side to encrypt the disclosed secret for the requester alone.
type VerificationRequest struct {
	Email      string             `json:"email"`
	DataType   VerificationTarget `json:"verification_data_type"`
	RequestKey string             `json:"request_key"`
}

// VerificationDataType is the loosely-typed field descriptor the server
// returns on listings: older records carry a bare string, newer ones the
// structured target. Display always resolves to a printable name.
type VerificationDataType struct {
	Display string
}

func (v *VerificationDataType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.Display = s
		return nil
	}

	var obj struct {
		Key  string `json:"chave"`
		Name string `json:"nome"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("decode verification data type: %w", err)
	}

	v.Display = obj.Key
	if v.Display == "" {
		v.Display = obj.Name
	}
	return nil
}

func (v VerificationDataType) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Display)
}

// Verification is one disclosure request as listed by the server.
type Verification struct {
	VerificationID     string               `json:"verification_id"`
	VerificationUserID string               `json:"verification_user_id"`
	DataType           VerificationDataType `json:"verification_data_type"`
	Accepted           bool                 `json:"accepted"`
	CreatedAt          time.Time            `json:"created_at"`
	ExpiresAt          time.Time            `json:"expires_at"`
}

// TimeLeft renders the remaining validity of the verification relative to
// now, e.g. "3h 12m restantes", or "Expirado" once past.
func (v Verification) TimeLeft(now time.Time) string {
	diff := v.ExpiresAt.Sub(now)
	if diff <= 0 {
		return "Expirado"
	}

	hours := int(diff.Hours())
	minutes := int(diff.Minutes()) % 60
	return fmt.Sprintf("%dh %dm restantes", hours, minutes)
}

// VerificationDetailRequest unlocks the disclosed value of an accepted
// verification with the requester's master key.
type VerificationDetailRequest struct {
	MasterKey string `json:"masterKey"`
}

// VerificationListResponse is the shape of the get-all listing.
type VerificationListResponse struct {
	AllVerifications []Verification `json:"all_verifications"`
}

// VerificationDetail is the disclosed record of an accepted verification,
// decrypted server-side under the requester's master key.
type VerificationDetail struct {
	VerificationID string               `json:"verification_id"`
	DataType       VerificationDataType `json:"verification_data_type"`
	Value          string               `json:"value"`
	CreatedAt      time.Time            `json:"created_at"`
	ExpiresAt      time.Time            `json:"expires_at"`
}

// VerificationDetailResponse wraps the detail record on the wire.
type VerificationDetailResponse struct {
	Verification VerificationDetail `json:"verification"`
}
