package models

import "time"

// NotificationType identifies what a pending notification asks the wallet
// owner to do.
type NotificationType string

const (
	// NotificationCertificateAddition asks the owner to accept a
	// certificate issued by an accrediting entity.
	NotificationCertificateAddition NotificationType = "CERTIFICATE_ADDITION"

	// NotificationVerificationRequest asks the owner to disclose a single
	// wallet field to the requesting entity.
	NotificationVerificationRequest NotificationType = "VERIFICATION_REQUEST"
)

// NotificationStatus tracks the lifecycle of a notification. Transitions
// happen only through an explicit accept or reject; expiry is enforced
// server-side.
type NotificationStatus string

const (
	NotificationPending  NotificationStatus = "PENDING"
	NotificationAccepted NotificationStatus = "ACCEPTED"
	NotificationRejected NotificationStatus = "REJECTED"
)

// NotificationAction is the owner's answer to a pending notification.
type NotificationAction string

const (
	ActionAccept NotificationAction = "ACCEPT"
	ActionReject NotificationAction = "REJECT"
)

// NotificationPayload carries the type-specific details of a notification.
type NotificationPayload struct {
	// CertificateName is set for CERTIFICATE_ADDITION.
	CertificateName string `json:"certificate_name,omitempty"`

	// VerificationID and VerificationType are set for VERIFICATION_REQUEST.
	VerificationID   string `json:"verification_id,omitempty"`
	VerificationType string `json:"verification_type,omitempty"`
}

// Notification is a pending request from an accrediting entity awaiting
// the wallet owner's decision.
type Notification struct {
	NotificationID string              `json:"notification_id"`
	RequesterID    string              `json:"requester_id"`
	RequesterName  string              `json:"requester_name"`
	Type           NotificationType    `json:"type"`
	Payload        NotificationPayload `json:"payload"`
	Status         NotificationStatus  `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
}

// Title builds the human-readable headline for a notification.
func (n Notification) Title() string {
	switch n.Type {
	case NotificationCertificateAddition:
		return "Novo Certificado: " + n.Payload.CertificateName
	case NotificationVerificationRequest:
		return "Pedido de Informação: " + n.Payload.VerificationType
	default:
		return "Nova Requisição Pendente"
	}
}

// NotificationResponse answers a pending notification. MasterKey is
// required for any accept and must be omitted on reject.
type NotificationResponse struct {
	NotificationID string             `json:"notification_id"`
	Action         NotificationAction `json:"action"`
	MasterKey      string             `json:"master_key,omitempty"`
}

// CertificateAdditionRequest is sent by an accrediting entity to offer a
// certificate to a wallet owner. CertificateData must embed the issuer's
// signature under the "signature" key so the server can verify authorship.
type CertificateAdditionRequest struct {
	Email           string      `json:"email"`
	CertificateData Certificate `json:"certificate_data"`
}
