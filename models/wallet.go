package models

import "sort"

// certificateNameKey is the reserved key inside a certificate map that
// carries the certificate's display name.
const certificateNameKey = "nome"

// PersonalDataEntry is a single name/value pair of the wallet's personal
// data section.
type PersonalDataEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Certificate is a free-form field map issued by an accrediting entity.
// The "nome" key holds the certificate name; every other key is an
// attribute the issuer chose to attest.
type Certificate map[string]string

// Name returns the certificate's display name, or an empty string when the
// name key is absent.
func (c Certificate) Name() string {
	return c[certificateNameKey]
}

// Fields returns the certificate's attested attributes in key order,
// excluding the name key and any empty values.
func (c Certificate) Fields() []CertificateField {
	keys := make([]string, 0, len(c))
	for k, v := range c {
		if k == certificateNameKey || v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fields := make([]CertificateField, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, CertificateField{Key: k, Value: c[k]})
	}
	return fields
}

// CertificateField is one attested key/value attribute of a certificate.
type CertificateField struct {
	Key   string `json:"chave"`
	Value string `json:"valor"`
}

// WalletContents groups the two wallet sections that travel in read and
// update payloads.
type WalletContents struct {
	PersonalData []PersonalDataEntry `json:"personalData"`
	Certificates []Certificate       `json:"certificates"`
}

// WalletData is the decrypted wallet as returned by the server: owner
// profile plus contents.
type WalletData struct {
	User UserProfile `json:"user"`
	WalletContents
}

// EntryKind discriminates the two wallet entry variants.
type EntryKind string

const (
	EntryPersonalData EntryKind = "personalData"
	EntryCertificate  EntryKind = "certificate"
)

// WalletEntry is the display-ready union of a personal-data pair and a
// certificate. For personal data, Value is set and Fields is nil; for
// certificates, Fields carries the attested attributes.
type WalletEntry struct {
	Kind   EntryKind
	Name   string
	Value  string
	Fields []CertificateField
}

// Entries flattens the wallet contents into display entries. Entries with
// no non-empty fields are dropped: personal data needs a name and a value,
// a certificate needs at least one attested attribute besides its name.
func (w WalletContents) Entries() []WalletEntry {
	entries := make([]WalletEntry, 0, len(w.PersonalData)+len(w.Certificates))

	for _, pd := range w.PersonalData {
		if pd.Name == "" || pd.Value == "" {
			continue
		}
		entries = append(entries, WalletEntry{
			Kind:  EntryPersonalData,
			Name:  pd.Name,
			Value: pd.Value,
		})
	}

	for _, cert := range w.Certificates {
		fields := cert.Fields()
		if len(fields) == 0 {
			continue
		}
		entries = append(entries, WalletEntry{
			Kind:   EntryCertificate,
			Name:   cert.Name(),
			Fields: fields,
		})
	}

	return entries
}

// PublicEntries reduces the wallet contents to field names only, the shape
// shown on another user's public wallet page. Values never leave the
// owner's authenticated session.
func (w WalletContents) PublicEntries() []WalletEntry {
	entries := make([]WalletEntry, 0, len(w.PersonalData)+len(w.Certificates))

	for _, pd := range w.PersonalData {
		if pd.Name == "" {
			continue
		}
		entries = append(entries, WalletEntry{Kind: EntryPersonalData, Name: pd.Name})
	}

	for _, cert := range w.Certificates {
		if cert.Name() == "" {
			continue
		}
		entries = append(entries, WalletEntry{Kind: EntryCertificate, Name: cert.Name()})
	}

	return entries
}

// WalletReadRequest unlocks the caller's own wallet.
type WalletReadRequest struct {
	MasterKey string `json:"masterKey"`
}

// WalletUpdateRequest replaces the wallet contents. The server re-encrypts
// under the supplied master key; a wrong key is rejected server-side.
type WalletUpdateRequest struct {
	Data      WalletContents `json:"data"`
	MasterKey string         `json:"masterKey"`
}
