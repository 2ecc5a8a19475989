// Package tag is the narrow contract the wallet flows need from an NFC
// radio: scan a tag for its records, write a record set back.
package tag

import (
	"context"
	"strings"

	"tagvault/internal/envelope"
)

const (
	// RecordTypeMIME marks a MIME-typed record.
	RecordTypeMIME = "mime"
	// MediaTypeWallet is the media type for envelope records.
	MediaTypeWallet = "application/x-wallet"
)

// Record is one NDEF-style record on a tag.
type Record struct {
	Type      string `json:"type"`
	MediaType string `json:"mediaType"`
	Payload   []byte `json:"payload"`
}

// Device abstracts the tag radio. Implementations must be safe for one
// operation at a time; the wallet flows never overlap scan and write.
type Device interface {
	Scan(ctx context.Context) ([]Record, error)
	Write(ctx context.Context, records []Record) error
}

// WalletRecord builds the single record written for an envelope string.
// The envelope text is stored as UTF-8 bytes.
func WalletRecord(env string) Record {
	return Record{
		Type:      RecordTypeMIME,
		MediaType: MediaTypeWallet,
		Payload:   []byte(env),
	}
}

// FindEnvelope returns the first record whose payload is a recognized
// envelope. Records with unknown content are skipped, not errors: a tag may
// carry payloads meant for other applications.
func FindEnvelope(records []Record) (string, bool) {
	for _, rec := range records {
		text := strings.TrimSpace(string(rec.Payload))
		if envelope.IsRecognized(text) {
			return text, true
		}
	}
	return "", false
}
