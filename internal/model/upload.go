package model

import "time"

// UploadedFile is the metadata recorded when a simulated upload completes.
// IDs are timestamp-based and unique only within one simulator instance.
type UploadedFile struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Size       string    `json:"size"` // human-readable, e.g. "1.2 MB"
	Type       string    `json:"type"`
	UploadedAt time.Time `json:"uploaded_at"`
}
