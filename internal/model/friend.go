package model

import "time"

// FriendAmendment is a durable name-only record sent to the local database
// via the API. It is unrelated to the in-memory Amendment collection.
type FriendAmendment struct {
	ID     int64     `json:"id"`
	Name   string    `json:"amendment_name"`
	SentAt time.Time `json:"sent_at"`
}
