package models

import "time"

// Setting is a key/value site setting. Writes are upserts keyed by Key.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
