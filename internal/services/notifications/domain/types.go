// Package domain holds notification types. The notification fan-out is not
// wired to any live path yet; the storage shape is reserved so the schema
// can ship ahead of the feature.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one pending client notification
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Fid       int64     `json:"fid"`
	Kind      string    `json:"kind"`
	Payload   []byte    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// New builds a notification with a fresh id
func New(fid int64, kind string, payload []byte) Notification {
	return Notification{
		ID:      uuid.New(),
		Fid:     fid,
		Kind:    kind,
		Payload: payload,
	}
}
