package models

import (
	"time"
)

// Document is always a leaf of the document tree
type Document struct {
	ID         string       `json:"id" db:"id"`
	Name       string       `json:"name" db:"name"`
	Content    string       `json:"content" db:"content"` // Opaque text payload
	DataRoomID string       `json:"data_room_id" db:"data_room_id"`
	FolderID   string       `json:"folder_id" db:"folder_id"`
	Status     EntityStatus `json:"status" db:"status"`
	CreatedAt  time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at" db:"updated_at"`
}
