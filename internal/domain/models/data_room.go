package models

import (
	"time"
)

// DataRoomSource tells where a data room lives
type DataRoomSource string

const (
	DataRoomSourceOriginal DataRoomSource = "original"
	DataRoomSourceAnsarada DataRoomSource = "ansarada"
)

// DataRoomSources lists the accepted sources (mirrors the CHECK constraint)
var DataRoomSources = []DataRoomSource{DataRoomSourceOriginal, DataRoomSourceAnsarada}

type DataRoom struct {
	ID           string         `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Source       DataRoomSource `json:"source" db:"source"`
	Status       EntityStatus   `json:"status" db:"status"`
	RootFolderID *string        `json:"root_folder_id" db:"root_folder_id"` // NULL only inside the creating transaction
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}
