package models

import (
	"time"
)

// RootFolderName is the name given to the folder created with every data room
const RootFolderName = "Root"

type Folder struct {
	ID             string       `json:"id" db:"id"`
	Name           string       `json:"name" db:"name"`
	DataRoomID     string       `json:"data_room_id" db:"data_room_id"`
	ParentFolderID *string      `json:"parent_folder_id" db:"parent_folder_id"` // NULL = root folder of the data room
	Status         EntityStatus `json:"status" db:"status"`
	CreatedAt      time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at" db:"updated_at"`

	// Derived while assembling a document tree, never stored
	ChildrenFolderIDs []string `json:"children_folder_ids"`
	DocumentIDs       []string `json:"document_ids"`
}

// IsRoot reports whether the folder is the top of its data room's tree
func (f *Folder) IsRoot() bool {
	return f.ParentFolderID == nil
}
