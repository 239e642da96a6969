package models

import (
	"time"
)

// UserRole is a user's role within a project
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"
	UserRoleViewer UserRole = "viewer"
)

var UserRoles = []UserRole{UserRoleAdmin, UserRoleEditor, UserRoleViewer}

type Project struct {
	ID                       string       `json:"id" db:"id"`
	Name                     string       `json:"name" db:"name"`
	Description              *string      `json:"description" db:"description"`
	Status                   EntityStatus `json:"status" db:"status"`
	DataRoomIDs              []string     `json:"data_room_ids"`
	AccessibleUserProjectIDs []string     `json:"accessible_user_project_ids"`
	CreatedAt                time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at" db:"updated_at"`
}

// UserProject is the membership row joining a user to a project with a role
type UserProject struct {
	ID        string       `json:"id" db:"id"`
	UserID    string       `json:"user_id" db:"user_id"`
	ProjectID string       `json:"project_id" db:"project_id"`
	UserRole  UserRole     `json:"user_role" db:"user_role"`
	Status    EntityStatus `json:"status" db:"status"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

// ProjectMember is a user as seen from a project
type ProjectMember struct {
	UserID             string    `json:"user_id"`
	AuthProviderUserID string    `json:"auth_provider_user_id"`
	UserRole           UserRole  `json:"user_role"`
	JoinedAt           time.Time `json:"joined_at"`
}
