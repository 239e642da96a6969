package models

import (
	"time"
)

type User struct {
	ID                       string       `json:"id" db:"id"`
	AuthProviderUserID       string       `json:"auth_provider_user_id" db:"auth_provider_user_id"`
	Status                   EntityStatus `json:"status" db:"status"`
	AccessibleUserProjectIDs []string     `json:"accessible_user_project_ids"`
	CreatedAt                time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at" db:"updated_at"`
}

// UserAccessibleProject summarizes a project a user belongs to, with the user's role
type UserAccessibleProject struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description *string      `json:"description"`
	Status      EntityStatus `json:"status"`
	Role        UserRole     `json:"role"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
