package models

// EntityStatus is the soft-delete lifecycle marker shared by every persisted entity.
// Reads only ever surface rows with StatusActive.
type EntityStatus string

const (
	StatusActive   EntityStatus = "active"
	StatusDisabled EntityStatus = "disabled"
	StatusDeleted  EntityStatus = "deleted"
)

// EntityStatuses lists every valid status, in lifecycle order
var EntityStatuses = []EntityStatus{StatusActive, StatusDisabled, StatusDeleted}

func (s EntityStatus) IsActive() bool {
	return s == StatusActive
}
