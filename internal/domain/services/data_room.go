package services

import (
	"context"

	"auralis/internal/domain/models"
)

// CreateDataRoomRequest represents a request to create a data room
type CreateDataRoomRequest struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// DataRoomService defines business logic operations for data rooms
type DataRoomService interface {
	// CreateDataRoom atomically creates a data room and its root folder
	CreateDataRoom(ctx context.Context, req *CreateDataRoomRequest) (*models.DataRoom, error)

	// GetDataRoom retrieves an active data room
	GetDataRoom(ctx context.Context, id string) (*models.DataRoom, error)

	// ListAnsaradaDataRooms lists the caller's rooms on Ansarada, mapped to local shape.
	// Nothing is persisted.
	ListAnsaradaDataRooms(ctx context.Context, accessToken string, first int) ([]models.DataRoom, error)
}
