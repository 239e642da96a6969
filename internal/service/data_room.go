package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"auralis/internal/ansarada"
	"auralis/internal/config"
	"auralis/internal/domain"
	"auralis/internal/domain/models"
	"auralis/internal/domain/repositories"
	"auralis/internal/domain/services"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// AnsaradaClient lists the data rooms a bearer token can see on Ansarada
type AnsaradaClient interface {
	ListDataRooms(ctx context.Context, accessToken string, first int) ([]ansarada.DataRoom, error)
}

// ansaradaIDPrefix namespaces proxied room ids so they never collide with local uuids
const ansaradaIDPrefix = "ansarada_"

// dataRoomService implements the DataRoomService interface
type dataRoomService struct {
	txManager       repositories.TransactionManager
	dataRoomRepo    repositories.DataRoomRepository
	folderRepo      repositories.FolderRepository
	ansarada        AnsaradaClient
	defaultPageSize int
	logger          *slog.Logger
	now             func() time.Time
}

// NewDataRoomService creates a new data room service
func NewDataRoomService(
	txManager repositories.TransactionManager,
	dataRoomRepo repositories.DataRoomRepository,
	folderRepo repositories.FolderRepository,
	ansaradaClient AnsaradaClient,
	defaultPageSize int,
	logger *slog.Logger,
) services.DataRoomService {
	if defaultPageSize <= 0 || defaultPageSize > config.MaxAnsaradaPageSize {
		defaultPageSize = 10
	}
	return &dataRoomService{
		txManager:       txManager,
		dataRoomRepo:    dataRoomRepo,
		folderRepo:      folderRepo,
		ansarada:        ansaradaClient,
		defaultPageSize: defaultPageSize,
		logger:          logger,
		now:             time.Now,
	}
}

// CreateDataRoom creates the data room and its root folder in one transaction.
//
// data_rooms.root_folder_id and folders.data_room_id reference each other, so
// the root folder FK is deferred to commit: the room is inserted without a root,
// the root folder is inserted against the room, and the room is then pointed at
// it. Either all three writes land or none do.
func (s *dataRoomService) CreateDataRoom(ctx context.Context, req *services.CreateDataRoomRequest) (*models.DataRoom, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	room := &models.DataRoom{
		Name:   strings.TrimSpace(req.Name),
		Source: models.DataRoomSource(req.Source),
		Status: models.StatusActive,
	}

	err := s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.dataRoomRepo.DeferRootFolderConstraint(txCtx); err != nil {
			return err
		}

		if err := s.dataRoomRepo.Create(txCtx, room); err != nil {
			return err
		}

		root := &models.Folder{
			Name:       models.RootFolderName,
			DataRoomID: room.ID,
			Status:     models.StatusActive,
		}
		if err := s.folderRepo.Create(txCtx, root); err != nil {
			return fmt.Errorf("create root folder: %w", err)
		}

		return s.dataRoomRepo.SetRootFolder(txCtx, room, root.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("data room created",
		"id", room.ID,
		"name", room.Name,
		"source", room.Source,
		"root_folder_id", *room.RootFolderID,
	)

	return room, nil
}

// GetDataRoom retrieves an active data room by ID
func (s *dataRoomService) GetDataRoom(ctx context.Context, id string) (*models.DataRoom, error) {
	return s.dataRoomRepo.GetByID(ctx, id)
}

// ListAnsaradaDataRooms proxies the caller's Ansarada rooms. first <= 0 means default page size.
func (s *dataRoomService) ListAnsaradaDataRooms(ctx context.Context, accessToken string, first int) ([]models.DataRoom, error) {
	if first <= 0 {
		first = s.defaultPageSize
	}

	err := validation.Errors{
		"access_token": validation.Validate(strings.TrimSpace(accessToken), validation.Required),
		"first":        validation.Validate(first, validation.Min(1), validation.Max(config.MaxAnsaradaPageSize)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	remote, err := s.ansarada.ListDataRooms(ctx, accessToken, first)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rooms := make([]models.DataRoom, 0, len(remote))
	for _, r := range remote {
		rooms = append(rooms, models.DataRoom{
			ID:        ansaradaIDPrefix + r.ID,
			Name:      r.DisplayName,
			Source:    models.DataRoomSourceAnsarada,
			Status:    models.StatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	s.logger.Debug("ansarada data rooms listed", "count", len(rooms), "first", first)

	return rooms, nil
}

func (s *dataRoomService) validateCreateRequest(req *services.CreateDataRoomRequest) error {
	sources := make([]interface{}, len(models.DataRoomSources))
	for i, src := range models.DataRoomSources {
		sources[i] = string(src)
	}

	return validation.ValidateStruct(req,
		validation.Field(&req.Name,
			validation.Required,
			validation.By(notBlank),
			validation.RuneLength(1, config.MaxDataRoomNameLength),
		),
		validation.Field(&req.Source,
			validation.Required,
			validation.In(sources...),
		),
	)
}
