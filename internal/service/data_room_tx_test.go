package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"auralis/internal/domain/models"
	"auralis/internal/domain/services"
	"auralis/internal/repository/postgres"

	"github.com/pashagolub/pgxmock/v4"
)

func newPostgresDataRoomService(t *testing.T) (services.DataRoomService, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool() error = %v", err)
	}
	t.Cleanup(mock.Close)

	cfg := &postgres.RepositoryConfig{
		Pool:   mock,
		Tables: postgres.NewTableNames("test_"),
		Logger: testLogger(),
	}
	svc := NewDataRoomService(
		postgres.NewTransactionManager(mock, cfg.Logger),
		postgres.NewDataRoomRepository(cfg),
		postgres.NewFolderRepository(cfg),
		&fakeAnsaradaClient{},
		10,
		cfg.Logger,
	)
	return svc, mock
}

func TestCreateDataRoom_Postgres(t *testing.T) {
	svc, mock := newPostgresDataRoomService(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Millisecond)
	rootID := "9b2f7a0e-1111-4c3e-9a77-2f5d2c1e0b01"

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET CONSTRAINTS test_fk_data_room_root_folder DEFERRED")).
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO test_data_rooms")).
		WithArgs("Deal Room", models.DataRoomSourceOriginal, models.StatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("room-1", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO test_folders")).
		WithArgs(models.RootFolderName, "room-1", pgxmock.AnyArg(), models.StatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(rootID, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE test_data_rooms")).
		WithArgs(rootID, "room-1").
		WillReturnRows(pgxmock.NewRows([]string{"root_folder_id", "updated_at"}).
			AddRow(&rootID, later))
	mock.ExpectCommit()

	room, err := svc.CreateDataRoom(context.Background(), &services.CreateDataRoomRequest{
		Name:   "Deal Room",
		Source: "original",
	})
	if err != nil {
		t.Fatalf("CreateDataRoom() error = %v", err)
	}

	if room.ID != "room-1" {
		t.Errorf("ID = %q, want room-1", room.ID)
	}
	if room.RootFolderID == nil || *room.RootFolderID != rootID {
		t.Errorf("RootFolderID = %v, want %s", room.RootFolderID, rootID)
	}
	if !room.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want %v", room.UpdatedAt, later)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateDataRoom_PostgresRollback(t *testing.T) {
	svc, mock := newPostgresDataRoomService(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	boom := errors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SET CONSTRAINTS test_fk_data_room_root_folder DEFERRED")).
		WillReturnResult(pgxmock.NewResult("SET", 0))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO test_data_rooms")).
		WithArgs("Deal Room", models.DataRoomSourceOriginal, models.StatusActive).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("room-1", now, now))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO test_folders")).
		WithArgs(models.RootFolderName, "room-1", pgxmock.AnyArg(), models.StatusActive).
		WillReturnError(boom)
	mock.ExpectRollback()

	room, err := svc.CreateDataRoom(context.Background(), &services.CreateDataRoomRequest{
		Name:   "Deal Room",
		Source: "original",
	})
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want %v", err, boom)
	}
	if room != nil {
		t.Error("no room may be returned when the transaction rolls back")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
