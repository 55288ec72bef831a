package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/reservation/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
	"time"
)

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	CreateWithRooms(ctx context.Context, reservation model.Reservation, rooms []model.ReservationRoom) error
	RoomsByReservation(ctx context.Context, reservationID string) ([]model.ReservationRoom, error)
	GetRoomLine(ctx context.Context, lineID string) (model.ReservationRoom, error)
	UpdateRoomLine(ctx context.Context, req map[string]any, lineID string) error
	FindOverlapping(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]model.OverlappingStay, error)
	NextCodeSequence(ctx context.Context) (int64, error)
}

type reservationImpl struct {
	gRepo.Repository[model.Reservation]
	roomRepo gRepo.Repository[model.ReservationRoom]
	db       *postgres.Connection
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &reservationImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		roomRepo:   gRepo.NewRepository[model.ReservationRoom](model.RoomEntityName, model.RoomTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreateWithRooms writes the reservation and its room lines atomically.
func (repo *reservationImpl) CreateWithRooms(ctx context.Context, reservation model.Reservation, rooms []model.ReservationRoom) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".CreateWithRooms")
	defer scope.End()

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	if err := repo.InsertTx(ctx, tx, reservation); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			logger.ErrorWithStack(rollbackErr)
		}

		return err
	}

	if len(rooms) > 0 {
		if err := repo.roomRepo.InsertBulkTx(ctx, tx, rooms); err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}

			return err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to commit transaction (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *reservationImpl) RoomsByReservation(ctx context.Context, reservationID string) ([]model.ReservationRoom, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationID,
				Operator: gDto.FilterOperatorEq,
				Value:    reservationID,
				Table:    model.RoomTableName,
			},
		},
	}

	return repo.roomRepo.GetAll(ctx, gDto.QueryParams{}, filter)
}

func (repo *reservationImpl) GetRoomLine(ctx context.Context, lineID string) (model.ReservationRoom, error) {
	return repo.roomRepo.Get(ctx, lineFilter(lineID))
}

func (repo *reservationImpl) UpdateRoomLine(ctx context.Context, req map[string]any, lineID string) error {
	return repo.roomRepo.Update(ctx, req, lineFilter(lineID))
}

func lineFilter(lineID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    lineID,
				Table:    model.RoomTableName,
			},
		},
	}
}

// FindOverlapping returns the stay windows of non-cancelled reservations that
// intersect [checkIn, checkOut) and hold rooms of the given type, with the
// room count summed per reservation. Intervals are half-open, back-to-back
// stays sharing a boundary date do not overlap.
func (repo *reservationImpl) FindOverlapping(ctx context.Context, roomTypeID string, checkIn, checkOut time.Time) ([]model.OverlappingStay, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindOverlapping")
	defer scope.End()

	query := fmt.Sprintf(
		`SELECT r.%s AS reservation_id, r.%s, r.%s, SUM(rr.quantity) AS quantity
		FROM %s r
		JOIN %s rr ON rr.%s = r.%s
		WHERE rr.%s = $1
			AND r.%s != $2
			AND r.%s < $3
			AND r.%s > $4
		GROUP BY r.%s, r.%s, r.%s`,
		model.FieldID, model.FieldCheckIn, model.FieldCheckOut,
		model.TableName,
		model.RoomTableName, model.FieldReservationID, model.FieldID,
		model.FieldRoomTypeID,
		model.FieldStatus,
		model.FieldCheckIn,
		model.FieldCheckOut,
		model.FieldID, model.FieldCheckIn, model.FieldCheckOut,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stays := []model.OverlappingStay{}

	err := repo.db.Read.SelectContext(ctx, &stays, query, roomTypeID, model.StatusCancelled, checkOut, checkIn)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find overlapping data (%s): %w", model.EntityName, err)
	}

	return stays, nil
}

// NextCodeSequence draws the next value of the reservation code sequence.
func (repo *reservationImpl) NextCodeSequence(ctx context.Context) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".NextCodeSequence")
	defer scope.End()

	var seq int64

	err := repo.db.Write.GetContext(ctx, &seq, "SELECT nextval('reservation_code_seq')")
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to get next code sequence (%s): %w", model.EntityName, err)
	}

	return seq, nil
}
