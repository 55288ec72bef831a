package service

import (
	"context"
	"fmt"
	"slices"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	availabilityDto "lodge/internal/domains/availability/dto"
	availabilitySvc "lodge/internal/domains/availability/service"
	ratesDto "lodge/internal/domains/rates/dto"
	ratesSvc "lodge/internal/domains/rates/service"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/internal/domains/reservation/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepository "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"lodge/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Delete(ctx context.Context, id string) error
	AssignRoom(ctx context.Context, id, lineID string, req dto.AssignRoomRequest) error
	Confirm(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Reservation
	rooms        roomRepository.Room
	rates        ratesSvc.Rates
	availability availabilitySvc.Availability
	kafkaClient  kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	rooms roomRepository.Room,
	rates ratesSvc.Rates,
	availability availabilitySvc.Availability,
	kafkaClient kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		rooms:        rooms,
		rates:        rates,
		availability: availability,
		kafkaClient:  kafkaClient,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create books a stay: every room line is checked against availability,
// priced through the quotation engine, and written together with the
// reservation in one transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	loc := timezone.GetLocation()

	checkIn, err := daterange.ParseDateOnly(req.CheckIn, loc)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check_in date")
	}

	checkOut, err := daterange.ParseDateOnly(req.CheckOut, loc)
	if err != nil {
		return res, failure.BadRequestFromString("invalid check_out date")
	}

	if daterange.NightsCount(checkIn, checkOut) < 1 {
		return res, failure.BadRequestFromString("check_out must be after check_in")
	}

	if err = s.checkCapacity(ctx, req); err != nil {
		return res, err
	}

	reservationID := uuid.NewString()

	rooms, total, err := s.priceRooms(ctx, req, reservationID, user)
	if err != nil {
		return res, err
	}

	code, err := s.nextCode(ctx)
	if err != nil {
		return res, err
	}

	reservation := req.ToModel(code, user, checkIn, checkOut, total)
	reservation.ID = reservationID

	if err = s.repo.CreateWithRooms(ctx, reservation, rooms); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.afterWrite(ctx, reservation, dto.EventReservationCreated)

	res.FromModelWithRooms(reservation, rooms)

	return res, nil
}

// checkCapacity verifies every room type of the request fits the stay window.
// Lines sharing a room type compete for the same physical rooms, so their
// quantities are summed before the check.
func (s *serviceImpl) checkCapacity(ctx context.Context, req dto.CreateReservationRequest) error {
	quantityByRoomType := map[string]int{}
	for _, room := range req.Rooms {
		quantityByRoomType[room.RoomTypeID] += normalizeQuantity(room.Quantity)
	}

	for roomTypeID, quantity := range quantityByRoomType {
		rooms := quantity

		result, err := s.availability.Search(ctx, availabilityDto.SearchRequest{
			RoomTypeID: roomTypeID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Rooms:      &rooms,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to check availability")

			return fmt.Errorf("failed to check availability: %w", err)
		}

		if !result.CanAccommodate {
			return failure.Conflict(fmt.Sprintf("not enough rooms of type %s for the requested stay", roomTypeID))
		}
	}

	return nil
}

func (s *serviceImpl) priceRooms(ctx context.Context, req dto.CreateReservationRequest, reservationID, user string) ([]model.ReservationRoom, money.Cents, error) {
	rooms := make([]model.ReservationRoom, len(req.Rooms))

	var total money.Cents

	for i, room := range req.Rooms {
		roomTypeID := room.RoomTypeID

		quote, err := s.rates.Quote(ctx, ratesDto.QuoteRequest{
			RatePlanID: room.RatePlanID,
			RoomTypeID: &roomTypeID,
			PlanCode:   room.PlanCode,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Adults:     room.Adults,
			Children:   room.Children,
		})
		if err != nil {
			return nil, 0, err
		}

		if quote.AnyClosed {
			return nil, 0, failure.Conflict("rate plan is closed on at least one night of the stay")
		}

		quantity := normalizeQuantity(room.Quantity)
		amount := quote.GrandTotal.Mul(int64(quantity))
		total += amount

		rooms[i] = model.ReservationRoom{
			ID:            uuid.NewString(),
			ReservationID: reservationID,
			RoomTypeID:    room.RoomTypeID,
			RatePlanID:    quote.Plan.ID,
			Quantity:      quantity,
			Adults:        quote.Adults,
			Children:      quote.Children,
			Amount:        amount,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return rooms, total, nil
}

func (s *serviceImpl) nextCode(ctx context.Context) (string, error) {
	seq, err := s.repo.NextCodeSequence(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation code sequence")

		return constant.Empty, fmt.Errorf("failed to get reservation code sequence: %w", err)
	}

	return fmt.Sprintf("RSV-%d-%06d", timezone.Now().Year(), seq), nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	rooms, err := s.repo.RoomsByReservation(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation rooms")

		return res, fmt.Errorf("failed to get reservation rooms: %w", err)
	}

	res.FromModelWithRooms(reservation, rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Delete hard-removes a reservation together with its room lines. Only
// pending reservations qualify, anything further along must be cancelled
// instead so the record survives.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status != model.StatusPending {
		return failure.Conflict("only pending reservations can be deleted")
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.afterWrite(ctx, reservation, dto.EventReservationDeleted)

	return nil
}

// AssignRoom binds a physical room to one room line of the reservation. The
// room must belong to the same room type the line was booked for.
func (s *serviceImpl) AssignRoom(ctx context.Context, id, lineID string, req dto.AssignRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if reservation.Status == model.StatusCancelled || reservation.Status == model.StatusCheckedOut {
		return failure.Conflict(fmt.Sprintf("rooms cannot be assigned to a %s reservation", reservation.Status))
	}

	line, err := s.repo.GetRoomLine(ctx, lineID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation room line")

		return fmt.Errorf("failed to get reservation room line: %w", err)
	}

	if line.ID == constant.Empty || line.ReservationID != id {
		return failure.NotFound("reservation room line not found") // nolint:wrapcheck
	}

	room, err := s.rooms.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.RoomTypeID != line.RoomTypeID {
		return failure.Conflict("room does not match the room type booked on this line")
	}

	updatedFields := map[string]any{
		model.FieldRoomID:        req.RoomID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.UpdateRoomLine(ctx, updatedFields, lineID); err != nil {
		log.Error().Err(err).Msg("failed to assign room to reservation line")

		return fmt.Errorf("failed to assign room to reservation line: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusConfirmed, dto.EventReservationConfirmed, model.StatusPending)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusCancelled, dto.EventReservationCancelled, model.StatusPending, model.StatusConfirmed)
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusCheckedIn, dto.EventReservationCheckedIn, model.StatusConfirmed)
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) error {
	return s.transition(ctx, id, model.StatusCheckedOut, dto.EventReservationCheckedOut, model.StatusCheckedIn)
}

func (s *serviceImpl) transition(ctx context.Context, id, newStatus, eventType string, allowedFrom ...string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	reservation, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if !slices.Contains(allowedFrom, reservation.Status) {
		return failure.Conflict(fmt.Sprintf("reservation cannot move from %s to %s", reservation.Status, newStatus))
	}

	updatedFields := map[string]any{
		model.FieldStatus:        newStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation status")

		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	reservation.Status = newStatus
	s.afterWrite(ctx, reservation, eventType)

	return nil
}

// afterWrite invalidates reservation caches and publishes the lifecycle
// event, both off the request path.
func (s *serviceImpl) afterWrite(ctx context.Context, reservation model.Reservation, eventType string) {
	s.invalidate(ctx, reservation.ID)

	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.ReservationEvent{
			Type:          eventType,
			ReservationID: reservation.ID,
			Code:          reservation.Code,
			Status:        reservation.Status,
			OccurredAt:    timezone.Now(),
		}

		err := s.kafkaClient.SendMessages(c, constant.KafkaTopicReservationEvents, kafka.Message{
			Key:   reservation.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("type", eventType).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, reservationID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, reservationID)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func normalizeQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}

	return quantity
}
