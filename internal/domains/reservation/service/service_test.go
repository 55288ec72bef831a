package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/kafka"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	availabilityDto "lodge/internal/domains/availability/dto"
	availabilityMocks "lodge/internal/domains/availability/mocks"
	ratesDto "lodge/internal/domains/rates/dto"
	ratesMocks "lodge/internal/domains/rates/mocks"
	reservationMocks "lodge/internal/domains/reservation/mocks"
	"lodge/internal/domains/reservation/model"
	"lodge/internal/domains/reservation/model/dto"
	"lodge/internal/domains/reservation/service"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"
	"lodge/shared/money"
	"lodge/shared/timezone"
)

const (
	testRoomTypeID = "4f1e9d70-8e7a-4a35-86a1-2b7c45d9e222"
	testPlanID     = "7f9c84f2-1f5a-4f4b-9d33-d6b9f2a0c111"
)

type reservationFixture struct {
	repo         *reservationMocks.MockReservation
	rooms        *roomMocks.MockRoom
	rates        *ratesMocks.MockRates
	availability *availabilityMocks.MockAvailability
	kafkaClient  *kafkaMocks.MockClient
	cfg          *config.Config
	cache        *cacheMocks.MockRedisCache
	svc          service.Reservation
}

func newReservationFixture(t *testing.T) *reservationFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &reservationFixture{
		repo:         reservationMocks.NewMockReservation(ctrl),
		rooms:        roomMocks.NewMockRoom(ctrl),
		rates:        ratesMocks.NewMockRates(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		kafkaClient:  kafkaMocks.NewMockClient(ctrl),
		cfg:          &config.Config{},
	}
	f.cache = cacheMocks.NewMockRedisCache(ctrl)
	f.svc = service.New(f.repo, f.rooms, f.rates, f.availability, f.kafkaClient, f.cfg, f.cache, mocks.NewOtel())

	return f
}

// Cache writes and invalidations run off the request path, so every test
// tolerates them without requiring them.
func (f *reservationFixture) allowAsyncCacheOps() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func accommodating(canAccommodate bool) availabilityDto.AvailabilityResponse {
	return availabilityDto.AvailabilityResponse{CanAccommodate: canAccommodate}
}

func openQuote(total string) ratesDto.QuoteResponse {
	return ratesDto.QuoteResponse{
		Plan:       ratesDto.PlanSummary{ID: testPlanID, Code: "BAR"},
		GrandTotal: money.MustParse(total),
		Adults:     2,
	}
}

func createRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
		CheckIn:    "2025-03-10",
		CheckOut:   "2025-03-12",
		Rooms: []dto.ReservationRoomRequest{
			{RoomTypeID: testRoomTypeID, Quantity: 1},
		},
	}
}

func TestReservationService_Create(t *testing.T) {
	t.Run("books the stay and returns a pending reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		f.allowAsyncCacheOps()

		f.availability.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(accommodating(true), nil)

		f.rates.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(openQuote("260"), nil)

		f.repo.EXPECT().
			NextCodeSequence(gomock.Any()).
			Return(int64(42), nil)

		var storedRooms []model.ReservationRoom

		f.repo.EXPECT().
			CreateWithRooms(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservation model.Reservation, rooms []model.ReservationRoom) error {
				storedRooms = rooms

				assert.Equal(t, model.StatusPending, reservation.Status)
				assert.Equal(t, money.MustParse("260"), reservation.TotalAmount)

				return nil
			})

		res, err := f.svc.Create(context.Background(), createRequest())

		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("RSV-%d-000042", timezone.Now().Year()), res.Code)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, money.MustParse("260"), res.TotalAmount)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, testPlanID, res.Rooms[0].RatePlanID)
		assert.Len(t, storedRooms, 1)
		assert.Equal(t, res.ID, storedRooms[0].ReservationID)
	})

	t.Run("multiplies the quote by the room quantity", func(t *testing.T) {
		f := newReservationFixture(t)
		f.allowAsyncCacheOps()

		req := createRequest()
		req.Rooms[0].Quantity = 3

		f.availability.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, search availabilityDto.SearchRequest) (availabilityDto.AvailabilityResponse, error) {
				assert.Equal(t, 3, *search.Rooms)

				return accommodating(true), nil
			})

		f.rates.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(openQuote("100"), nil)

		f.repo.EXPECT().
			NextCodeSequence(gomock.Any()).
			Return(int64(1), nil)

		f.repo.EXPECT().
			CreateWithRooms(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, money.MustParse("300"), res.TotalAmount)
		assert.Equal(t, money.MustParse("300"), res.Rooms[0].Amount)
		assert.Equal(t, 3, res.Rooms[0].Quantity)
	})

	t.Run("lines sharing a room type compete for the same rooms", func(t *testing.T) {
		f := newReservationFixture(t)
		f.allowAsyncCacheOps()

		req := createRequest()
		req.Rooms = []dto.ReservationRoomRequest{
			{RoomTypeID: testRoomTypeID, Quantity: 2},
			{RoomTypeID: testRoomTypeID, Quantity: 1},
		}

		f.availability.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, search availabilityDto.SearchRequest) (availabilityDto.AvailabilityResponse, error) {
				assert.Equal(t, 3, *search.Rooms)

				return accommodating(true), nil
			})

		f.rates.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(openQuote("100"), nil).
			Times(2)

		f.repo.EXPECT().
			NextCodeSequence(gomock.Any()).
			Return(int64(2), nil)

		f.repo.EXPECT().
			CreateWithRooms(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, money.MustParse("300"), res.TotalAmount)
	})

	t.Run("zero quantity is normalized to one", func(t *testing.T) {
		f := newReservationFixture(t)
		f.allowAsyncCacheOps()

		req := createRequest()
		req.Rooms[0].Quantity = 0

		f.availability.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, search availabilityDto.SearchRequest) (availabilityDto.AvailabilityResponse, error) {
				assert.Equal(t, 1, *search.Rooms)

				return accommodating(true), nil
			})

		f.rates.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(openQuote("100"), nil)

		f.repo.EXPECT().
			NextCodeSequence(gomock.Any()).
			Return(int64(3), nil)

		f.repo.EXPECT().
			CreateWithRooms(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Rooms[0].Quantity)
		assert.Equal(t, money.MustParse("100"), res.TotalAmount)
	})

	t.Run("rejects a stay that does not fit", func(t *testing.T) {
		f := newReservationFixture(t)

		f.availability.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(accommodating(false), nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects a stay when the plan is closed on any night", func(t *testing.T) {
		f := newReservationFixture(t)

		f.availability.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(accommodating(true), nil)

		quote := openQuote("100")
		quote.AnyClosed = true

		f.rates.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(quote, nil)

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects invalid dates", func(t *testing.T) {
		f := newReservationFixture(t)

		req := createRequest()
		req.CheckIn = "bad"

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects a zero night stay", func(t *testing.T) {
		f := newReservationFixture(t)

		req := createRequest()
		req.CheckOut = req.CheckIn

		_, err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("propagates quotation errors", func(t *testing.T) {
		f := newReservationFixture(t)

		f.availability.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			Return(accommodating(true), nil)

		f.rates.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			Return(ratesDto.QuoteResponse{}, failure.UnprocessableEntity("no rate plan matches the selection criteria"))

		_, err := f.svc.Create(context.Background(), createRequest())

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})
}

func TestReservationService_Create_PublishesEvent(t *testing.T) {
	f := newReservationFixture(t)
	f.allowAsyncCacheOps()
	f.cfg.Kafka.Enable = true

	f.availability.EXPECT().
		Search(gomock.Any(), gomock.Any()).
		Return(accommodating(true), nil)

	f.rates.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(openQuote("100"), nil)

	f.repo.EXPECT().
		NextCodeSequence(gomock.Any()).
		Return(int64(7), nil)

	f.repo.EXPECT().
		CreateWithRooms(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	published := make(chan string, 1)

	f.kafkaClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			event, _ := messages[0].Value.(dto.ReservationEvent)
			published <- event.Type

			return nil
		}).
		AnyTimes()

	_, err := f.svc.Create(context.Background(), createRequest())
	assert.NoError(t, err)

	select {
	case eventType := <-published:
		assert.Equal(t, dto.EventReservationCreated, eventType)
	case <-time.After(2 * time.Second):
		t.Fatal("reservation event was not published")
	}
}

func TestReservationService_Get(t *testing.T) {
	reservationID := "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"

	t.Run("returns the reservation with its rooms", func(t *testing.T) {
		f := newReservationFixture(t)
		f.allowAsyncCacheOps()

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		checkIn, _ := time.Parse("2006-01-02", "2025-03-10")
		checkOut, _ := time.Parse("2006-01-02", "2025-03-12")

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{
				ID:          reservationID,
				Code:        "RSV-2025-000042",
				GuestName:   "Ada Lovelace",
				Status:      model.StatusPending,
				CheckIn:     checkIn,
				CheckOut:    checkOut,
				TotalAmount: money.MustParse("260"),
			}, nil)

		f.repo.EXPECT().
			RoomsByReservation(gomock.Any(), reservationID).
			Return([]model.ReservationRoom{
				{ID: "line-1", ReservationID: reservationID, RoomTypeID: testRoomTypeID, RatePlanID: testPlanID, Quantity: 1, Amount: money.MustParse("260")},
			}, nil)

		res, err := f.svc.Get(context.Background(), reservationID)

		assert.NoError(t, err)
		assert.Equal(t, "RSV-2025-000042", res.Code)
		assert.Equal(t, "2025-03-10", res.CheckIn)
		assert.Equal(t, "2025-03-12", res.CheckOut)
		assert.Len(t, res.Rooms, 1)
	})

	t.Run("unknown reservation is not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		_, err := f.svc.Get(context.Background(), reservationID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_Delete(t *testing.T) {
	reservationID := "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"

	t.Run("deletes a pending reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		f.allowAsyncCacheOps()

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: reservationID, Status: model.StatusPending}, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), reservationID)

		assert.NoError(t, err)
	})

	t.Run("refuses to delete a confirmed reservation", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: reservationID, Status: model.StatusConfirmed}, nil)

		err := f.svc.Delete(context.Background(), reservationID)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("unknown reservation is not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := f.svc.Delete(context.Background(), reservationID)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_AssignRoom(t *testing.T) {
	reservationID := "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"
	lineID := "1c2d3e4f-5a6b-4c7d-8e9f-0a1b2c3d4e5f"
	roomID := "6f5e4d3c-2b1a-4f9e-8d7c-6b5a4f3e2d1c"

	confirmedReservation := model.Reservation{ID: reservationID, Status: model.StatusConfirmed}
	bookedLine := model.ReservationRoom{ID: lineID, ReservationID: reservationID, RoomTypeID: testRoomTypeID}

	t.Run("assigns a room of the booked type", func(t *testing.T) {
		f := newReservationFixture(t)
		f.allowAsyncCacheOps()

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedReservation, nil)

		f.repo.EXPECT().
			GetRoomLine(gomock.Any(), lineID).
			Return(bookedLine, nil)

		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: roomID, RoomTypeID: testRoomTypeID, Number: "204"}, nil)

		f.repo.EXPECT().
			UpdateRoomLine(gomock.Any(), gomock.Any(), lineID).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ string) error {
				assert.Equal(t, roomID, fields[model.FieldRoomID])

				return nil
			})

		err := f.svc.AssignRoom(context.Background(), reservationID, lineID, dto.AssignRoomRequest{RoomID: roomID})

		assert.NoError(t, err)
	})

	t.Run("rejects a room of a different type", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedReservation, nil)

		f.repo.EXPECT().
			GetRoomLine(gomock.Any(), lineID).
			Return(bookedLine, nil)

		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: roomID, RoomTypeID: "a0b1c2d3-e4f5-4a6b-8c7d-9e0f1a2b3c4d"}, nil)

		err := f.svc.AssignRoom(context.Background(), reservationID, lineID, dto.AssignRoomRequest{RoomID: roomID})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("line of another reservation is not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedReservation, nil)

		foreignLine := bookedLine
		foreignLine.ReservationID = "00000000-0000-4000-8000-000000000000"

		f.repo.EXPECT().
			GetRoomLine(gomock.Any(), lineID).
			Return(foreignLine, nil)

		err := f.svc.AssignRoom(context.Background(), reservationID, lineID, dto.AssignRoomRequest{RoomID: roomID})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("unknown room is not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(confirmedReservation, nil)

		f.repo.EXPECT().
			GetRoomLine(gomock.Any(), lineID).
			Return(bookedLine, nil)

		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		err := f.svc.AssignRoom(context.Background(), reservationID, lineID, dto.AssignRoomRequest{RoomID: roomID})

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("checked out reservations are closed for assignment", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{ID: reservationID, Status: model.StatusCheckedOut}, nil)

		err := f.svc.AssignRoom(context.Background(), reservationID, lineID, dto.AssignRoomRequest{RoomID: roomID})

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestReservationService_Transitions(t *testing.T) {
	reservationID := "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d"

	tests := []struct {
		name       string
		fromStatus string
		transition func(svc service.Reservation, ctx context.Context, id string) error
		wantErr    bool
	}{
		{
			name:       "confirm a pending reservation",
			fromStatus: model.StatusPending,
			transition: service.Reservation.Confirm,
		},
		{
			name:       "confirm is idempotent only from pending",
			fromStatus: model.StatusConfirmed,
			transition: service.Reservation.Confirm,
			wantErr:    true,
		},
		{
			name:       "cancel a pending reservation",
			fromStatus: model.StatusPending,
			transition: service.Reservation.Cancel,
		},
		{
			name:       "cancel a confirmed reservation",
			fromStatus: model.StatusConfirmed,
			transition: service.Reservation.Cancel,
		},
		{
			name:       "cancel after check in is not allowed",
			fromStatus: model.StatusCheckedIn,
			transition: service.Reservation.Cancel,
			wantErr:    true,
		},
		{
			name:       "check in a confirmed reservation",
			fromStatus: model.StatusConfirmed,
			transition: service.Reservation.CheckIn,
		},
		{
			name:       "check in requires confirmation first",
			fromStatus: model.StatusPending,
			transition: service.Reservation.CheckIn,
			wantErr:    true,
		},
		{
			name:       "check out a checked in reservation",
			fromStatus: model.StatusCheckedIn,
			transition: service.Reservation.CheckOut,
		},
		{
			name:       "check out requires a completed check in",
			fromStatus: model.StatusConfirmed,
			transition: service.Reservation.CheckOut,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReservationFixture(t)
			f.allowAsyncCacheOps()

			f.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Reservation{ID: reservationID, Status: tt.fromStatus}, nil)

			if !tt.wantErr {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := tt.transition(f.svc, context.Background(), reservationID)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 409, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Transition_NotFound(t *testing.T) {
	f := newReservationFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Reservation{}, nil)

	err := f.svc.Confirm(context.Background(), "9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d")

	assert.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}
