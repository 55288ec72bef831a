package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/availability/dto"
	"lodge/internal/domains/availability/service"
	reservationMocks "lodge/internal/domains/reservation/mocks"
	reservationModel "lodge/internal/domains/reservation/model"
	roomMocks "lodge/internal/domains/room/mocks"
	"lodge/shared/failure"
)

const testRoomTypeID = "4f1e9d70-8e7a-4a35-86a1-2b7c45d9e222"

type availabilityFixture struct {
	roomRepo        *roomMocks.MockRoom
	reservationRepo *reservationMocks.MockReservation
	svc             service.Availability
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &availabilityFixture{
		roomRepo:        roomMocks.NewMockRoom(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
	}
	f.svc = service.New(f.roomRepo, f.reservationRepo, mocks.NewOtel())

	return f
}

func stay(checkIn, checkOut string, quantity int) reservationModel.OverlappingStay {
	in, _ := time.Parse("2006-01-02", checkIn)
	out, _ := time.Parse("2006-01-02", checkOut)

	return reservationModel.OverlappingStay{
		ReservationID: "res-" + checkIn,
		CheckIn:       in,
		CheckOut:      out,
		Quantity:      quantity,
	}
}

func intPtr(v int) *int {
	return &v
}

func TestAvailabilityService_Search(t *testing.T) {
	tests := []struct {
		name               string
		req                dto.SearchRequest
		totalRooms         int
		stays              []reservationModel.OverlappingStay
		wantDays           []dto.DayAvailability
		wantMinAvailable   int
		wantCanAccommodate bool
	}{
		{
			name: "no reservations leaves the full inventory",
			req: dto.SearchRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-12",
			},
			totalRooms: 5,
			wantDays: []dto.DayAvailability{
				{Date: "2025-03-10", Available: 5},
				{Date: "2025-03-11", Available: 5},
			},
			wantMinAvailable:   5,
			wantCanAccommodate: true,
		},
		{
			name: "overlapping stay reduces only the shared nights",
			req: dto.SearchRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-13",
			},
			totalRooms: 5,
			stays: []reservationModel.OverlappingStay{
				stay("2025-03-11", "2025-03-13", 2),
			},
			wantDays: []dto.DayAvailability{
				{Date: "2025-03-10", Available: 5},
				{Date: "2025-03-11", Available: 3},
				{Date: "2025-03-12", Available: 3},
			},
			wantMinAvailable:   3,
			wantCanAccommodate: true,
		},
		{
			name: "back to back stay sharing the checkout date does not count",
			req: dto.SearchRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    "2025-03-12",
				CheckOut:   "2025-03-14",
			},
			totalRooms: 2,
			stays: []reservationModel.OverlappingStay{
				stay("2025-03-10", "2025-03-12", 2),
			},
			wantDays: []dto.DayAvailability{
				{Date: "2025-03-12", Available: 2},
				{Date: "2025-03-13", Available: 2},
			},
			wantMinAvailable:   2,
			wantCanAccommodate: true,
		},
		{
			name: "stay extending beyond the window is clipped to the intersection",
			req: dto.SearchRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-12",
			},
			totalRooms: 4,
			stays: []reservationModel.OverlappingStay{
				stay("2025-03-08", "2025-03-20", 1),
			},
			wantDays: []dto.DayAvailability{
				{Date: "2025-03-10", Available: 3},
				{Date: "2025-03-11", Available: 3},
			},
			wantMinAvailable:   3,
			wantCanAccommodate: true,
		},
		{
			name: "stays stack per night and cannot go below zero",
			req: dto.SearchRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-12",
			},
			totalRooms: 3,
			stays: []reservationModel.OverlappingStay{
				stay("2025-03-10", "2025-03-12", 2),
				stay("2025-03-10", "2025-03-11", 2),
			},
			wantDays: []dto.DayAvailability{
				{Date: "2025-03-10", Available: 0},
				{Date: "2025-03-11", Available: 1},
			},
			wantMinAvailable:   0,
			wantCanAccommodate: false,
		},
		{
			name: "binding figure is the worst night",
			req: dto.SearchRequest{
				RoomTypeID: testRoomTypeID,
				CheckIn:    "2025-03-10",
				CheckOut:   "2025-03-13",
				Rooms:      intPtr(3),
			},
			totalRooms: 5,
			stays: []reservationModel.OverlappingStay{
				stay("2025-03-11", "2025-03-12", 3),
			},
			wantDays: []dto.DayAvailability{
				{Date: "2025-03-10", Available: 5},
				{Date: "2025-03-11", Available: 2},
				{Date: "2025-03-12", Available: 5},
			},
			wantMinAvailable:   2,
			wantCanAccommodate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAvailabilityFixture(t)

			f.roomRepo.EXPECT().
				CountSellable(gomock.Any(), testRoomTypeID).
				Return(tt.totalRooms, nil)

			f.reservationRepo.EXPECT().
				FindOverlapping(gomock.Any(), testRoomTypeID, gomock.Any(), gomock.Any()).
				Return(tt.stays, nil)

			res, err := f.svc.Search(context.Background(), tt.req)

			assert.NoError(t, err)
			assert.Equal(t, testRoomTypeID, res.RoomTypeID)
			assert.Equal(t, tt.req.CheckIn, res.CheckIn)
			assert.Equal(t, tt.req.CheckOut, res.CheckOut)
			assert.Equal(t, tt.totalRooms, res.TotalRooms)
			assert.Equal(t, tt.wantDays, res.Days)
			assert.Equal(t, tt.wantMinAvailable, res.MinAvailable)
			assert.Equal(t, tt.wantCanAccommodate, res.CanAccommodate)
		})
	}
}

func TestAvailabilityService_Search_ZeroNightStay(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.roomRepo.EXPECT().
		CountSellable(gomock.Any(), testRoomTypeID).
		Return(4, nil)

	res, err := f.svc.Search(context.Background(), dto.SearchRequest{
		RoomTypeID: testRoomTypeID,
		CheckIn:    "2025-03-10",
		CheckOut:   "2025-03-10",
	})

	assert.NoError(t, err)
	assert.Empty(t, res.Days)
	assert.Equal(t, 4, res.MinAvailable)
	assert.True(t, res.CanAccommodate)
}

func TestAvailabilityService_Search_DefaultsRequestedRoomsToOne(t *testing.T) {
	f := newAvailabilityFixture(t)

	f.roomRepo.EXPECT().
		CountSellable(gomock.Any(), testRoomTypeID).
		Return(1, nil)

	f.reservationRepo.EXPECT().
		FindOverlapping(gomock.Any(), testRoomTypeID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	res, err := f.svc.Search(context.Background(), dto.SearchRequest{
		RoomTypeID: testRoomTypeID,
		CheckIn:    "2025-03-10",
		CheckOut:   "2025-03-11",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.RequestedRooms)
	assert.True(t, res.CanAccommodate)
}

func TestAvailabilityService_Search_Errors(t *testing.T) {
	t.Run("invalid dates", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{
			RoomTypeID: testRoomTypeID,
			CheckIn:    "bad",
			CheckOut:   "2025-03-12",
		})

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("check out before check in", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{
			RoomTypeID: testRoomTypeID,
			CheckIn:    "2025-03-12",
			CheckOut:   "2025-03-10",
		})

		assert.Error(t, err)
		assert.Equal(t, 422, failure.GetCode(err))
	})

	t.Run("room count query fails", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.roomRepo.EXPECT().
			CountSellable(gomock.Any(), testRoomTypeID).
			Return(0, errors.New("db down"))

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{
			RoomTypeID: testRoomTypeID,
			CheckIn:    "2025-03-10",
			CheckOut:   "2025-03-12",
		})

		assert.Error(t, err)
	})

	t.Run("overlap query fails", func(t *testing.T) {
		f := newAvailabilityFixture(t)

		f.roomRepo.EXPECT().
			CountSellable(gomock.Any(), testRoomTypeID).
			Return(4, nil)

		f.reservationRepo.EXPECT().
			FindOverlapping(gomock.Any(), testRoomTypeID, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db down"))

		_, err := f.svc.Search(context.Background(), dto.SearchRequest{
			RoomTypeID: testRoomTypeID,
			CheckIn:    "2025-03-10",
			CheckOut:   "2025-03-12",
		})

		assert.Error(t, err)
	})
}
