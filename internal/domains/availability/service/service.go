package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	"lodge/internal/domains/availability/dto"
	reservationRepo "lodge/internal/domains/reservation/repository"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const defaultRequestedRooms = 1

type Availability interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	roomRepo        roomRepo.Room
	reservationRepo reservationRepo.Reservation
	otel            otel.Otel
}

func New(rooms roomRepo.Room, reservations reservationRepo.Reservation, otel otel.Otel) Availability {
	return &serviceImpl{
		roomRepo:        rooms,
		reservationRepo: reservations,
		otel:            otel,
	}
}

// Search computes per-night availability of a room type over
// [check_in, check_out). A stay fits only when every single night has enough
// rooms, so the binding figure is the minimum across nights rather than any
// aggregate. An unknown room type simply yields zero inventory.
func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	loc := timezone.GetLocation()

	checkIn, err := daterange.ParseDateOnly(req.CheckIn, loc)
	if err != nil {
		return res, failure.UnprocessableEntity("invalid check_in date") // nolint:wrapcheck
	}

	checkOut, err := daterange.ParseDateOnly(req.CheckOut, loc)
	if err != nil {
		return res, failure.UnprocessableEntity("invalid check_out date") // nolint:wrapcheck
	}

	if checkOut.Before(checkIn) {
		return res, failure.UnprocessableEntity("check_out must not be before check_in") // nolint:wrapcheck
	}

	requestedRooms := defaultRequestedRooms
	if req.Rooms != nil {
		requestedRooms = *req.Rooms
	}

	totalRooms, err := s.roomRepo.CountSellable(ctx, req.RoomTypeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sellable rooms")

		return res, fmt.Errorf("failed to count sellable rooms: %w", err)
	}

	nights := daterange.Nights(checkIn, checkOut)

	occupancy := make(map[string]int, len(nights))
	for _, night := range nights {
		occupancy[night] = 0
	}

	if len(nights) > 0 {
		stays, err := s.reservationRepo.FindOverlapping(ctx, req.RoomTypeID, checkIn, checkOut)
		if err != nil {
			log.Error().Err(err).Msg("failed to find overlapping reservations")

			return res, fmt.Errorf("failed to find overlapping reservations: %w", err)
		}

		// Each stay walks its own night range; nights outside the requested
		// window hit no occupancy key, which clips the contribution to the
		// intersection without explicit interval math.
		for _, stay := range stays {
			for _, night := range daterange.Nights(stay.CheckIn, stay.CheckOut) {
				if _, ok := occupancy[night]; ok {
					occupancy[night] += stay.Quantity
				}
			}
		}
	}

	res.RoomTypeID = req.RoomTypeID
	res.CheckIn = req.CheckIn
	res.CheckOut = req.CheckOut
	res.RequestedRooms = requestedRooms
	res.TotalRooms = totalRooms
	res.Days = make([]dto.DayAvailability, len(nights))
	res.MinAvailable = totalRooms

	for i, night := range nights {
		available := max(0, totalRooms-occupancy[night])

		res.Days[i] = dto.DayAvailability{Date: night, Available: available}
		if available < res.MinAvailable {
			res.MinAvailable = available
		}
	}

	res.CanAccommodate = res.MinAvailable >= requestedRooms

	return res, nil
}
