package dto

import (
	"lodge/internal/domains/reservation/model"
	"lodge/shared"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"lodge/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type ReservationRoomRequest struct {
	RoomTypeID string  `json:"room_type_id" validate:"required,uuid"`
	RatePlanID *string `json:"rate_plan_id" validate:"omitempty,uuid"`
	PlanCode   string  `json:"plan_code"    validate:"omitempty,max=20"`
	Quantity   int     `json:"quantity"     validate:"omitempty,min=1"`
	Adults     *int    `json:"adults"       validate:"omitempty,min=0"`
	Children   *int    `json:"children"     validate:"omitempty,min=0"`
}

type CreateReservationRequest struct {
	GuestName  string                   `json:"guest_name"  validate:"required,max=100"`
	GuestEmail string                   `json:"guest_email" validate:"required,email"`
	GuestPhone string                   `json:"guest_phone" validate:"omitempty,max=20"`
	CheckIn    string                   `json:"check_in"    validate:"required,datetime=2006-01-02"`
	CheckOut   string                   `json:"check_out"   validate:"required,datetime=2006-01-02"`
	Notes      string                   `json:"notes"       validate:"omitempty,max=500"`
	Rooms      []ReservationRoomRequest `json:"rooms"       validate:"required,min=1,dive"`
}

func (c *CreateReservationRequest) ToModel(code, user string, checkIn, checkOut time.Time, total money.Cents) model.Reservation {
	return model.Reservation{
		ID:          uuid.NewString(),
		Code:        code,
		GuestName:   c.GuestName,
		GuestEmail:  c.GuestEmail,
		GuestPhone:  c.GuestPhone,
		Status:      model.StatusPending,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Notes:       c.Notes,
		TotalAmount: total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// AssignRoomRequest binds a physical room to one reservation line.
type AssignRoomRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
}

type ReservationRoomResponse struct {
	ID         string      `json:"id"`
	RoomTypeID string      `json:"room_type_id"`
	RatePlanID string      `json:"rate_plan_id"`
	RoomID     *string     `json:"room_id,omitempty"`
	Quantity   int         `json:"quantity"`
	Adults     int         `json:"adults"`
	Children   int         `json:"children"`
	Amount     money.Cents `json:"amount"`
}

func (r *ReservationRoomResponse) FromModel(model model.ReservationRoom) {
	r.ID = model.ID
	r.RoomTypeID = model.RoomTypeID
	r.RatePlanID = model.RatePlanID
	r.RoomID = model.RoomID
	r.Quantity = model.Quantity
	r.Adults = model.Adults
	r.Children = model.Children
	r.Amount = model.Amount
}

type ReservationResponse struct {
	ID          string                    `json:"id"`
	Code        string                    `json:"code"`
	GuestName   string                    `json:"guest_name"`
	GuestEmail  string                    `json:"guest_email"`
	GuestPhone  string                    `json:"guest_phone"`
	Status      string                    `json:"status"`
	CheckIn     string                    `json:"check_in"`
	CheckOut    string                    `json:"check_out"`
	Notes       string                    `json:"notes"`
	TotalAmount money.Cents               `json:"total_amount"`
	Rooms       []ReservationRoomResponse `json:"rooms,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.Code = model.Code
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.Status = model.Status
	r.CheckIn = daterange.FormatDateOnly(model.CheckIn)
	r.CheckOut = daterange.FormatDateOnly(model.CheckOut)
	r.Notes = model.Notes
	r.TotalAmount = model.TotalAmount
	r.Metadata.FromModel(model.Metadata)
}

func (r *ReservationResponse) FromModelWithRooms(reservation model.Reservation, rooms []model.ReservationRoom) {
	r.FromModel(reservation)

	r.Rooms = make([]ReservationRoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

// Event types published to the reservation topic.
const (
	EventReservationCreated    = "reservation.created"
	EventReservationConfirmed  = "reservation.confirmed"
	EventReservationCancelled  = "reservation.cancelled"
	EventReservationCheckedIn  = "reservation.checked_in"
	EventReservationCheckedOut = "reservation.checked_out"
	EventReservationDeleted    = "reservation.deleted"
)

type ReservationEvent struct {
	Type          string    `json:"type"`
	ReservationID string    `json:"reservation_id"`
	Code          string    `json:"code"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}
