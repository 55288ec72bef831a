package model

import (
	"lodge/shared/model"
	"lodge/shared/money"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	RoomTableName  = "reservation_rooms"
	RoomEntityName = "reservation_room"

	FieldID            = "id"
	FieldCode          = "code"
	FieldStatus        = "status"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldReservationID = "reservation_id"
	FieldRoomTypeID    = "room_type_id"
	FieldRoomID        = "room_id"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCancelled  = "cancelled"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// Reservation is a guest stay over the half-open range
// [check_in, check_out). Cancelled reservations never consume inventory.
type Reservation struct {
	ID          string      `db:"id"`
	Code        string      `db:"code"`
	GuestName   string      `db:"guest_name"`
	GuestEmail  string      `db:"guest_email"`
	GuestPhone  string      `db:"guest_phone"`
	Status      string      `db:"status"`
	CheckIn     time.Time   `db:"check_in"`
	CheckOut    time.Time   `db:"check_out"`
	Notes       string      `db:"notes"`
	TotalAmount money.Cents `db:"total_amount"`
	model.Metadata
}

// ReservationRoom is one room-type line of a reservation. Quantity applies
// uniformly to every night of the stay. RoomID stays nil until the front
// desk assigns a physical room.
type ReservationRoom struct {
	ID            string      `db:"id"`
	ReservationID string      `db:"reservation_id"`
	RoomTypeID    string      `db:"room_type_id"`
	RatePlanID    string      `db:"rate_plan_id"`
	RoomID        *string     `db:"room_id"`
	Quantity      int         `db:"quantity"`
	Adults        int         `db:"adults"`
	Children      int         `db:"children"`
	Amount        money.Cents `db:"amount"`
	model.Metadata
}

// OverlappingStay is one reservation's stay window with its room count summed
// across the lines of a single room type.
type OverlappingStay struct {
	ReservationID string    `db:"reservation_id"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Quantity      int       `db:"quantity"`
}
