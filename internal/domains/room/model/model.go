package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomTypeID = "room_type_id"
	FieldNumber     = "number"
	FieldFloor      = "floor"
	FieldStatus     = "status"
)

const (
	StatusVacant       = "vacant"
	StatusOccupied     = "occupied"
	StatusOutOfOrder   = "out_of_order"
	StatusOutOfService = "out_of_service"
)

// SellableStatuses are the housekeeping states that count toward inventory.
// Out-of-order and out-of-service rooms are never offered for sale.
var SellableStatuses = []string{StatusVacant, StatusOccupied}

type Room struct {
	ID         string `db:"id"`
	RoomTypeID string `db:"room_type_id"`
	Number     string `db:"number"`
	Floor      int    `db:"floor"`
	Status     string `db:"status"`
	model.Metadata
}
