package model

import "lodge/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID          = "id"
	FieldCode        = "code"
	FieldName        = "name"
	FieldDescription = "description"
	FieldMaxAdults   = "max_adults"
	FieldMaxChildren = "max_children"
	FieldActive      = "active"
)

type RoomType struct {
	ID          string `db:"id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	Description string `db:"description"`
	MaxAdults   int    `db:"max_adults"`
	MaxChildren int    `db:"max_children"`
	Active      bool   `db:"active"`
	model.Metadata
}
