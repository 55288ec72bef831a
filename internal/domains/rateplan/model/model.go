package model

import (
	"lodge/shared/model"
	"lodge/shared/money"
	"time"
)

const (
	TableName  = "rate_plans"
	EntityName = "rate_plan"

	FieldID         = "id"
	FieldCode       = "code"
	FieldName       = "name"
	FieldCurrency   = "currency"
	FieldRoomTypeID = "room_type_id"
	FieldActive     = "active"
)

const (
	PriceTableName  = "rate_plan_prices"
	PriceEntityName = "rate_plan_price"

	RestrictionTableName  = "rate_restrictions"
	RestrictionEntityName = "rate_restriction"

	FieldRatePlanID = "rate_plan_id"
	FieldDate       = "date"
)

// RatePlan is a pricing plan. A nil RoomTypeID marks a global plan that
// applies across room types; (code, room_type_id) pairs are unique, with the
// global group counted as its own room type bucket.
type RatePlan struct {
	ID         string  `db:"id"`
	Code       string  `db:"code"`
	Name       string  `db:"name"`
	Currency   string  `db:"currency"`
	RoomTypeID *string `db:"room_type_id"`
	Active     bool    `db:"active"`
	model.Metadata
}

// RatePlanPrice is one calendar night of a plan. Absence of a row for a date
// means the plan has no price for that night.
type RatePlanPrice struct {
	ID              string      `db:"id"`
	RatePlanID      string      `db:"rate_plan_id"`
	Date            time.Time   `db:"date"`
	PriceBase       money.Cents `db:"price_base"`
	PriceExtraAdult money.Cents `db:"price_extra_adult"`
	PriceExtraChild money.Cents `db:"price_extra_child"`
	Closed          bool        `db:"closed"`
	model.Metadata
}

// RateRestriction is one calendar night of stay restrictions. The advance
// booking bounds are stored but not evaluated during quotation.
type RateRestriction struct {
	ID                string    `db:"id"`
	RatePlanID        string    `db:"rate_plan_id"`
	Date              time.Time `db:"date"`
	MinStay           int       `db:"min_stay"`
	MaxStay           *int      `db:"max_stay"`
	ClosedToArrival   bool      `db:"closed_to_arrival"`
	ClosedToDeparture bool      `db:"closed_to_departure"`
	MinAdvanceDays    *int      `db:"min_advance_days"`
	MaxAdvanceDays    *int      `db:"max_advance_days"`
	model.Metadata
}
