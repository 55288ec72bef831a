package dto

import (
	"lodge/internal/domains/rateplan/model"
	"lodge/shared/money"
)

// Selection paths echoed back so callers can tell how the plan was resolved.
const (
	SelectionPathExplicitID   = "rate_plan_id"
	SelectionPathCodeRoomType = "code_room_type"
	SelectionPathCodeGlobal   = "code_global"
	SelectionPathAnyRoomType  = "any_room_type"
	SelectionPathAnyGlobal    = "any_global"
)

// Closure reasons attached to quoted nights.
const (
	ReasonNoPrice           = "no_price"
	ReasonClosed            = "closed"
	ReasonClosedToArrival   = "cta"
	ReasonClosedToDeparture = "ctd"
)

type QuoteRequest struct {
	RatePlanID *string `json:"rate_plan_id" validate:"omitempty,uuid"`
	RoomTypeID *string `json:"room_type_id" validate:"omitempty,uuid"`
	PlanCode   string  `json:"plan_code"    validate:"omitempty,max=20"`
	CheckIn    string  `json:"check_in"     validate:"required,datetime=2006-01-02"`
	CheckOut   string  `json:"check_out"    validate:"required,datetime=2006-01-02"`
	Adults     *int    `json:"adults"       validate:"omitempty,min=0"`
	Children   *int    `json:"children"     validate:"omitempty,min=0"`
}

type PlanSummary struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Currency   string  `json:"currency"`
	RoomTypeID *string `json:"room_type_id"`
}

func (p *PlanSummary) FromModel(model model.RatePlan) {
	p.ID = model.ID
	p.Code = model.Code
	p.Name = model.Name
	p.Currency = model.Currency
	p.RoomTypeID = model.RoomTypeID
}

type NightQuote struct {
	Date       string      `json:"date"`
	PriceBase  money.Cents `json:"price_base"`
	ExtraAdult money.Cents `json:"extra_adult"`
	ExtraChild money.Cents `json:"extra_child"`
	Total      money.Cents `json:"total"`
	Closed     bool        `json:"closed"`
	Reason     string      `json:"reason,omitempty"`
}

type QuoteResponse struct {
	Plan          PlanSummary  `json:"plan"`
	SelectionPath string       `json:"selection_path"`
	CheckIn       string       `json:"check_in"`
	CheckOut      string       `json:"check_out"`
	Adults        int          `json:"adults"`
	Children      int          `json:"children"`
	NightsCount   int          `json:"nights_count"`
	Nights        []NightQuote `json:"nights"`
	GrandTotal    money.Cents  `json:"grand_total"`
	AnyClosed     bool         `json:"any_closed"`
}
