package dto

import (
	"lodge/internal/domains/rateplan/model"
	"lodge/shared"
	"lodge/shared/daterange"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/money"
	"lodge/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateRatePlanRequest struct {
	Code       string  `json:"code"         validate:"required,max=20"`
	Name       string  `json:"name"         validate:"required,max=100"`
	Currency   string  `json:"currency"     validate:"required,len=3"`
	RoomTypeID *string `json:"room_type_id" validate:"omitempty,uuid"`
	Active     *bool   `json:"active"       validate:"omitempty"`
}

func (c *CreateRatePlanRequest) ToModel(user string) model.RatePlan {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.RatePlan{
		ID:         uuid.NewString(),
		Code:       c.Code,
		Name:       c.Name,
		Currency:   c.Currency,
		RoomTypeID: c.RoomTypeID,
		Active:     active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRatePlanRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Currency string `db:"currency" json:"currency" validate:"omitempty,len=3"`
	Active   *bool  `db:"active"   json:"active"   validate:"omitempty"`
}

type RatePlanResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Currency   string  `json:"currency"`
	RoomTypeID *string `json:"room_type_id"`
	Active     bool    `json:"active"`
	gDto.Metadata
}

func (r *RatePlanResponse) FromModel(model model.RatePlan) {
	r.ID = model.ID
	r.Code = model.Code
	r.Name = model.Name
	r.Currency = model.Currency
	r.RoomTypeID = model.RoomTypeID
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRatePlansResponse struct {
	RatePlans []RatePlanResponse `json:"rate_plans"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRatePlansResponse) FromModels(models []model.RatePlan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RatePlans = make([]RatePlanResponse, len(models))
	for i, mod := range models {
		r.RatePlans[i].FromModel(mod)
	}
}

type PriceEntry struct {
	Date            string      `json:"date"              validate:"required,datetime=2006-01-02"`
	PriceBase       money.Cents `json:"price_base"        validate:"required"`
	PriceExtraAdult money.Cents `json:"price_extra_adult" validate:"omitempty"`
	PriceExtraChild money.Cents `json:"price_extra_child" validate:"omitempty"`
	Closed          bool        `json:"closed"`
}

func (p *PriceEntry) ToModel(ratePlanID, user string, date time.Time) model.RatePlanPrice {
	return model.RatePlanPrice{
		ID:              uuid.NewString(),
		RatePlanID:      ratePlanID,
		Date:            date,
		PriceBase:       p.PriceBase,
		PriceExtraAdult: p.PriceExtraAdult,
		PriceExtraChild: p.PriceExtraChild,
		Closed:          p.Closed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpsertPricesRequest struct {
	Prices []PriceEntry `json:"prices" validate:"required,min=1,dive"`
}

type PriceResponse struct {
	Date            string      `json:"date"`
	PriceBase       money.Cents `json:"price_base"`
	PriceExtraAdult money.Cents `json:"price_extra_adult"`
	PriceExtraChild money.Cents `json:"price_extra_child"`
	Closed          bool        `json:"closed"`
}

func (p *PriceResponse) FromModel(model model.RatePlanPrice) {
	p.Date = daterange.FormatDateOnly(model.Date)
	p.PriceBase = model.PriceBase
	p.PriceExtraAdult = model.PriceExtraAdult
	p.PriceExtraChild = model.PriceExtraChild
	p.Closed = model.Closed
}

type GetPricesResponse struct {
	RatePlanID string          `json:"rate_plan_id"`
	Prices     []PriceResponse `json:"prices"`
}

func (r *GetPricesResponse) FromModels(ratePlanID string, models []model.RatePlanPrice) {
	r.RatePlanID = ratePlanID

	r.Prices = make([]PriceResponse, len(models))
	for i, mod := range models {
		r.Prices[i].FromModel(mod)
	}
}

type RestrictionEntry struct {
	Date              string `json:"date"                validate:"required,datetime=2006-01-02"`
	MinStay           int    `json:"min_stay"            validate:"omitempty,min=0"`
	MaxStay           *int   `json:"max_stay"            validate:"omitempty,min=1"`
	ClosedToArrival   bool   `json:"closed_to_arrival"`
	ClosedToDeparture bool   `json:"closed_to_departure"`
	MinAdvanceDays    *int   `json:"min_advance_days"    validate:"omitempty,min=0"`
	MaxAdvanceDays    *int   `json:"max_advance_days"    validate:"omitempty,min=0"`
}

func (e *RestrictionEntry) ToModel(ratePlanID, user string, date time.Time) model.RateRestriction {
	return model.RateRestriction{
		ID:                uuid.NewString(),
		RatePlanID:        ratePlanID,
		Date:              date,
		MinStay:           e.MinStay,
		MaxStay:           e.MaxStay,
		ClosedToArrival:   e.ClosedToArrival,
		ClosedToDeparture: e.ClosedToDeparture,
		MinAdvanceDays:    e.MinAdvanceDays,
		MaxAdvanceDays:    e.MaxAdvanceDays,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpsertRestrictionsRequest struct {
	Restrictions []RestrictionEntry `json:"restrictions" validate:"required,min=1,dive"`
}

type RestrictionResponse struct {
	Date              string `json:"date"`
	MinStay           int    `json:"min_stay"`
	MaxStay           *int   `json:"max_stay"`
	ClosedToArrival   bool   `json:"closed_to_arrival"`
	ClosedToDeparture bool   `json:"closed_to_departure"`
	MinAdvanceDays    *int   `json:"min_advance_days"`
	MaxAdvanceDays    *int   `json:"max_advance_days"`
}

func (r *RestrictionResponse) FromModel(model model.RateRestriction) {
	r.Date = daterange.FormatDateOnly(model.Date)
	r.MinStay = model.MinStay
	r.MaxStay = model.MaxStay
	r.ClosedToArrival = model.ClosedToArrival
	r.ClosedToDeparture = model.ClosedToDeparture
	r.MinAdvanceDays = model.MinAdvanceDays
	r.MaxAdvanceDays = model.MaxAdvanceDays
}

type GetRestrictionsResponse struct {
	RatePlanID   string                `json:"rate_plan_id"`
	Restrictions []RestrictionResponse `json:"restrictions"`
}

func (r *GetRestrictionsResponse) FromModels(ratePlanID string, models []model.RateRestriction) {
	r.RatePlanID = ratePlanID

	r.Restrictions = make([]RestrictionResponse, len(models))
	for i, mod := range models {
		r.Restrictions[i].FromModel(mod)
	}
}
