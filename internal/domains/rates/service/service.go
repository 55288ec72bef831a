package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"lodge/infras/otel"
	planModel "lodge/internal/domains/rateplan/model"
	planRepo "lodge/internal/domains/rateplan/repository"
	"lodge/internal/domains/rates/dto"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/daterange"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const baseOccupancyAdults = 2

type Rates interface {
	Quote(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error)
}

type serviceImpl struct {
	planRepo        planRepo.RatePlan
	priceRepo       planRepo.RatePlanPrice
	restrictionRepo planRepo.RateRestriction
	otel            otel.Otel
}

func New(
	plans planRepo.RatePlan,
	prices planRepo.RatePlanPrice,
	restrictions planRepo.RateRestriction,
	otel otel.Otel,
) Rates {
	return &serviceImpl{
		planRepo:        plans,
		priceRepo:       prices,
		restrictionRepo: restrictions,
		otel:            otel,
	}
}

// Quote resolves a rate plan for the stay and prices every night of
// [check_in, check_out). Nights are priced independently; a night that cannot
// be sold carries a zero total and a closure reason instead of failing the
// whole quote.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res dto.QuoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
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

	adults := baseOccupancyAdults
	if req.Adults != nil {
		adults = *req.Adults
	}

	children := 0
	if req.Children != nil {
		children = *req.Children
	}

	plan, selectionPath, err := s.selectPlan(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve rate plan")

		return res, fmt.Errorf("failed to resolve rate plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return res, failure.UnprocessableEntity("no rate plan matches the selection criteria") // nolint:wrapcheck
	}

	nights := daterange.Nights(checkIn, checkOut)

	prices, err := s.priceRepo.GetByPlanAndDates(ctx, plan.ID, nights)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate plan prices")

		return res, fmt.Errorf("failed to get rate plan prices: %w", err)
	}

	restrictions, err := s.restrictionRepo.GetByPlanAndDates(ctx, plan.ID, nights)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rate restrictions")

		return res, fmt.Errorf("failed to get rate restrictions: %w", err)
	}

	priceByDate := make(map[string]planModel.RatePlanPrice, len(prices))
	for _, price := range prices {
		priceByDate[daterange.FormatDateOnly(price.Date)] = price
	}

	restrictionByDate := make(map[string]planModel.RateRestriction, len(restrictions))
	for _, restriction := range restrictions {
		restrictionByDate[daterange.FormatDateOnly(restriction.Date)] = restriction
	}

	res.Plan.FromModel(plan)
	res.SelectionPath = selectionPath
	res.CheckIn = req.CheckIn
	res.CheckOut = req.CheckOut
	res.Adults = adults
	res.Children = children
	res.NightsCount = len(nights)
	res.Nights = make([]dto.NightQuote, len(nights))

	for i, date := range nights {
		night := quoteNight(nightInput{
			date:        date,
			index:       i,
			nightsCount: len(nights),
			adults:      adults,
			children:    children,
		}, priceByDate, restrictionByDate)

		res.Nights[i] = night
		res.GrandTotal += night.Total

		if night.Closed {
			res.AnyClosed = true
		}
	}

	return res, nil
}

// selectPlan walks the resolution ladder: explicit id, preferred code on the
// room type, preferred code globally, any plan on the room type, any global
// plan. First match wins, there is no partial merging between steps.
func (s *serviceImpl) selectPlan(ctx context.Context, req dto.QuoteRequest) (planModel.RatePlan, string, error) {
	if req.RatePlanID != nil {
		plan, err := s.planRepo.Get(ctx, shared.FilterByID(*req.RatePlanID, planModel.FieldID, planModel.TableName))
		if err != nil {
			return planModel.RatePlan{}, constant.Empty, err
		}

		return plan, dto.SelectionPathExplicitID, nil
	}

	code := req.PlanCode
	if code == constant.Empty {
		code = constant.DefaultPlanCode
	}

	if req.RoomTypeID != nil {
		plan, err := s.planRepo.FindByCodeAndRoomType(ctx, code, req.RoomTypeID)
		if err != nil {
			return planModel.RatePlan{}, constant.Empty, err
		}

		if plan.ID != constant.Empty {
			return plan, dto.SelectionPathCodeRoomType, nil
		}
	}

	plan, err := s.planRepo.FindByCodeAndRoomType(ctx, code, nil)
	if err != nil {
		return planModel.RatePlan{}, constant.Empty, err
	}

	if plan.ID != constant.Empty {
		return plan, dto.SelectionPathCodeGlobal, nil
	}

	if req.RoomTypeID != nil {
		plan, err = s.planRepo.FindAnyByRoomType(ctx, *req.RoomTypeID)
		if err != nil {
			return planModel.RatePlan{}, constant.Empty, err
		}

		if plan.ID != constant.Empty {
			return plan, dto.SelectionPathAnyRoomType, nil
		}
	}

	plan, err = s.planRepo.FindAnyGlobal(ctx)
	if err != nil {
		return planModel.RatePlan{}, constant.Empty, err
	}

	if plan.ID != constant.Empty {
		return plan, dto.SelectionPathAnyGlobal, nil
	}

	return planModel.RatePlan{}, constant.Empty, nil
}

type nightInput struct {
	date        string
	index       int
	nightsCount int
	adults      int
	children    int
}

// quoteNight evaluates one night through an ordered list of closure checks:
// missing price, price-level closed flag, closed-to-arrival on the first
// night, closed-to-departure on the last night, then min/max stay. The first
// check that trips wins and sets the reason; later checks never overwrite it.
func quoteNight(
	in nightInput,
	priceByDate map[string]planModel.RatePlanPrice,
	restrictionByDate map[string]planModel.RateRestriction,
) dto.NightQuote {
	night := dto.NightQuote{Date: in.date}

	price, ok := priceByDate[in.date]
	if !ok {
		night.Closed = true
		night.Reason = dto.ReasonNoPrice

		return night
	}

	closed := price.Closed
	reason := constant.Empty

	if closed {
		reason = dto.ReasonClosed
	}

	if restriction, ok := restrictionByDate[in.date]; ok {
		if !closed && restriction.ClosedToArrival && in.index == 0 {
			closed = true
			reason = dto.ReasonClosedToArrival
		}

		if !closed && restriction.ClosedToDeparture && in.index == in.nightsCount-1 {
			closed = true
			reason = dto.ReasonClosedToDeparture
		}

		if !closed && restriction.MinStay > 0 && in.nightsCount < restriction.MinStay {
			closed = true
			reason = fmt.Sprintf("min_stay:%d", restriction.MinStay)
		}

		if !closed && restriction.MaxStay != nil && in.nightsCount > *restriction.MaxStay {
			closed = true
			reason = fmt.Sprintf("max_stay:%d", *restriction.MaxStay)
		}
	}

	night.PriceBase = price.PriceBase
	night.ExtraAdult = price.PriceExtraAdult.Mul(int64(max(0, in.adults-baseOccupancyAdults)))
	night.ExtraChild = price.PriceExtraChild.Mul(int64(max(0, in.children)))
	night.Closed = closed
	night.Reason = reason

	if !closed {
		// A negative extra price never pulls the night below base.
		night.Total = max(night.PriceBase, night.PriceBase+night.ExtraAdult+night.ExtraChild)
	}

	return night
}
