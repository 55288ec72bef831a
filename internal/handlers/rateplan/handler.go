package rateplan

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/rateplan/model"
	"lodge/internal/domains/rateplan/model/dto"
	"lodge/internal/domains/rateplan/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RatePlan
	otel    otel.Otel
}

func New(service service.RatePlan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rate-plans", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRatePlan)
		routerGroup.Get("/", handler.GetRatePlans)
		routerGroup.Get("/{id}", handler.GetRatePlanByID)
		routerGroup.Patch("/{id}", handler.UpdateRatePlan)
		routerGroup.Delete("/{id}", handler.DeleteRatePlan)
		routerGroup.Put("/{id}/prices", handler.UpsertPrices)
		routerGroup.Get("/{id}/prices", handler.GetPrices)
		routerGroup.Put("/{id}/restrictions", handler.UpsertRestrictions)
		routerGroup.Get("/{id}/restrictions", handler.GetRestrictions)
	})
}

// CreateRatePlan registers a pricing plan.
func (handler *Handler) CreateRatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRatePlan")
	defer scope.End()

	req := dto.CreateRatePlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rate plan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate plan created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Rate plan created successfully")
}

// GetRatePlans lists plans with optional filtering.
func (handler *Handler) GetRatePlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRatePlans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldCode),
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if roomTypeID := r.URL.Query().Get(model.FieldRoomTypeID); roomTypeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomTypeID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomTypeID,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	ratePlans, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate plans")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate plans retrieved successfully")

	response.WithJSON(w, http.StatusOK, ratePlans)
}

// GetRatePlanByID retrieves a plan by its ID.
func (handler *Handler) GetRatePlanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRatePlanByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	ratePlan, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate plan by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate plan retrieved successfully")

	response.WithJSON(w, http.StatusOK, ratePlan)
}

// UpdateRatePlan patches name, currency or active flag.
func (handler *Handler) UpdateRatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRatePlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRatePlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rate plan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate plan updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rate plan updated successfully")
}

// DeleteRatePlan removes a plan and its calendar rows.
func (handler *Handler) DeleteRatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRatePlan")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rate plan")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate plan deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rate plan deleted successfully")
}

// UpsertPrices bulk-writes nightly prices of a plan.
func (handler *Handler) UpsertPrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertPrices")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpsertPricesRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertPrices(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert rate plan prices")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate plan prices upserted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rate plan prices upserted successfully")
}

// GetPrices reads the price calendar of a plan over [from, to].
func (handler *Handler) GetPrices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPrices")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	prices, err := handler.service.GetPrices(ctx, id, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate plan prices")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate plan prices retrieved successfully")

	response.WithJSON(w, http.StatusOK, prices)
}

// UpsertRestrictions bulk-writes stay restrictions of a plan.
func (handler *Handler) UpsertRestrictions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertRestrictions")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpsertRestrictionsRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpsertRestrictions(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert rate restrictions")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rate restrictions upserted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Rate restrictions upserted successfully")
}

// GetRestrictions reads the restriction calendar of a plan over [from, to].
func (handler *Handler) GetRestrictions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRestrictions")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	restrictions, err := handler.service.GetRestrictions(ctx, id, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate restrictions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate restrictions retrieved successfully")

	response.WithJSON(w, http.StatusOK, restrictions)
}
