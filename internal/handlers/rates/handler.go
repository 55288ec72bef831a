package rates

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/rates/dto"
	"lodge/internal/domains/rates/service"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rates
	otel    otel.Otel
}

func New(service service.Rates, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rates", func(routerGroup chi.Router) {
		routerGroup.Get("/quote", handler.Quote)
	})
}

// Quote prices a stay night by night for the resolved rate plan.
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	query := r.URL.Query()

	req := dto.QuoteRequest{
		PlanCode: query.Get(constant.RequestParamPlanCode),
		CheckIn:  query.Get(constant.RequestParamCheckIn),
		CheckOut: query.Get(constant.RequestParamCheckOut),
	}

	if ratePlanID := query.Get(constant.RequestParamRatePlanID); ratePlanID != "" {
		req.RatePlanID = &ratePlanID
	}

	if roomTypeID := query.Get(constant.RequestParamRoomTypeID); roomTypeID != "" {
		req.RoomTypeID = &roomTypeID
	}

	if adultsStr := query.Get(constant.RequestParamAdults); adultsStr != "" {
		adults, err := shared.ConvertStringToInt(adultsStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse adults")

			response.WithError(w, failure.UnprocessableEntity("adults must be an integer"))

			return
		}

		req.Adults = &adults
	}

	if childrenStr := query.Get(constant.RequestParamChildren); childrenStr != "" {
		children, err := shared.ConvertStringToInt(childrenStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse children")

			response.WithError(w, failure.UnprocessableEntity("children must be an integer"))

			return
		}

		req.Children = &children
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote rates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rates quoted successfully")

	response.WithJSON(w, http.StatusOK, quote)
}
