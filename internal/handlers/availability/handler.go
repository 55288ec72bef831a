package availability

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/availability/dto"
	"lodge/internal/domains/availability/service"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/search", handler.Search)
	})
}

// Search reports per-night availability of a room type for a stay window.
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	query := r.URL.Query()

	req := dto.SearchRequest{
		RoomTypeID: query.Get(constant.RequestParamRoomTypeID),
		CheckIn:    query.Get(constant.RequestParamCheckIn),
		CheckOut:   query.Get(constant.RequestParamCheckOut),
	}

	if roomsStr := query.Get(constant.RequestParamRooms); roomsStr != "" {
		rooms, err := shared.ConvertStringToInt(roomsStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to parse rooms")

			response.WithError(w, failure.UnprocessableEntity("rooms must be an integer"))

			return
		}

		req.Rooms = &rooms
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability searched successfully")

	response.WithJSON(w, http.StatusOK, result)
}
