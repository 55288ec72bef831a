package availability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/availability/dto"
	availabilityMocks "lodge/internal/domains/availability/mocks"
	"lodge/internal/handlers/availability"
)

const testRoomTypeID = "4f1e9d70-8e7a-4a35-86a1-2b7c45d9e222"

func TestSearchHandler_QueryParams(t *testing.T) {
	newHandler := func(t *testing.T) (*availabilityMocks.MockAvailability, availability.Handler) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		svc := availabilityMocks.NewMockAvailability(ctrl)

		return svc, availability.New(svc, mocks.NewOtel())
	}

	t.Run("passes the parsed room count to the service", func(t *testing.T) {
		svc, handler := newHandler(t)

		svc.EXPECT().
			Search(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.SearchRequest) (dto.AvailabilityResponse, error) {
				assert.Equal(t, 2, *req.Rooms)

				return dto.AvailabilityResponse{}, nil
			})

		r := httptest.NewRequest(http.MethodGet, "/v1/availability/search?room_type_id="+testRoomTypeID+"&check_in=2025-03-10&check_out=2025-03-12&rooms=2", nil)
		w := httptest.NewRecorder()

		handler.Search(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a non numeric rooms value", func(t *testing.T) {
		_, handler := newHandler(t)

		r := httptest.NewRequest(http.MethodGet, "/v1/availability/search?room_type_id="+testRoomTypeID+"&check_in=2025-03-10&check_out=2025-03-12&rooms=many", nil)
		w := httptest.NewRecorder()

		handler.Search(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
