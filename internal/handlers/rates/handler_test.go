package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/rates/dto"
	ratesMocks "lodge/internal/domains/rates/mocks"
	"lodge/internal/handlers/rates"
)

func TestQuoteHandler_QueryParams(t *testing.T) {
	newHandler := func(t *testing.T) (*ratesMocks.MockRates, rates.Handler) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)

		svc := ratesMocks.NewMockRates(ctrl)

		return svc, rates.New(svc, mocks.NewOtel())
	}

	t.Run("passes the parsed occupancy to the service", func(t *testing.T) {
		svc, handler := newHandler(t)

		svc.EXPECT().
			Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error) {
				assert.Equal(t, 3, *req.Adults)
				assert.Equal(t, 1, *req.Children)

				return dto.QuoteResponse{}, nil
			})

		r := httptest.NewRequest(http.MethodGet, "/v1/rates/quote?check_in=2025-03-10&check_out=2025-03-12&adults=3&children=1", nil)
		w := httptest.NewRecorder()

		handler.Quote(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a non numeric adults value", func(t *testing.T) {
		_, handler := newHandler(t)

		r := httptest.NewRequest(http.MethodGet, "/v1/rates/quote?check_in=2025-03-10&check_out=2025-03-12&adults=two", nil)
		w := httptest.NewRecorder()

		handler.Quote(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("rejects a non numeric children value", func(t *testing.T) {
		_, handler := newHandler(t)

		r := httptest.NewRequest(http.MethodGet, "/v1/rates/quote?check_in=2025-03-10&check_out=2025-03-12&children=1.5", nil)
		w := httptest.NewRecorder()

		handler.Quote(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
