package ginserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaletbay/internal/app/dto"
	bookingsvc "chaletbay/internal/app/services/booking"
	"chaletbay/internal/infra/storage/memory"
)

func newTestRouter() (*gin.Engine, *memory.BookingRepository) {
	gin.SetMode(gin.TestMode)
	repo := memory.NewBookingRepository()
	service := &bookingsvc.Service{
		Bookings: repo,
		Now:      func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
	}
	handler := BookingHandler{Service: service}

	router := gin.New()
	router.POST("/bookings", handler.Create)
	router.GET("/bookings/:id", handler.Get)
	router.POST("/bookings/:id/payments", handler.RecordPayment)
	router.POST("/quotes", handler.Quote)
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"kind":       "OVERNIGHT",
		"start_date": "2025-03-06",
		"end_date":   "2025-03-09",
		"adults":     4,
		"children":   1,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(540000+540000+630000), resp.TotalPrice)
	assert.Equal(t, 3, resp.DurationDays)
	assert.Equal(t, "$1.710.000", resp.TotalDisplay)
}

func TestCreateBookingConflictReturns409(t *testing.T) {
	router, _ := newTestRouter()

	first := doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"kind":       "OVERNIGHT",
		"start_date": "2025-03-06",
		"end_date":   "2025-03-09",
		"adults":     2,
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"kind":       "DAY_USE",
		"start_date": "2025-03-07",
		"adults":     2,
	})
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCreateBookingValidationReturns400(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"kind":       "OVERNIGHT",
		"start_date": "2025-03-09",
		"end_date":   "2025-03-06",
		"adults":     2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"kind":       "OVERNIGHT",
		"start_date": "06/03/2025",
		"end_date":   "2025-03-09",
		"adults":     2,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingNotFoundReturns404(t *testing.T) {
	router, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/bookings/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRecordPaymentEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	created := doJSON(t, router, http.MethodPost, "/bookings", map[string]any{
		"kind":       "OVERNIGHT",
		"start_date": "2025-03-06",
		"end_date":   "2025-03-09",
		"adults":     2,
	})
	require.Equal(t, http.StatusCreated, created.Code)
	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	rec := doJSON(t, router, http.MethodPost, "/bookings/"+resp.ID+"/payments", map[string]any{
		"amount": 300000,
		"method": "CASH_ON_HAND",
		"date":   "2025-03-02",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, int64(300000), updated.Ledger.DepositTotal)
	assert.Equal(t, updated.TotalPrice-300000, updated.Ledger.Balance)

	bad := doJSON(t, router, http.MethodPost, "/bookings/"+resp.ID+"/payments", map[string]any{
		"amount": 1000,
		"method": "CHEQUE",
	})
	assert.Equal(t, http.StatusBadRequest, bad.Code)
}

func TestQuoteEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/quotes", map[string]any{
		"kind":       "DAY_USE",
		"start_date": "2025-03-09",
		"adults":     7,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var quote dto.QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, int64(470000), quote.Total)
	assert.Equal(t, "$470.000", quote.TotalDisplay)
}
