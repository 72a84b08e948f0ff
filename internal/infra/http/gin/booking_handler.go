package ginserver

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"

	"chaletbay/internal/app/dto"
	bookingsvc "chaletbay/internal/app/services/booking"
	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/shared/money"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	Service *bookingsvc.Service
}

type guestRequest struct {
	Name       string `json:"name"`
	DocumentID string `json:"document_id"`
}

type createBookingRequest struct {
	Kind          string         `json:"kind"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	Adults        int            `json:"adults"`
	Children      int            `json:"children"`
	Guests        []guestRequest `json:"guests"`
	Schedule      string         `json:"schedule"`
	ForcedHoliday bool           `json:"forced_holiday"`
}

type updateBookingRequest struct {
	Kind          *string         `json:"kind"`
	StartDate     *string         `json:"start_date"`
	EndDate       *string         `json:"end_date"`
	Adults        *int            `json:"adults"`
	Children      *int            `json:"children"`
	Guests        *[]guestRequest `json:"guests"`
	Schedule      *string         `json:"schedule"`
	ForcedHoliday *bool           `json:"forced_holiday"`
}

type paymentRequest struct {
	Amount int64  `json:"amount"`
	Method string `json:"method"`
	Date   string `json:"date"`
}

type discountRequest struct {
	Amount int64 `json:"amount"`
}

type cleaningFeeRequest struct {
	Total     int64 `json:"total"`
	Collected int64 `json:"collected"`
}

type quoteRequest struct {
	Kind          string `json:"kind"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	ForcedHoliday bool   `json:"forced_holiday"`
}

func (h BookingHandler) List(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBookings(items))
}

func (h BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	start, ok := parseDate(c, req.StartDate)
	if !ok {
		return
	}
	end := time.Time{}
	if req.EndDate != "" {
		if end, ok = parseDate(c, req.EndDate); !ok {
			return
		}
	}
	b, err := h.Service.Create(c.Request.Context(), bookingsvc.CreateParams{
		Kind:          domainbooking.Kind(req.Kind),
		StartDate:     start,
		EndDate:       end,
		Adults:        req.Adults,
		Children:      req.Children,
		Guests:        mapGuests(req.Guests),
		Schedule:      req.Schedule,
		ForcedHoliday: req.ForcedHoliday,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.MapBooking(b))
}

func (h BookingHandler) Get(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBooking(b))
}

func (h BookingHandler) Update(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	patch := domainbooking.Patch{
		Adults:        req.Adults,
		Children:      req.Children,
		Schedule:      req.Schedule,
		ForcedHoliday: req.ForcedHoliday,
	}
	if req.Kind != nil {
		kind := domainbooking.Kind(*req.Kind)
		patch.Kind = &kind
	}
	if req.StartDate != nil {
		start, ok := parseDate(c, *req.StartDate)
		if !ok {
			return
		}
		patch.StartDate = &start
	}
	if req.EndDate != nil {
		end, ok := parseDate(c, *req.EndDate)
		if !ok {
			return
		}
		patch.EndDate = &end
	}
	if req.Guests != nil {
		guests := mapGuests(*req.Guests)
		patch.Guests = &guests
	}
	b, err := h.Service.Revise(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBooking(b))
}

func (h BookingHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h BookingHandler) Quote(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	start, ok := parseDate(c, req.StartDate)
	if !ok {
		return
	}
	end := time.Time{}
	if req.EndDate != "" {
		if end, ok = parseDate(c, req.EndDate); !ok {
			return
		}
	}
	total, err := h.Service.Quote(c.Request.Context(), bookingsvc.QuoteParams{
		Kind:          domainbooking.Kind(req.Kind),
		StartDate:     start,
		EndDate:       end,
		Adults:        req.Adults,
		Children:      req.Children,
		ForcedHoliday: req.ForcedHoliday,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{Total: int64(total), TotalDisplay: total.Format()})
}

func (h BookingHandler) RecordPayment(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	date := time.Time{}
	if req.Date != "" {
		var ok bool
		if date, ok = parseDate(c, req.Date); !ok {
			return
		}
	}
	b, err := h.Service.RecordPayment(c.Request.Context(), c.Param("id"), bookingsvc.PaymentParams{
		Amount: money.Amount(req.Amount),
		Method: ledger.Method(req.Method),
		Date:   date,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBooking(b))
}

func (h BookingHandler) RemovePayment(c *gin.Context) {
	b, err := h.Service.RemovePayment(c.Request.Context(), c.Param("id"), c.Param("paymentID"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBooking(b))
}

func (h BookingHandler) SetDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	b, err := h.Service.SetDiscount(c.Request.Context(), c.Param("id"), money.Amount(req.Amount))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBooking(b))
}

func (h BookingHandler) SetCleaningFee(c *gin.Context) {
	var req cleaningFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	b, err := h.Service.SetCleaningFee(c.Request.Context(), c.Param("id"), money.Amount(req.Total), money.Amount(req.Collected))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapBooking(b))
}

func mapGuests(in []guestRequest) []domainbooking.Guest {
	out := make([]domainbooking.Guest, 0, len(in))
	for _, g := range in {
		out = append(out, domainbooking.Guest{Name: g.Name, DocumentID: g.DocumentID})
	}
	return out
}

func parseDate(c *gin.Context, raw string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}

var _ BookingHTTP = BookingHandler{}
