package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	bookingsvc "chaletbay/internal/app/services/booking"
	calendarsvc "chaletbay/internal/app/services/calendar"
	reportsvc "chaletbay/internal/app/services/report"
	domainbooking "chaletbay/internal/domain/booking"
	"chaletbay/internal/domain/ledger"
	"chaletbay/internal/domain/pricing"
	"chaletbay/internal/infra/db/mongo"
)

// respondDomainError maps domain failures onto HTTP statuses: validation
// errors become 400, missing aggregates 404, date clashes and concurrent
// writes 409. Anything unmapped is a 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainbooking.ErrBookingNotFound),
		errors.Is(err, ledger.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, bookingsvc.ErrDatesConflict),
		errors.Is(err, mongo.ErrConcurrentUpdate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainbooking.ErrInvalidKind),
		errors.Is(err, domainbooking.ErrInvalidRange),
		errors.Is(err, domainbooking.ErrDayUseRange),
		errors.Is(err, domainbooking.ErrInvalidGuests),
		errors.Is(err, pricing.ErrInvalidOccupancy),
		errors.Is(err, ledger.ErrNegativeAmount),
		errors.Is(err, ledger.ErrNegativeDiscount),
		errors.Is(err, ledger.ErrNegativeFee),
		errors.Is(err, ledger.ErrInvalidMethod),
		errors.Is(err, calendarsvc.ErrInvalidMonth),
		errors.Is(err, reportsvc.ErrInvalidMonth):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
