package ginserver

import (
	"net/http"
	"strconv"
	"time"

	gin "github.com/gin-gonic/gin"

	"chaletbay/internal/app/dto"
	calendarsvc "chaletbay/internal/app/services/calendar"
)

type CalendarHandler struct {
	Service *calendarsvc.Service
}

func (h CalendarHandler) Month(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	view, err := h.Service.Month(c.Request.Context(), year, month)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapMonthView(view))
}

func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 2000 || year > 2200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, time.Month(month), true
}

var _ CalendarHTTP = CalendarHandler{}
