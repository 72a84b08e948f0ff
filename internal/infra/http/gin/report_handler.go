package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"chaletbay/internal/app/dto"
	reportsvc "chaletbay/internal/app/services/report"
)

type ReportHandler struct {
	Service *reportsvc.Service
}

func (h ReportHandler) MonthlySummary(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	summary, err := h.Service.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapMonthlySummary(summary))
}

func (h ReportHandler) Collections(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}
	items, err := h.Service.CollectionsByMethod(c.Request.Context(), year, month)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MapCollections(year, int(month), items))
}

var _ ReportHTTP = ReportHandler{}
