package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"chaletbay/internal/app/messages"
	bookingsvc "chaletbay/internal/app/services/booking"
)

type MessageHandler struct {
	Service *bookingsvc.Service
	Builder messages.Builder
}

type messagesResponse struct {
	GuestConfirmation string `json:"guest_confirmation"`
	GateAuthorization string `json:"gate_authorization"`
	AdminSummary      string `json:"admin_summary"`
	Export            string `json:"export"`
}

// Messages renders every share text for one booking in a single call; the
// client picks which one to copy.
func (h MessageHandler) Messages(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	export, err := h.Builder.ExportJSON(b)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, messagesResponse{
		GuestConfirmation: h.Builder.GuestConfirmation(b),
		GateAuthorization: h.Builder.GateAuthorization(b),
		AdminSummary:      h.Builder.AdminSummary(b),
		Export:            export,
	})
}

var _ MessageHTTP = MessageHandler{}
