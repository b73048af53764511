package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/vanhub/vendor-node/internal/adapter/http/dto/request"
	response "github.com/vanhub/vendor-node/internal/adapter/http/dto/response"
	"github.com/vanhub/vendor-node/internal/usecase"
	"github.com/vanhub/vendor-node/pkg"
)

var (
	errInvalidViewPayload = pkg.NewDomainErrorSimple("INVALID_VIEW_INPUT", "Invalid view payload", http.StatusBadRequest)
)

// ConsoleHandler handles the console shell's own surface: view switching,
// the active toast, and the insight panel.

type ConsoleHandler struct {
	insights usecase.IInsightUseCase
	notifier usecase.INotifierUseCase
}

func NewConsoleHandler(insights usecase.IInsightUseCase, notifier usecase.INotifierUseCase) *ConsoleHandler {
	return &ConsoleHandler{insights: insights, notifier: notifier}
}

// SetView records the surface the operator switched to; entering INSIGHTS
// activates the insight trigger.
func (h *ConsoleHandler) SetView(c *gin.Context) {
	var payload request.ViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidViewPayload.HTTPStatus, errInvalidViewPayload.ToHTTPError())
		return
	}

	tab := payload.ResolveTab()
	if !tab.IsValid() {
		c.JSON(errInvalidViewPayload.HTTPStatus, errInvalidViewPayload.ToHTTPError())
		return
	}

	h.insights.SetView(c.Request.Context(), tab)
	c.JSON(http.StatusOK, response.ViewResponse{Tab: string(tab)})
}

// GetInsights returns the cached derived text and the refresh flag.
func (h *ConsoleHandler) GetInsights(c *gin.Context) {
	text, refreshing := h.insights.Snapshot()
	c.JSON(http.StatusOK, response.InsightResponse{Text: text, Refreshing: refreshing})
}

// GetActiveNotification returns the current toast, if one is displayed.
func (h *ConsoleHandler) GetActiveNotification(c *gin.Context) {
	message, active := h.notifier.Active()
	c.JSON(http.StatusOK, response.NotificationResponse{Message: message, Active: active})
}
