package handlers

import (
	"net/http"
	response "okbikes_admin/internal/adapter/http/dto/response"
	"okbikes_admin/internal/usecase"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
	now     func() time.Time
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc, now: time.Now}
}

// Stats godoc
// @Summary      Home page counters
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	s, ok := currentSession(c)
	if !ok {
		return
	}
	stats, err := h.usecase.Stats(c.Request.Context(), s, h.now())
	if err != nil {
		respondError(c, err, internalError)
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(stats))
}
