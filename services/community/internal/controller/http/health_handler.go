package http

import (
	"net/http"

	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUseCase usecase.HealthUseCase
}

func NewHealthHandler(healthUseCase usecase.HealthUseCase) *HealthHandler {
	return &HealthHandler{healthUseCase: healthUseCase}
}

// Health godoc
// @Summary      Health check
// @Description  Pings the database and reports row counts
// @Tags         health
// @Produce      json
// @Success      200  {object}  entity.HealthReport
// @Failure      500  {object}  entity.HealthReport
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report := h.healthUseCase.Check(c.Request.Context())
	if !report.Healthy() {
		c.JSON(http.StatusInternalServerError, report)
		return
	}
	c.JSON(http.StatusOK, report)
}
