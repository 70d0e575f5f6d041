package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analytics routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/overview", h.overview)
	rg.GET("/analytics/company/:company", h.companyRollup)
}

func (h *Handler) overview(c *gin.Context) {
	overview, err := h.Svc.Overview(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to compute analytics overview", nil)
		return
	}
	respond.JSON(c, http.StatusOK, overview)
}

func (h *Handler) companyRollup(c *gin.Context) {
	rollup, err := h.Svc.CompanyRollup(c.Request.Context(), c.Param("company"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to compute company analytics", nil)
		return
	}
	respond.JSON(c, http.StatusOK, rollup)
}
