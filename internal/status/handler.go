package status

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/server/respond"
	"assessment-backend/internal/shared/validation"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches status-check routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/status", h.create)
	rg.GET("/status", h.list)
}

func (h *Handler) create(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read request body", nil)
		return
	}

	if result := validation.ValidateSubmission(validation.KindStatus, raw); !result.Valid {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid status check", result.Errors)
		return
	}

	var req CreateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	check, err := h.Svc.Log(c.Request.Context(), req.ClientName)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to record status check", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, check)
}

func (h *Handler) list(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	checks, err := h.Svc.List(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list status checks", nil)
		return
	}
	respond.JSON(c, http.StatusOK, checks)
}
