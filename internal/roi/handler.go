package roi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"assessment-backend/internal/shared/metrics"
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

// RegisterRoutes attaches ROI calculator routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/roi-calculator/save", h.save)
	rg.GET("/roi-calculator/results", h.list)
	rg.GET("/roi-calculator/:id", h.get)
}

func (h *Handler) save(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		metrics.IncSaveFailure("roi", "validation")
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read request body", nil)
		return
	}

	if result := validation.ValidateSubmission(validation.KindROI, raw); !result.Valid {
		metrics.IncSaveFailure("roi", "validation")
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid ROI submission", result.Errors)
		return
	}

	var req CreateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		metrics.IncSaveFailure("roi", "validation")
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	res, err := h.Svc.Save(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save ROI calculation", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, SaveResponse{
		ID:            res.ID,
		Message:       "ROI Calculator result saved successfully",
		AssessmentURL: "/api/roi-calculator/" + res.ID,
	})
}

func (h *Handler) get(c *gin.Context) {
	res, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "ROI calculation not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to fetch ROI calculation", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, res)
}

func (h *Handler) list(c *gin.Context) {
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", queryInt(c, "skip", 0))

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list ROI calculations", nil)
		return
	}
	respond.JSON(c, http.StatusOK, ListResponse{Data: items, Count: len(items)})
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
