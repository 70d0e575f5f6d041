package maturity

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

// RegisterRoutes attaches maturity assessment routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/assessment/save", h.save)
	rg.GET("/assessment/:id", h.get)
	rg.GET("/assessments", h.list)
	rg.GET("/assessments/stats", h.stats)
	rg.GET("/assessments/company/:company", h.listByCompany)
}

func (h *Handler) save(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		metrics.IncSaveFailure("maturity", "validation")
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read request body", nil)
		return
	}

	if result := validation.ValidateSubmission(validation.KindMaturity, raw); !result.Valid {
		metrics.IncSaveFailure("maturity", "validation")
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid assessment submission", result.Errors)
		return
	}

	var req CreateRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		metrics.IncSaveFailure("maturity", "validation")
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	a, err := h.Svc.Save(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to save assessment", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, SaveResponse{
		ID:            a.ID,
		Message:       "Digital Maturity Assessment saved successfully",
		AssessmentURL: "/api/assessment/" + a.ID,
	})
}

func (h *Handler) get(c *gin.Context) {
	a, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "assessment not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to fetch assessment", nil)
		}
		return
	}
	respond.JSON(c, http.StatusOK, a)
}

func (h *Handler) list(c *gin.Context) {
	limit := queryInt(c, "limit", 0)
	offset := queryInt(c, "offset", queryInt(c, "skip", 0))

	items, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list assessments", nil)
		return
	}
	respond.JSON(c, http.StatusOK, ListResponse{Data: items, Count: len(items)})
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to compute assessment stats", nil)
		return
	}
	respond.JSON(c, http.StatusOK, stats)
}

func (h *Handler) listByCompany(c *gin.Context) {
	company := c.Param("company")
	limit := queryInt(c, "limit", 0)

	items, err := h.Svc.ListByCompany(c.Request.Context(), company, limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list company assessments", nil)
		return
	}
	respond.JSON(c, http.StatusOK, CompanyListResponse{
		Company:         company,
		AssessmentCount: len(items),
		Assessments:     items,
	})
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
