package benchmark

import (
	"net/http"

	"salary-bench/internal/shared/apperror"
	"salary-bench/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Run(c *gin.Context) {
	var req RunRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	report, err := h.service.Run(c.Request.Context(), req.Department)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToReportResponse(report))
}

func (h *Handler) History(c *gin.Context) {
	var req HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	reports, err := h.service.History(c.Request.Context(), req.Department, req.Limit)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, mapToReportListResponse(reports))
}
