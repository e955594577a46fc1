package handler

import (
	"net/http"
	"strconv"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogHandler handles log ingestion and event queries
type LogHandler struct {
	relayUseCase usecase.RelayUseCase
	logger       coreport.Logger
}

// NewLogHandler creates a new log handler instance
func NewLogHandler(
	relayUseCase usecase.RelayUseCase,
	logger coreport.Logger,
) *LogHandler {
	return &LogHandler{
		relayUseCase: relayUseCase,
		logger:       logger,
	}
}

// Ingest handles the POST /api/v1/logs endpoint
func (h *LogHandler) Ingest(c *gin.Context) {
	var req dto.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid ingest request format", map[string]any{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	cmd := usecase.IngestCommand{
		Context:            req.Context,
		Entries:            make([]usecase.IngestEntry, len(req.Entries)),
		DebugThreshold:     req.DebugThreshold,
		ReportingThreshold: req.ReportingThreshold,
		CacheSize:          req.CacheSize,
		Flush:              req.Flush,
	}
	for i, e := range req.Entries {
		cmd.Entries[i] = usecase.IngestEntry{Level: e.Level, Message: e.Message, Args: e.Args}
	}

	result, err := h.relayUseCase.Ingest(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Error("Error ingesting log batch", map[string]any{
			"context": req.Context,
			"error":   err.Error(),
		})
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IngestResponse{
		ScopeID:            result.ScopeID.String(),
		Context:            result.Context,
		Accepted:           result.Accepted,
		Reports:            result.Reports,
		DebugThreshold:     result.DebugThreshold.String(),
		ReportingThreshold: result.ReportingThreshold.String(),
		Lines:              result.Lines,
	})
}

// ListEvents handles the GET /api/v1/events endpoint
func (h *LogHandler) ListEvents(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
				Message: "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	events, err := h.relayUseCase.ListEvents(c.Request.Context(), c.Query("context"), limit)
	if err != nil {
		h.logger.Error("Error listing events", map[string]any{
			"context": c.Query("context"),
			"error":   err.Error(),
		})
		writeError(c, err)
		return
	}

	resp := dto.EventListResponse{
		Events: make([]dto.EventResponse, len(events)),
		Count:  len(events),
	}
	for i, e := range events {
		resp.Events[i] = toEventResponse(e)
	}
	c.JSON(http.StatusOK, resp)
}

// GetEvent handles the GET /api/v1/events/:id endpoint
func (h *LogHandler) GetEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid event ID format",
		})
		return
	}

	event, err := h.relayUseCase.GetEvent(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEventResponse(event))
}

func toEventResponse(e *entity.LogEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:        e.ID.String(),
		Context:   e.Context,
		Level:     e.Level.String(),
		Message:   e.Message,
		Truncated: e.Truncated,
		CreatedAt: e.CreatedAt,
	}
}
