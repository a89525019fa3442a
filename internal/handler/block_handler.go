package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"shopgate/backend/internal/model"
	"shopgate/backend/internal/service"
)

type BlockHandler struct {
	blocks service.BlockService
}

type createBlockRequest struct {
	Key             string `json:"key"`
	Reason          string `json:"reason"`
	DurationMinutes *int   `json:"durationMinutes"`
}

type blockResponse struct {
	Key          string  `json:"key"`
	Reason       string  `json:"reason"`
	BlockedUntil *string `json:"blockedUntil,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

type statsResponse struct {
	ActiveClientBlocks int            `json:"activeClientBlocks"`
	ActiveDeviceBlocks int            `json:"activeDeviceBlocks"`
	IncidentsLast24h   map[string]int `json:"incidentsLast24h"`
}

func NewBlockHandler(blocks service.BlockService) *BlockHandler {
	return &BlockHandler{blocks: blocks}
}

func (h *BlockHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/blocks/clients", h.ListClients)
	g.POST("/blocks/clients", h.BlockClient)
	g.DELETE("/blocks/clients/:key", h.UnblockClient)
	g.GET("/blocks/devices", h.ListDevices)
	g.POST("/blocks/devices", h.BlockDevice)
	g.DELETE("/blocks/devices/:key", h.UnblockDevice)
	g.GET("/stats", h.Stats)
}

func (h *BlockHandler) ListClients(c echo.Context) error {
	blocks, err := h.blocks.ListClientBlocks(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toBlockResponses(blocks))
}

func (h *BlockHandler) ListDevices(c echo.Context) error {
	blocks, err := h.blocks.ListDeviceBlocks(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toBlockResponses(blocks))
}

func (h *BlockHandler) BlockClient(c echo.Context) error {
	return h.create(c, h.blocks.BlockClient)
}

func (h *BlockHandler) BlockDevice(c echo.Context) error {
	return h.create(c, h.blocks.BlockDevice)
}

func (h *BlockHandler) create(c echo.Context, blockFn func(ctx context.Context, key string, reason string, duration *time.Duration) (*model.Block, error)) error {
	var req createBlockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	var duration *time.Duration
	if req.DurationMinutes != nil {
		d := time.Duration(*req.DurationMinutes) * time.Minute
		duration = &d
	}

	block, err := blockFn(c.Request().Context(), req.Key, req.Reason, duration)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, blockResponse{
		Key:          block.Key,
		Reason:       block.Reason,
		BlockedUntil: formatTimePtr(block.BlockedUntil),
		CreatedAt:    block.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    block.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

func (h *BlockHandler) UnblockClient(c echo.Context) error {
	if err := h.blocks.UnblockClient(c.Request().Context(), c.Param("key")); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BlockHandler) UnblockDevice(c echo.Context) error {
	if err := h.blocks.UnblockDevice(c.Request().Context(), c.Param("key")); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *BlockHandler) Stats(c echo.Context) error {
	stats, err := h.blocks.Stats(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	volume := make(map[string]int, len(stats.IncidentsLast24h))
	for kind, count := range stats.IncidentsLast24h {
		volume[string(kind)] = count
	}

	return c.JSON(http.StatusOK, statsResponse{
		ActiveClientBlocks: stats.ActiveClientBlocks,
		ActiveDeviceBlocks: stats.ActiveDeviceBlocks,
		IncidentsLast24h:   volume,
	})
}

func toBlockResponses(blocks []model.Block) []blockResponse {
	response := make([]blockResponse, 0, len(blocks))
	for _, block := range blocks {
		response = append(response, blockResponse{
			Key:          block.Key,
			Reason:       block.Reason,
			BlockedUntil: formatTimePtr(block.BlockedUntil),
			CreatedAt:    block.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt:    block.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return response
}
