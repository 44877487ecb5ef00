package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/JoaFoschiatti/gestioneo-transfers/internal/domain"
	"github.com/JoaFoschiatti/gestioneo-transfers/internal/service"
	"github.com/JoaFoschiatti/gestioneo-transfers/pkg/logger"
)

type TransferHandler struct {
	service service.TransferService
	logger  *logger.Logger
}

func NewTransferHandler(svc service.TransferService, log *logger.Logger) *TransferHandler {
	return &TransferHandler{
		service: svc,
		logger:  log,
	}
}

func (h *TransferHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	filter := domain.TransferFilter{Page: 1, PerPage: 20}

	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil && page >= 1 {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit >= 1 {
		filter.PerPage = limit
	}

	if statusParam := c.QueryParam("status"); statusParam != "" {
		status := domain.TransferStatus(statusParam)
		switch status {
		case domain.TransferStatusPending, domain.TransferStatusMatched, domain.TransferStatusRejected:
			filter.Status = &status
		default:
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "status must be PENDING, MATCHED or REJECTED",
			})
		}
	}

	if fromParam := c.QueryParam("from"); fromParam != "" {
		from, err := time.Parse(time.RFC3339, fromParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "from must be RFC3339",
			})
		}
		filter.From = &from
	}
	if toParam := c.QueryParam("to"); toParam != "" {
		to, err := time.Parse(time.RFC3339, toParam)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "to must be RFC3339",
			})
		}
		filter.To = &to
	}

	transfers, totals, err := h.service.ListTransfers(ctx, filter)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPageParams) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid page parameters",
			})
		}

		h.logger.Error(ctx, "Failed to list transfers", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list transfers",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":    transfers,
		"totals":   totals,
		"page":     filter.Page,
		"per_page": filter.PerPage,
	})
}

func (h *TransferHandler) Candidates(c echo.Context) error {
	ctx := c.Request().Context()
	transferID := c.Param("id")

	scores, err := h.service.Candidates(ctx, transferID)
	if err != nil {
		if errors.Is(err, domain.ErrTransferNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "transfer not found",
			})
		}

		h.logger.Error(ctx, "Failed to get candidates",
			"transfer_id", transferID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to get candidates",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transfer_id": transferID,
		"candidates":  scores,
	})
}

type matchRequest struct {
	OrderID int64 `json:"order_id"`
}

func (h *TransferHandler) Match(c echo.Context) error {
	ctx := c.Request().Context()
	transferID := c.Param("id")

	var req matchRequest
	if err := c.Bind(&req); err != nil || req.OrderID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "order_id is required",
		})
	}

	settlement, err := h.service.ManualMatch(ctx, transferID, req.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransferNotFound), errors.Is(err, domain.ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": err.Error(),
			})
		case errors.Is(err, domain.ErrTransferAlreadyResolved):
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "transfer already resolved",
			})
		}

		h.logger.Error(ctx, "Manual match failed",
			"transfer_id", transferID,
			"order_id", req.OrderID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "manual match failed",
		})
	}

	return c.JSON(http.StatusOK, settlement)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *TransferHandler) Reject(c echo.Context) error {
	ctx := c.Request().Context()
	transferID := c.Param("id")

	var req rejectRequest
	if err := c.Bind(&req); err != nil || req.Reason == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "reason is required",
		})
	}

	transfer, err := h.service.Reject(ctx, transferID, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTransferNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "transfer not found",
			})
		case errors.Is(err, domain.ErrTransferAlreadyResolved):
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "transfer already resolved",
			})
		}

		h.logger.Error(ctx, "Reject failed",
			"transfer_id", transferID,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "reject failed",
		})
	}

	return c.JSON(http.StatusOK, transfer)
}

func (h *TransferHandler) Sync(c echo.Context) error {
	ctx := c.Request().Context()

	result := h.service.TriggerSync(ctx)

	return c.JSON(http.StatusOK, result)
}

func (h *TransferHandler) AccountInfo(c echo.Context) error {
	ctx := c.Request().Context()

	info, err := h.service.AccountInfo(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrGatewayUnconfigured) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"error": "payment gateway not configured",
			})
		}

		h.logger.Error(ctx, "Failed to get account info", "error", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "failed to get account info",
		})
	}

	return c.JSON(http.StatusOK, info)
}
