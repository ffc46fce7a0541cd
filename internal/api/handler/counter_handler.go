package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/counterapp/counter-api/internal/api/metrics"
	"github.com/counterapp/counter-api/internal/core/domain"
	"github.com/counterapp/counter-api/internal/core/ports"
)

// CounterHandler serves the authenticated user's counter.
type CounterHandler struct {
	counterService ports.CounterService
}

func NewCounterHandler(counterService ports.CounterService) *CounterHandler {
	return &CounterHandler{counterService: counterService}
}

type countResponse struct {
	Count int64 `json:"count"`
}

// Get returns the current counter value.
//
// @Summary      Get counter value
// @Tags         counter
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/counter [get]
func (h *CounterHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	count, err := h.counterService.GetCount(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}

	return c.JSON(http.StatusOK, countResponse{Count: count})
}

// Increase adds one to the counter and returns the new value.
//
// @Summary      Increase counter
// @Tags         counter
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/counter/increase [post]
func (h *CounterHandler) Increase(c echo.Context) error {
	return h.apply(c, "increase", h.counterService.Increment)
}

// Decrease subtracts one from the counter; negative values are allowed.
//
// @Summary      Decrease counter
// @Tags         counter
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  countResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/counter/decrease [post]
func (h *CounterHandler) Decrease(c echo.Context) error {
	return h.apply(c, "decrease", h.counterService.Decrement)
}

func (h *CounterHandler) apply(c echo.Context, op string, fn func(ctx context.Context, userID string) (int64, error)) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	count, err := fn(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.CounterOpsTotal.WithLabelValues(op).Inc()
	return c.JSON(http.StatusOK, countResponse{Count: count})
}
