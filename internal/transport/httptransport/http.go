package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	"github.com/labstack/echo/v4"
)

const defaultTimeout = 3 * time.Second

// Router - подмножество echo.Echo / echo.Group, на котором регистрируются маршруты.
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RatesService - абстракция для работы с курсами.
type RatesService interface {
	GetAllRates(ctx context.Context) ([]domain.Rate, error)
	GetRate(ctx context.Context, source, target string) (rates.RateStats, error)
	GetHistory(ctx context.Context, source, target string, from, to time.Time) ([]domain.Rate, error)
}

// RatesHandler - HTTP-handler для курсов.
type RatesHandler struct {
	logger  *slog.Logger
	svc     RatesService
	timeout time.Duration
	now     func() time.Time
}

func NewRatesHandler(logger *slog.Logger, svc RatesService, timeout time.Duration) *RatesHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &RatesHandler{
		logger:  logger,
		svc:     svc,
		timeout: timeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (h *RatesHandler) RegisterRoutes(r Router) {
	r.GET("/rates", h.GetRates)
	r.GET("/rates/:source/:target", h.GetRate)
	r.GET("/rates/:source/:target/history", h.GetHistory)
}

func (h *RatesHandler) GetRates(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.GetAllRates(ctx)
	if err != nil {
		return writeError(c, h.logger, "GetRates", err)
	}
	return c.JSON(http.StatusOK, mapSlice(items, toRateDTO))
}

func (h *RatesHandler) GetRate(c echo.Context) error {
	source, target, ok := pairParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pair_required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.svc.GetRate(ctx, source, target)
	if err != nil {
		return writeError(c, h.logger, "GetRate", err)
	}
	return c.JSON(http.StatusOK, toRateStatsDTO(item))
}

// GetHistory - ?from=&to= в RFC3339, по умолчанию последние 24 часа.
func (h *RatesHandler) GetHistory(c echo.Context) error {
	source, target, ok := pairParams(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pair_required"})
	}

	to := h.now()
	from := to.Add(-24 * time.Hour)
	var err error
	if v := c.QueryParam("from"); v != "" {
		if from, err = time.Parse(time.RFC3339, v); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_from"})
		}
	}
	if v := c.QueryParam("to"); v != "" {
		if to, err = time.Parse(time.RFC3339, v); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_to"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.GetHistory(ctx, source, target, from, to)
	if err != nil {
		return writeError(c, h.logger, "GetHistory", err)
	}
	return c.JSON(http.StatusOK, mapSlice(items, toDateValueDTO))
}

// Health - проверка живости.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func pairParams(c echo.Context) (string, string, bool) {
	source := strings.ToUpper(strings.TrimSpace(c.Param("source")))
	target := strings.ToUpper(strings.TrimSpace(c.Param("target")))
	return source, target, source != "" && target != ""
}

// writeError - ошибка сервиса -> errcode -> HTTP-ответ. Внутренние ошибки логируются.
func writeError(c echo.Context, logger *slog.Logger, op string, err error) error {
	code := FromServiceError(err)
	status, body := httpError(code)
	if code == errcode.Internal {
		logger.Error(op+" failed",
			slog.String("op", op),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return c.JSON(status, echo.Map{"error": body})
}
