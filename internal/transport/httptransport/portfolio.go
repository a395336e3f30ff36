package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/service/portfolio"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PortfolioService interface {
	GetPortfolio(ctx context.Context, login string) (portfolio.View, error)
	GetCurrencyHoldings(ctx context.Context, login string) (portfolio.View, error)
	SaveAsset(ctx context.Context, login, code string, quantity, totalCost decimal.Decimal) (portfolio.AssetView, error)
	ListFavorites(ctx context.Context, login string) ([]domain.FavoriteSymbol, error)
	AddFavorite(ctx context.Context, login, from, to string) (domain.FavoriteSymbol, error)
	RemoveFavorite(ctx context.Context, login, from, to string) error
	DeleteSymbol(ctx context.Context, code string) (int64, error)
}

// PortfolioHandler - портфели, избранное и удаление символов.
// Логин берётся из пути: аутентификация выполняется снаружи сервиса.
type PortfolioHandler struct {
	logger  *slog.Logger
	svc     PortfolioService
	timeout time.Duration
}

func NewPortfolioHandler(logger *slog.Logger, svc PortfolioService, timeout time.Duration) *PortfolioHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PortfolioHandler{logger: logger, svc: svc, timeout: timeout}
}

func (h *PortfolioHandler) RegisterRoutes(r Router) {
	r.GET("/users/:login/portfolio", h.GetPortfolio)
	r.GET("/users/:login/currencies", h.GetCurrencyHoldings)
	r.PUT("/users/:login/assets/:code", h.SaveAsset)
	r.GET("/users/:login/favorites", h.ListFavorites)
	r.POST("/users/:login/favorites", h.AddFavorite)
	r.DELETE("/users/:login/favorites/:from/:to", h.RemoveFavorite)
	r.DELETE("/symbols/:code", h.DeleteSymbol)
}

func (h *PortfolioHandler) GetPortfolio(c echo.Context) error {
	login, ok := loginParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login_required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	v, err := h.svc.GetPortfolio(ctx, login)
	if err != nil {
		return writeError(c, h.logger, "GetPortfolio", err)
	}
	return c.JSON(http.StatusOK, toPortfolioDTO(v))
}

// GetCurrencyHoldings - валютная часть портфеля.
func (h *PortfolioHandler) GetCurrencyHoldings(c echo.Context) error {
	login, ok := loginParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login_required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	v, err := h.svc.GetCurrencyHoldings(ctx, login)
	if err != nil {
		return writeError(c, h.logger, "GetCurrencyHoldings", err)
	}
	return c.JSON(http.StatusOK, toPortfolioDTO(v))
}

func (h *PortfolioHandler) SaveAsset(c echo.Context) error {
	login, ok := loginParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login_required"})
	}

	var req AssetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	a, err := h.svc.SaveAsset(ctx, login, c.Param("code"), req.Quantity, req.TotalCost)
	if err != nil {
		return writeError(c, h.logger, "SaveAsset", err)
	}
	return c.JSON(http.StatusOK, toAssetDTO(a))
}

func (h *PortfolioHandler) ListFavorites(c echo.Context) error {
	login, ok := loginParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login_required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	list, err := h.svc.ListFavorites(ctx, login)
	if err != nil {
		return writeError(c, h.logger, "ListFavorites", err)
	}
	return c.JSON(http.StatusOK, mapSlice(list, toFavoriteDTO))
}

func (h *PortfolioHandler) AddFavorite(c echo.Context) error {
	login, ok := loginParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login_required"})
	}

	var req Favorite
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	f, err := h.svc.AddFavorite(ctx, login, req.From, req.To)
	if err != nil {
		return writeError(c, h.logger, "AddFavorite", err)
	}
	return c.JSON(http.StatusCreated, toFavoriteDTO(f))
}

func (h *PortfolioHandler) RemoveFavorite(c echo.Context) error {
	login, ok := loginParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login_required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.svc.RemoveFavorite(ctx, login, c.Param("from"), c.Param("to")); err != nil {
		return writeError(c, h.logger, "RemoveFavorite", err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PortfolioHandler) DeleteSymbol(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	removed, err := h.svc.DeleteSymbol(ctx, c.Param("code"))
	if err != nil {
		return writeError(c, h.logger, "DeleteSymbol", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"removed_assets": removed})
}

func loginParam(c echo.Context) (string, bool) {
	login := strings.TrimSpace(c.Param("login"))
	return login, login != ""
}
