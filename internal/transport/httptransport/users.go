package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/labstack/echo/v4"
)

type UsersService interface {
	Register(ctx context.Context, u domain.User, baseCurrency string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// UsersHandler - регистрация и поиск пользователей.
type UsersHandler struct {
	logger  *slog.Logger
	svc     UsersService
	timeout time.Duration
}

func NewUsersHandler(logger *slog.Logger, svc UsersService, timeout time.Duration) *UsersHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &UsersHandler{logger: logger, svc: svc, timeout: timeout}
}

func (h *UsersHandler) RegisterRoutes(r Router) {
	r.POST("/users", h.Register)
	r.GET("/users", h.FindByEmail)
}

// Register - новый пользователь вместе с пустым портфелем.
func (h *UsersHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid_body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	u, err := h.svc.Register(ctx, domain.User{
		Login:          req.Login,
		Email:          req.Email,
		Provider:       req.Provider,
		ProviderUserID: req.ProviderUserID,
	}, req.BaseCurrency)
	if err != nil {
		return writeError(c, h.logger, "RegisterUser", err)
	}
	return c.JSON(http.StatusCreated, toUserDTO(u))
}

// FindByEmail - GET /users?email=
func (h *UsersHandler) FindByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email_required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	u, err := h.svc.FindByEmail(ctx, email)
	if err != nil {
		return writeError(c, h.logger, "FindUserByEmail", err)
	}
	return c.JSON(http.StatusOK, toUserDTO(u))
}
