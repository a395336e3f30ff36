package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NastyaGoryachaya/trading-service/internal/consts"
	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
)

// DefaultProvider - пользователи, заведённые без внешнего провайдера входа
const DefaultProvider = "local"

type Service interface {
	// Register - новый пользователь с пустым портфелем в baseCurrency (по умолчанию USD)
	Register(ctx context.Context, u domain.User, baseCurrency string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

type Store interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByLoginAndProvider(ctx context.Context, login, provider string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByProviderUserIDAndProvider(ctx context.Context, providerUserID, provider string) (bool, error)
	Create(ctx context.Context, u domain.User, baseCurrency string) (int64, error)
}

type service struct {
	repo   Store
	logger *slog.Logger
}

func NewService(repo Store, logger *slog.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) Register(ctx context.Context, u domain.User, baseCurrency string) (domain.User, error) {
	u.Login = strings.TrimSpace(u.Login)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Provider = strings.ToLower(strings.TrimSpace(u.Provider))
	u.ProviderUserID = strings.TrimSpace(u.ProviderUserID)
	if u.Provider == "" {
		u.Provider = DefaultProvider
	}
	baseCurrency = strings.ToUpper(strings.TrimSpace(baseCurrency))
	if baseCurrency == "" {
		baseCurrency = consts.USD
	}
	if u.Login == "" || !validEmail(u.Email) {
		return domain.User{}, ErrInvalidUser
	}

	if err := s.checkFree(ctx, u); err != nil {
		return domain.User{}, err
	}

	id, err := s.repo.Create(ctx, u, baseCurrency)
	switch {
	case errors.Is(err, repository.ErrUnknownReference):
		return domain.User{}, ErrUnknownCurrency
	case errors.Is(err, repository.ErrDuplicate):
		// параллельная регистрация с тем же логином или email
		return domain.User{}, ErrLoginTaken
	case err != nil:
		s.logger.Error("failed to create user", slog.String("login", u.Login), slog.String("error", err.Error()))
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	u.ID = id
	s.logger.Info("user registered",
		slog.Int64("id", id),
		slog.String("login", u.Login),
		slog.String("provider", u.Provider),
		slog.String("base_currency", baseCurrency),
	)
	return u, nil
}

// checkFree - логин, email и внешний аккаунт ещё не заняты
func (s *service) checkFree(ctx context.Context, u domain.User) error {
	taken, err := s.repo.ExistsByLoginAndProvider(ctx, u.Login, u.Provider)
	if err != nil {
		return fmt.Errorf("check login: %w", err)
	}
	if taken {
		return ErrLoginTaken
	}

	taken, err = s.repo.ExistsByEmail(ctx, u.Email)
	if err != nil {
		return fmt.Errorf("check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}

	if u.ProviderUserID == "" {
		return nil
	}
	taken, err = s.repo.ExistsByProviderUserIDAndProvider(ctx, u.ProviderUserID, u.Provider)
	if err != nil {
		return fmt.Errorf("check provider account: %w", err)
	}
	if taken {
		return ErrProviderAccountTaken
	}
	return nil
}

func (s *service) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !validEmail(email) {
		return domain.User{}, ErrInvalidUser
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.User{}, ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return *u, nil
}

func validEmail(email string) bool {
	at := strings.IndexByte(email, '@')
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
