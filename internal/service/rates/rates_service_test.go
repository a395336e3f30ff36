package rates

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	ratesmocks "github.com/NastyaGoryachaya/trading-service/internal/service/rates/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var now = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

// helper to build service with mocks
func setupSvc(t *testing.T) (context.Context, *ratesmocks.MockRateReader, Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := ratesmocks.NewMockRateReader(ctrl)
	svc := NewServiceWithClock(repo, fixedClock{t: now}, slog.Default())
	return context.Background(), repo, svc
}

func rate(value string, at time.Time) domain.Rate {
	return domain.Rate{Source: "BZ=F", Target: "USD", Value: decimal.RequireFromString(value), Time: at}
}

func ptr(r domain.Rate) *domain.Rate { return &r }

// -------------------------
// GetAllRates
// -------------------------

func TestGetAllRates_Success(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	in := []domain.Rate{rate("35.5", now), {Source: "USD", Target: "EUR", Value: decimal.RequireFromString("0.92"), Time: now}}
	repo.EXPECT().GetAllLatest(gomock.Any()).Return(in, nil)

	got, err := svc.GetAllRates(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rates, got %d", len(got))
	}
}

func TestGetAllRates_Empty(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().GetAllLatest(gomock.Any()).Return(nil, nil)

	if _, err := svc.GetAllRates(ctx); !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("expected ErrRateNotFound, got %v", err)
	}
}

func TestGetAllRates_RepoError(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	dbErr := errors.New("db down")
	repo.EXPECT().GetAllLatest(gomock.Any()).Return(nil, dbErr)

	if _, err := svc.GetAllRates(ctx); !errors.Is(err, dbErr) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

// -------------------------
// GetRate
// -------------------------

func TestGetRate_Success(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(ptr(rate("105", now)), nil)
	repo.EXPECT().GetMinAndMax(gomock.Any(), "BZ=F", "USD", now.Add(-24*time.Hour)).
		Return(rate("90", now.Add(-10*time.Hour)), rate("110", now.Add(-30*time.Minute)), nil)
	repo.EXPECT().GetBefore(gomock.Any(), "BZ=F", "USD", now.Add(-time.Hour)).
		Return(ptr(rate("100", now.Add(-time.Hour))), nil)

	got, err := svc.GetRate(ctx, "BZ=F", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Price.Equal(decimal.NewFromInt(105)) || !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected latest: %+v", got)
	}
	if !got.Min24h.Equal(decimal.NewFromInt(90)) || !got.Max24h.Equal(decimal.NewFromInt(110)) {
		t.Fatalf("unexpected min/max: (%s, %s)", got.Min24h, got.Max24h)
	}
	// (105-100)/100*100 = 5
	if !got.Change1hPct.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("unexpected pct: got %s want 5", got.Change1hPct)
	}
}

func TestGetRate_NegativeChangeRounded(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(ptr(rate("2", now)), nil)
	repo.EXPECT().GetMinAndMax(gomock.Any(), "BZ=F", "USD", gomock.Any()).Return(rate("2", now), rate("3", now), nil)
	repo.EXPECT().GetBefore(gomock.Any(), "BZ=F", "USD", gomock.Any()).Return(ptr(rate("3", now)), nil)

	got, err := svc.GetRate(ctx, "BZ=F", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Change1hPct.Equal(decimal.RequireFromString("-33.3333")) {
		t.Fatalf("unexpected pct: %s", got.Change1hPct)
	}
}

func TestGetRate_NotFound(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(nil, repository.ErrNotFound)

	if _, err := svc.GetRate(ctx, "BZ=F", "USD"); !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("expected ErrRateNotFound, got %v", err)
	}
}

func TestGetRate_NoMinMax(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(ptr(rate("105", now)), nil)
	repo.EXPECT().GetMinAndMax(gomock.Any(), "BZ=F", "USD", gomock.Any()).
		Return(domain.Rate{}, domain.Rate{}, repository.ErrNotFound)

	if _, err := svc.GetRate(ctx, "BZ=F", "USD"); !errors.Is(err, ErrMinMaxPrice) {
		t.Fatalf("expected ErrMinMaxPrice, got %v", err)
	}
}

func TestGetRate_NoHourAgo(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(ptr(rate("105", now)), nil)
	repo.EXPECT().GetMinAndMax(gomock.Any(), "BZ=F", "USD", gomock.Any()).Return(rate("90", now), rate("110", now), nil)
	repo.EXPECT().GetBefore(gomock.Any(), "BZ=F", "USD", gomock.Any()).Return(nil, repository.ErrNotFound)

	if _, err := svc.GetRate(ctx, "BZ=F", "USD"); !errors.Is(err, ErrHourAgoPrice) {
		t.Fatalf("expected ErrHourAgoPrice, got %v", err)
	}
}

func TestGetRate_ZeroHourAgo(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(ptr(rate("105", now)), nil)
	repo.EXPECT().GetMinAndMax(gomock.Any(), "BZ=F", "USD", gomock.Any()).Return(rate("0", now), rate("110", now), nil)
	repo.EXPECT().GetBefore(gomock.Any(), "BZ=F", "USD", gomock.Any()).Return(ptr(rate("0", now)), nil)

	if _, err := svc.GetRate(ctx, "BZ=F", "USD"); !errors.Is(err, ErrHourAgoPrice) {
		t.Fatalf("expected ErrHourAgoPrice, got %v", err)
	}
}

// -------------------------
// GetHistory
// -------------------------

func TestGetHistory_Success(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	from, to := now.Add(-2*time.Hour), now
	history := []domain.Rate{rate("90", from), rate("100", now.Add(-time.Hour))}
	repo.EXPECT().History(gomock.Any(), "BZ=F", "USD", from, to).Return(history, nil)

	got, err := svc.GetHistory(ctx, "BZ=F", "USD", from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
}

func TestGetHistory_InvalidRange(t *testing.T) {
	t.Parallel()
	ctx, _, svc := setupSvc(t)

	if _, err := svc.GetHistory(ctx, "BZ=F", "USD", now, now.Add(-time.Hour)); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}
}

func TestGetHistory_Empty(t *testing.T) {
	t.Parallel()
	ctx, repo, svc := setupSvc(t)

	repo.EXPECT().History(gomock.Any(), "BZ=F", "USD", gomock.Any(), gomock.Any()).Return([]domain.Rate{}, nil)

	if _, err := svc.GetHistory(ctx, "BZ=F", "USD", now.Add(-time.Hour), now); !errors.Is(err, ErrRateNotFound) {
		t.Fatalf("expected ErrRateNotFound, got %v", err)
	}
}
