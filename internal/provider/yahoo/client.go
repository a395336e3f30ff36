package yahoo

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/provider"
	"github.com/shopspring/decimal"
)

const (
	name = "yahoo"

	historyDateLayout = "2006-01-02"
	historyDateCol    = 0
	historyCloseCol   = 4

	maxBodySize = 8 << 20
)

var (
	errNoResources  = errors.New("response has no resources")
	errEmptyHistory = errors.New("history has no header row")
)

// Config - настройки клиента. URL-шаблоны содержат ровно один %s.
type Config struct {
	LatestURL  string
	HistoryURL string
	Timeout    time.Duration
	UserAgent  string
}

// Client - провайдер котировок акций и валют (пакетный JSON и исторический CSV).
type Client struct {
	cfg        Config
	pairs      provider.PairRegistry
	httpClient *http.Client
	logger     *slog.Logger
}

var (
	_ provider.LatestRateProvider     = (*Client)(nil)
	_ provider.SingleRateProvider     = (*Client)(nil)
	_ provider.HistoricalRateProvider = (*Client)(nil)
)

// NewClient - создаёт клиента. Таймаут по умолчанию 10s.
func NewClient(cfg Config, pairs provider.PairRegistry, logger *slog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "trading-service/1.0"
	}
	return &Client{
		cfg:        cfg,
		pairs:      pairs,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

func (c *Client) Name() string { return name }

// GetRates - текущие курсы всех пар реестра одним запросом.
func (c *Client) GetRates(ctx context.Context) ([]domain.Quote, error) {
	const op = "yahoo.GetRates"

	pairs, err := c.pairs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: load pairs: %w", op, err)
	}
	if len(pairs) == 0 {
		c.logger.Debug("pairs list is empty, nothing to fetch")
		return []domain.Quote{}, nil
	}

	body, err := c.get(ctx, op, fmt.Sprintf(c.cfg.LatestURL, pathSymbols(pairs)))
	if err != nil {
		return nil, err
	}

	m, err := decodeModel(body)
	if err != nil {
		return nil, provider.ParseError(op, err)
	}

	quotes := make([]domain.Quote, 0, len(m.Resources))
	for _, r := range m.Resources {
		f := r.Resource.Fields
		q := domain.Quote{Price: f.Price, Time: f.UTCTime.Time}
		if p, ok := lookupPair(pairs, f.Symbol); ok {
			target := p.Target
			q.Source = p.Source
			q.Target = &target
		} else {
			c.logger.Warn("symbol not found in pairs", slog.String("symbol", f.Symbol))
		}
		quotes = append(quotes, q)
	}
	c.logger.Debug("rates fetched", slog.String("symbols", PairsString(pairs)), slog.Int("quotes", len(quotes)))
	return quotes, nil
}

// GetLatestRate - текущий курс одного символа; берётся первый ресурс ответа.
func (c *Client) GetLatestRate(ctx context.Context, symbol string) (domain.Quote, error) {
	const op = "yahoo.GetLatestRate"

	body, err := c.get(ctx, op, fmt.Sprintf(c.cfg.LatestURL, url.PathEscape(symbol)))
	if err != nil {
		return domain.Quote{}, err
	}

	m, err := decodeModel(body)
	if err != nil {
		return domain.Quote{}, provider.ParseError(op, err)
	}
	if len(m.Resources) == 0 {
		return domain.Quote{}, provider.ParseError(op, errNoResources)
	}

	f := m.Resources[0].Resource.Fields
	return domain.NewSymbolQuote(f.Symbol, f.Price, f.UTCTime.Time), nil
}

// GetHistoricalRates - дневные цены закрытия из CSV:
// Date,Open,High,Low,Close,Volume,AdjClose
// 2016-02-04,75.95,76.77,71.70,72.88,1782700,72.88
// Любая некорректная строка отменяет весь результат.
func (c *Client) GetHistoricalRates(ctx context.Context, code string) ([]domain.Quote, error) {
	const op = "yahoo.GetHistoricalRates"

	body, err := c.get(ctx, op, fmt.Sprintf(c.cfg.HistoryURL, url.PathEscape(code)))
	if err != nil {
		return nil, err
	}

	lines, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		return nil, provider.ParseError(op, err)
	}
	if len(lines) == 0 {
		return nil, provider.ParseError(op, errEmptyHistory)
	}

	quotes := make([]domain.Quote, 0, len(lines)-1)
	for i, line := range lines[1:] {
		if len(line) <= historyCloseCol {
			return nil, provider.ParseError(op, fmt.Errorf("row %d: %d columns", i+1, len(line)))
		}
		date, err := time.Parse(historyDateLayout, line[historyDateCol])
		if err != nil {
			return nil, provider.ParseError(op, fmt.Errorf("row %d: %w", i+1, err))
		}
		closePrice, err := decimal.NewFromString(line[historyCloseCol])
		if err != nil {
			return nil, provider.ParseError(op, fmt.Errorf("row %d: %w", i+1, err))
		}
		quotes = append(quotes, domain.NewSymbolQuote(code, closePrice, date))
	}
	c.logger.Debug("history fetched", slog.String("code", code), slog.Int("quotes", len(quotes)))
	return quotes, nil
}

// get - GET-запрос; всё, что не 200, считается сетевой ошибкой.
func (c *Client) get(ctx context.Context, op, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, provider.NetworkError(op, fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, provider.NetworkError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, provider.NetworkError(op, fmt.Errorf("unexpected status: %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, provider.NetworkError(op, fmt.Errorf("reading body: %w", err))
	}
	return body, nil
}
