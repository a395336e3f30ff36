package yahoo

import (
	"net/url"
	"strings"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
)

// PairsString - символы пар через запятую в исходном порядке.
func PairsString(pairs []domain.Pair) string {
	symbols := make([]string, 0, len(pairs))
	for _, p := range pairs {
		symbols = append(symbols, p.Symbol)
	}
	return strings.Join(symbols, ",")
}

// pathSymbols - символы для подстановки в путь запроса: каждый экранирован
// отдельно, разделитель-запятая остаётся как есть.
func pathSymbols(pairs []domain.Pair) string {
	symbols := make([]string, 0, len(pairs))
	for _, p := range pairs {
		symbols = append(symbols, url.PathEscape(p.Symbol))
	}
	return strings.Join(symbols, ",")
}

// lookupPair - линейный поиск пары по символу провайдера.
func lookupPair(pairs []domain.Pair, symbol string) (domain.Pair, bool) {
	for _, p := range pairs {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return domain.Pair{}, false
}
