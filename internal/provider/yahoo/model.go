package yahoo

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Ответ пакетного запроса:
// { "list": { "resources": [ { "resource": { "fields": { "symbol", "price", "utctime" } } } ] } }
// Корневой ключ разворачивается независимо от имени.

type model struct {
	Resources []wrappedResource `json:"resources"`
}

type wrappedResource struct {
	Resource resource `json:"resource"`
}

type resource struct {
	Fields fields `json:"fields"`
}

type fields struct {
	Symbol  string          `json:"symbol"`
	Price   decimal.Decimal `json:"price"`
	UTCTime utcTime         `json:"utctime"`
}

var errRootValue = errors.New("expected a single root value")

// decodeModel - разбирает ответ с обёрткой корня.
func decodeModel(body []byte) (model, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(body, &root); err != nil {
		return model{}, err
	}
	if len(root) != 1 {
		return model{}, fmt.Errorf("%w, got %d keys", errRootValue, len(root))
	}

	var m model
	for _, raw := range root {
		if err := json.Unmarshal(raw, &m); err != nil {
			return model{}, err
		}
	}
	return m, nil
}

var utcLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
}

// utcTime - время котировки в формате провайдера.
type utcTime struct{ time.Time }

func (t *utcTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	var lastErr error
	for _, layout := range utcLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
		lastErr = err
	}
	return lastErr
}
