package domain

// Subscription - авторассылка в чат: сводка по всем парам или одна пара.
type Subscription struct {
	ChatID int64
	// Source и Target пустые - сводка по всем парам
	Source          string
	Target          string
	IntervalMinutes int
}

// AllPairs - подписка на сводку, а не на конкретную пару.
func (s Subscription) AllPairs() bool {
	return s.Source == ""
}
