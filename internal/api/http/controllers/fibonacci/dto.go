package fibonacci

import "time"

// CalculateRequest — запрос на вычисление (для POST /api/v1/fibonacci).
// Position указатель: позиция 0 допустима, а binding:"required" отвергает нулевые значения.
type CalculateRequest struct {
	Position *int   `json:"position" binding:"required"`
	Strategy string `json:"strategy"`
}

// CalculationResponse — результат одного вычисления.
type CalculationResponse struct {
	Position   int     `json:"position"`
	Strategy   string  `json:"strategy"`
	Value      uint64  `json:"value"`
	CacheHit   bool    `json:"cache_hit"`
	DurationMs float64 `json:"duration_ms"`
}

// CompareResponse — результат сравнения стратегий.
type CompareResponse struct {
	Position        int     `json:"position"`
	Value           uint64  `json:"value"`
	Equal           bool    `json:"equal"`
	PlainDurationMs float64 `json:"plain_duration_ms"`
	MemoDurationMs  float64 `json:"memo_duration_ms"`
	Speedup         float64 `json:"speedup"`
}

// HistoryItem — одна запись в истории (для GET /api/v1/history).
type HistoryItem struct {
	ID         int       `json:"id"`
	Position   int       `json:"position"`
	Strategy   string    `json:"strategy"`
	Value      uint64    `json:"value"`
	CacheHit   bool      `json:"cache_hit"`
	DurationMs float64   `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

// HistoryResponse — ответ со списком вычислений.
type HistoryResponse struct {
	Items []HistoryItem `json:"items"`
}

// CacheResponse — состояние кэша memo.
type CacheResponse struct {
	Entries     int `json:"entries"`
	MaxPosition int `json:"max_position"`
}

// ErrorResponse — ответ с ошибкой.
type ErrorResponse struct {
	Message string `json:"message"`
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
