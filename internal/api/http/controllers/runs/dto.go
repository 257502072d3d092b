package runs

import "jobSeniority/internal/domain"

// HistoryResponse — журнал обработанных файлов (для GET /api/v1/runs).
type HistoryResponse struct {
	Items []domain.FileReport `json:"items"`
}

// RunResponse — итог прохода по бакету (для POST /api/v1/runs). Error заполнен, если проход прервался.
type RunResponse struct {
	domain.RunReport
	Error string `json:"error,omitempty"`
}
