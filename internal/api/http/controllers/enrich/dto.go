package enrich

import "jobSeniority/internal/domain"

// EnrichRequest — батч вакансий (для POST /api/v1/enrich). Атрибуты вакансии произвольные,
// обязательны только company и title.
type EnrichRequest struct {
	Postings []domain.Posting `json:"postings" binding:"required"`
}

// EnrichResponse — уровни по позициям входа (null — модель не ответила) и признак успеха батча.
type EnrichResponse struct {
	Seniorities []domain.Seniority `json:"seniorities"`
	OK          bool               `json:"ok"`
	Hits        int                `json:"hits"`
	Misses      int                `json:"misses"`
}

// ErrorResponse — ответ с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
