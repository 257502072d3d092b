// Package seniorityv1 — контракт gRPC-сервиса seniority.v1.SeniorityModel.
// Сообщения передаются JSON-кодеком (см. codec.go), поэтому обходимся без protoc.
package seniorityv1

// SeniorityRequest — одна вакансия в батче. Index коррелирует ответ с исходной позицией.
type SeniorityRequest struct {
	Index   int32  `json:"index"`
	Company string `json:"company"`
	Title   string `json:"title"`
}

func (r *SeniorityRequest) GetIndex() int32 {
	if r == nil {
		return 0
	}
	return r.Index
}

func (r *SeniorityRequest) GetCompany() string {
	if r == nil {
		return ""
	}
	return r.Company
}

func (r *SeniorityRequest) GetTitle() string {
	if r == nil {
		return ""
	}
	return r.Title
}

// SeniorityRequestBatch — батч-запрос.
type SeniorityRequestBatch struct {
	Batch []*SeniorityRequest `json:"batch"`
}

// BatchLen — число вакансий в батче (для логирующего интерцептора).
func (b *SeniorityRequestBatch) BatchLen() int {
	return len(b.GetBatch())
}

func (b *SeniorityRequestBatch) GetBatch() []*SeniorityRequest {
	if b == nil {
		return nil
	}
	return b.Batch
}

// SeniorityResponse — уровень сеньорности для позиции Index.
type SeniorityResponse struct {
	Index     int32 `json:"index"`
	Seniority int32 `json:"seniority"`
}

func (r *SeniorityResponse) GetIndex() int32 {
	if r == nil {
		return 0
	}
	return r.Index
}

func (r *SeniorityResponse) GetSeniority() int32 {
	if r == nil {
		return 0
	}
	return r.Seniority
}

// SeniorityResponseBatch — батч-ответ. Может быть короче запроса.
type SeniorityResponseBatch struct {
	Batch []*SeniorityResponse `json:"batch"`
}

func (b *SeniorityResponseBatch) GetBatch() []*SeniorityResponse {
	if b == nil {
		return nil
	}
	return b.Batch
}
