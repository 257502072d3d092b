package domain

import "encoding/json"

// Границы уровня сеньорности, которые возвращает модель.
const (
	MinSeniority = 1
	MaxSeniority = 7
)

// Seniority — результат обогащения одной вакансии. Known == false означает «модель не ответила»:
// это явное отсутствие значения, а не подставленный уровень.
type Seniority struct {
	Level int
	Known bool
}

// Level возвращает известный уровень сеньорности.
func Level(l int) Seniority {
	return Seniority{Level: l, Known: true}
}

// MarshalJSON пишет уровень числом, а отсутствие — null.
func (s Seniority) MarshalJSON() ([]byte, error) {
	if !s.Known {
		return []byte("null"), nil
	}
	return json.Marshal(s.Level)
}

// ClampSeniority приводит произвольное число к допустимому диапазону уровней.
func ClampSeniority(l int) int {
	if l < MinSeniority {
		return MinSeniority
	}
	if l > MaxSeniority {
		return MaxSeniority
	}
	return l
}

// SeniorityRequest — одна позиция батч-запроса к модели. Index — позиция вакансии во входном списке.
type SeniorityRequest struct {
	Index   int
	Company string
	Title   string
}

// SeniorityResponse — ответ модели для позиции Index.
type SeniorityResponse struct {
	Index     int
	Seniority int
}

// Enrichment — результат Enrich для батча вакансий.
// Seniorities всегда той же длины и в том же порядке, что и вход.
// OK == false только когда промахи были, а модель не вернула ни одного принятого ответа.
type Enrichment struct {
	Seniorities []Seniority
	OK          bool

	Hits     int
	Misses   int
	Resolved int
	Absent   int
}
