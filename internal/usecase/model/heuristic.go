package model

import (
	"context"
	"strings"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/ports"
)

var _ ports.ISeniorityModel = (*Heuristic)(nil)

// rule — уровень, который назначается должности, если в ней встречается одно из слов.
type rule struct {
	level int
	words []string
}

// Правила проверяются сверху вниз, побеждает первое совпадение: "Senior Director" — это 6, а не 5.
var rules = []rule{
	{level: 7, words: []string{"chief", "cto", "ceo", "vp", "vice president", "head"}},
	{level: 6, words: []string{"director", "principal", "staff", "lead"}},
	{level: 5, words: []string{"senior", "sr", "manager"}},
	{level: 4, words: []string{"iii", "mid-senior"}},
	{level: 2, words: []string{"junior", "jr", "associate", "entry", "graduate"}},
	{level: 1, words: []string{"intern", "internship", "trainee", "apprentice"}},
}

// defaultLevel — уровень должности без маркеров сеньорности.
const defaultLevel = 3

// Heuristic — детерминированная модель по ключевым словам в должности. Компания на уровень не влияет.
type Heuristic struct{}

// NewHeuristic создаёт модель по ключевым словам.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Infer отвечает на каждую позицию батча.
func (h *Heuristic) Infer(ctx context.Context, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, error) {
	out := make([]domain.SeniorityResponse, 0, len(batch))
	for _, r := range batch {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out = append(out, domain.SeniorityResponse{Index: r.Index, Seniority: classify(r.Title)})
	}
	return out, nil
}

func classify(title string) int {
	words := tokenize(title)
	for _, r := range rules {
		for _, w := range r.words {
			if words[w] || (strings.Contains(w, " ") && strings.Contains(strings.ToLower(title), w)) {
				return r.level
			}
		}
	}
	return defaultLevel
}

func tokenize(title string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-')
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[strings.Trim(f, "-")] = true
		words[f] = true
	}
	return words
}
