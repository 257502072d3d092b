package domain

import (
	"fmt"
	"strings"
)

// Атрибуты вакансии, из которых строится ключ кэша.
const (
	AttrCompany   = "company"
	AttrTitle     = "title"
	AttrSeniority = "seniority"
)

// Posting — вакансия как непрозрачный набор атрибутов (строка JSONL после разбора).
// Для кэша важны только company и title, остальные поля не участвуют в идентичности.
type Posting map[string]any

// Attr возвращает строковый атрибут. ok == false, если атрибута нет, он не строка или пустой.
func (p Posting) Attr(name string) (string, bool) {
	v, found := p[name]
	if !found {
		return "", false
	}
	s, isString := v.(string)
	if !isString || s == "" {
		return "", false
	}
	return s, true
}

// CacheKey формирует ключ кэша "company:title". Одинаковые company и title всегда дают один ключ.
// Если одного из атрибутов нет — ErrMalformedPosting, ключ по умолчанию не подставляется.
func (p Posting) CacheKey() (string, error) {
	company, ok := p.Attr(AttrCompany)
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedPosting, AttrCompany)
	}
	title, ok := p.Attr(AttrTitle)
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrMalformedPosting, AttrTitle)
	}
	return CacheKey(company, title), nil
}

// CacheKey склеивает компанию и должность в ключ кэша.
func CacheKey(company, title string) string {
	return strings.Join([]string{company, title}, ":")
}
