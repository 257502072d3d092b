package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"google.golang.org/genai"

	"jobSeniority/internal/domain"
)

// GeminiConfig — настройки модели Gemini. Переменные: SENIORITY_GEMINI_*.
type GeminiConfig struct {
	APIKey  string `envconfig:"API_KEY"`
	Model   string `envconfig:"MODEL" default:"gemini-2.5-flash"`
	BaseURL string `envconfig:"BASE_URL"` // прокси или тестовый сервер
}

// Gemini классифицирует батч одним запросом к Gemini со структурированным JSON-ответом.
type Gemini struct {
	client *genai.Client
	model  string
	log    *slog.Logger
}

// NewGemini создаёт клиента Gemini. Без ключа API модель не поднимается.
func NewGemini(ctx context.Context, cfg GeminiConfig, log *slog.Logger) (*Gemini, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("SENIORITY_GEMINI_API_KEY is required")
	}
	cc := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(cfg.APIKey),
		Backend: genai.BackendGeminiAPI,
	}
	if strings.TrimSpace(cfg.BaseURL) != "" {
		cc.HTTPOptions.BaseURL = strings.TrimSpace(cfg.BaseURL)
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Gemini{client: client, model: strings.TrimSpace(cfg.Model), log: log}, nil
}

var outputSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"index":     {Type: genai.TypeInteger},
			"seniority": {Type: genai.TypeInteger},
		},
		Required: []string{"index", "seniority"},
	},
}

type promptItem struct {
	Index   int    `json:"index"`
	Company string `json:"company"`
	Title   string `json:"title"`
}

type answerItem struct {
	Index     int `json:"index"`
	Seniority int `json:"seniority"`
}

// Infer отправляет весь батч одним запросом. Пропущенные моделью позиции просто не попадают в ответ.
func (g *Gemini) Infer(ctx context.Context, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, error) {
	if len(batch) == 0 {
		return nil, nil
	}
	prompt, err := buildPrompt(batch)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		CandidateCount:   1,
		ResponseMIMEType: "application/json",
		ResponseSchema:   outputSchema,
	})
	if err != nil {
		return nil, classifyErr(err)
	}

	out, dropped, err := parseAnswer(resp.Text(), batch)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		g.log.Warn("gemini answered unknown indices", "dropped", dropped, "batch", len(batch))
	}
	return out, nil
}

func buildPrompt(batch []domain.SeniorityRequest) (string, error) {
	items := make([]promptItem, len(batch))
	for i, r := range batch {
		items[i] = promptItem{Index: r.Index, Company: r.Company, Title: r.Title}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("gemini: encode batch: %w", err)
	}
	return strings.TrimSpace(fmt.Sprintf(`
You classify job postings by seniority level on a scale from %d (intern) to %d (executive).
For every item of the input array return one object {"index": <same index>, "seniority": <level>}.
Use only the company and the title. Do not skip items and do not invent indices.

Input: %s
`, domain.MinSeniority, domain.MaxSeniority, raw)), nil
}

// parseAnswer разбирает JSON-массив ответа, отбрасывает незапрошенные индексы и приводит уровни к 1..7.
func parseAnswer(text string, batch []domain.SeniorityRequest) ([]domain.SeniorityResponse, int, error) {
	var answers []answerItem
	if err := json.Unmarshal([]byte(text), &answers); err != nil {
		return nil, 0, fmt.Errorf("gemini: parse structured json: %w", err)
	}
	requested := make(map[int]bool, len(batch))
	for _, r := range batch {
		requested[r.Index] = true
	}
	out := make([]domain.SeniorityResponse, 0, len(answers))
	dropped := 0
	for _, a := range answers {
		if !requested[a.Index] {
			dropped++
			continue
		}
		delete(requested, a.Index)
		out = append(out, domain.SeniorityResponse{Index: a.Index, Seniority: domain.ClampSeniority(a.Seniority)})
	}
	return out, dropped, nil
}

func classifyErr(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || apiErr.Code/100 == 5 {
			return &domain.TransientError{Err: err}
		}
		return err
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &domain.TransientError{Err: err}
	}
	return err
}
