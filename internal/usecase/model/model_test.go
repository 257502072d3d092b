package model

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"jobSeniority/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{title: "Software Developer", want: 3},
		{title: "Senior Data Engineer - Data Flow", want: 5},
		{title: "Sr. Backend Developer", want: 5},
		{title: "Senior Director, Engineering", want: 6},
		{title: "Staff Machine Learning Engineer", want: 6},
		{title: "VP of Data", want: 7},
		{title: "Vice President, Platform", want: 7},
		{title: "Junior Data Scientist", want: 2},
		{title: "Software Engineering Intern", want: 1},
		{title: "Engineer III", want: 4},
		{title: "Mid-Senior Analyst", want: 4},
		{title: "", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.title))
		})
	}
}

func TestHeuristic_InferKeepsIndices(t *testing.T) {
	h := NewHeuristic()
	batch := []domain.SeniorityRequest{
		{Index: 7, Company: "Tech Corp", Title: "Senior Engineer"},
		{Index: 2, Company: "Tech Corp", Title: "Intern"},
	}

	out, err := h.Infer(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, []domain.SeniorityResponse{{Index: 7, Seniority: 5}, {Index: 2, Seniority: 1}}, out)

	// Детерминированность: тот же вход — тот же ответ.
	again, err := h.Infer(context.Background(), batch)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestHeuristic_InferCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHeuristic().Infer(ctx, []domain.SeniorityRequest{{Index: 0, Title: "Engineer"}})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandom_InferInRange(t *testing.T) {
	batch := make([]domain.SeniorityRequest, 200)
	for i := range batch {
		batch[i] = domain.SeniorityRequest{Index: i, Company: "AI Solutions", Title: "Data Scientist"}
	}

	out, err := NewRandom().Infer(context.Background(), batch)

	require.NoError(t, err)
	require.Len(t, out, len(batch))
	for i, r := range out {
		assert.Equal(t, i, r.Index)
		assert.GreaterOrEqual(t, r.Seniority, domain.MinSeniority)
		assert.LessOrEqual(t, r.Seniority, domain.MaxSeniority)
	}
}

func TestGemini_ParseAnswer(t *testing.T) {
	batch := []domain.SeniorityRequest{
		{Index: 0, Company: "Tech Corp", Title: "Software Developer"},
		{Index: 4, Company: "Revelio Labs", Title: "Senior Data Engineer"},
		{Index: 9, Company: "AI Solutions", Title: "Intern"},
	}

	out, dropped, err := parseAnswer(`[
		{"index": 4, "seniority": 9},
		{"index": 0, "seniority": 3},
		{"index": 0, "seniority": 6},
		{"index": 13, "seniority": 2}
	]`, batch)

	require.NoError(t, err)
	assert.Equal(t, 2, dropped, "повтор и незапрошенный индекс отброшены")
	assert.Equal(t, []domain.SeniorityResponse{{Index: 4, Seniority: 7}, {Index: 0, Seniority: 3}}, out)

	_, _, err = parseAnswer(`{"index": 0}`, batch)
	assert.Error(t, err)
}

func TestGemini_BuildPrompt(t *testing.T) {
	prompt, err := buildPrompt([]domain.SeniorityRequest{{Index: 3, Company: "Data Insights", Title: "Backend Developer"}})

	require.NoError(t, err)
	assert.Contains(t, prompt, `{"index":3,"company":"Data Insights","title":"Backend Developer"}`)
	assert.Contains(t, prompt, "from 1 (intern) to 7 (executive)")
}

type timeoutNetErr struct{}

func (timeoutNetErr) Error() string   { return "i/o timeout" }
func (timeoutNetErr) Timeout() bool   { return true }
func (timeoutNetErr) Temporary() bool { return true }

func TestGemini_ClassifyErr(t *testing.T) {
	tests := []struct {
		name          string
		in            error
		wantTransient bool
	}{
		{name: "nil", in: nil, wantTransient: false},
		{name: "api 429", in: genai.APIError{Code: 429}, wantTransient: true},
		{name: "api 500", in: genai.APIError{Code: 500}, wantTransient: true},
		{name: "api 503 обёрнутая", in: fmt.Errorf("generate: %w", genai.APIError{Code: 503}), wantTransient: true},
		{name: "api 400", in: genai.APIError{Code: 400}, wantTransient: false},
		{name: "api 401", in: genai.APIError{Code: 401}, wantTransient: false},
		{name: "сетевой таймаут", in: timeoutNetErr{}, wantTransient: true},
		{name: "текст ошибки 429 без типа", in: errors.New(genai.APIError{Code: 429}.Error()), wantTransient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyErr(tt.in)
			var te *domain.TransientError
			assert.Equal(t, tt.wantTransient, errors.As(got, &te), "err=%T %v", got, got)
			if tt.in == nil {
				assert.NoError(t, got)
			} else {
				assert.EqualError(t, got, tt.in.Error(), "текст исходной ошибки сохраняется")
			}
		})
	}
}
