package runs

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"jobSeniority/internal/domain"
	"jobSeniority/internal/mocks"
)

func newRouter(t *testing.T) (*gin.Engine, *mocks.MockIProcessorUseCase) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProcessorUseCase(ctrl)
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(uc, log).RegisterRoutes(r)
	return r, uc
}

func TestRun(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().Run(gomock.Any()).Return(domain.RunReport{
		StartAfter: "job-postings-raw/0.txt",
		LastKey:    "job-postings-raw/1.txt",
		Files:      []domain.FileReport{{Key: "job-postings-raw/1.txt", Postings: 2, OK: true}},
		Failed:     []domain.FileError{{Key: "job-postings-raw/2.txt", Error: "malformed postings file"}},
	}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/runs", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp RunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "job-postings-raw/1.txt", resp.LastKey)
	assert.Len(t, resp.Files, 1)
	assert.Len(t, resp.Failed, 1)
	assert.Empty(t, resp.Error)
}

func TestRun_Error(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().Run(gomock.Any()).Return(domain.RunReport{}, errors.New("read cursor: redis down"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/runs", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "redis down")
}

func TestHistory(t *testing.T) {
	r, uc := newRouter(t)
	uc.EXPECT().History(gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/runs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[]}`, w.Body.String())
}
