package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/llm"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/report"
)

var (
	tuesday = time.Date(2025, 3, 4, 9, 0, 0, 0, time.Local)
	sunday  = time.Date(2025, 3, 9, 9, 0, 0, 0, time.Local)
)

type fixture struct {
	router  *gin.Engine
	mock    *llm.MockProvider
	history *history.Store
}

func newFixture(t *testing.T, now time.Time, responses ...llm.MockResponse) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mock := llm.NewMockProvider(responses...)
	hist := history.NewStore(t.TempDir(), nil)
	router := NewRouter(Deps{
		Profiles: profile.NewStore(profile.Defaults(profile.Env{})),
		Missions: mission.NewGenerator(mock, nil),
		History:  hist,
		Reports:  report.NewGenerator(hist, mock, nil),
		Renderer: render.NewRenderer(nil),
		Now:      func() time.Time { return now },
	})
	return &fixture{router: router, mock: mock, history: hist}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t, tuesday)
	w := f.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestListChildren(t *testing.T) {
	f := newFixture(t, tuesday)
	w := f.do(t, http.MethodGet, "/api/children", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[struct {
		Children []childView `json:"children"`
		Caption  string      `json:"caption"`
	}](t, w)
	require.Len(t, body.Children, 2)
	assert.Equal(t, "minjun", body.Children[0].ID)
	assert.Contains(t, body.Caption, "화요일")
}

func TestGenerateMission(t *testing.T) {
	f := newFixture(t, tuesday, llm.MockResponse{Text: "# 미션"})
	w := f.do(t, http.MethodPost, "/api/children/minjun/missions", missionRequest{Level: "easy", Theme: "마인크래프트"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	m := decode[missionView](t, w)
	assert.Equal(t, "# 미션", m.Text)
	assert.Equal(t, "20250304", m.Day)
	assert.False(t, m.RestDay)
	assert.Equal(t, "과제_0304.txt", m.DownloadName)
	assert.Equal(t, 1, f.mock.CallCount())
}

func TestGenerateMissionRestDay(t *testing.T) {
	f := newFixture(t, sunday)
	w := f.do(t, http.MethodPost, "/api/children/seoa/missions", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	m := decode[missionView](t, w)
	assert.True(t, m.RestDay)
	assert.Contains(t, m.Text, "서아야")
	assert.Equal(t, 0, f.mock.CallCount())
}

func TestGenerateMissionErrors(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   string
	}{
		{"unknown child", "/api/children/nobody/missions", nil, http.StatusNotFound, "not_found"},
		{"bad level", "/api/children/minjun/missions", missionRequest{Level: "extreme"}, http.StatusBadRequest, "invalid_argument"},
		{"unknown theme", "/api/children/minjun/missions", missionRequest{Theme: "포트나이트"}, http.StatusBadRequest, "invalid_argument"},
		{"provider down", "/api/children/minjun/missions", missionRequest{}, http.StatusBadGateway, "generation_failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tuesday)
			w := f.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			env := decode[ErrorEnvelope](t, w)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.RequestID)
		})
	}
}

func TestSaveAndReadMission(t *testing.T) {
	f := newFixture(t, tuesday)

	w := f.do(t, http.MethodPut, "/api/children/minjun/missions/20250304", saveRequest{Text: "# 저장된 미션"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = f.do(t, http.MethodGet, "/api/children/minjun/missions", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Missions []entryView `json:"missions"`
	}](t, w)
	require.Len(t, list.Missions, 1)
	assert.Equal(t, "2025년 03월 04일", list.Missions[0].Label)
	assert.Equal(t, "# 저장된 미션", list.Missions[0].Text)

	w = f.do(t, http.MethodGet, "/api/children/minjun/missions/20250304", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# 저장된 미션", decode[entryView](t, w).Text)

	w = f.do(t, http.MethodGet, "/api/children/minjun/missions/20250304/download", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# 저장된 미션", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestSaveMissionRejectsOtherDays(t *testing.T) {
	f := newFixture(t, tuesday)
	w := f.do(t, http.MethodPut, "/api/children/minjun/missions/20250303", saveRequest{Text: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPut, "/api/children/minjun/missions/yesterday", saveRequest{Text: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	entries, err := f.history.List("minjun")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGetMissionNotFound(t *testing.T) {
	f := newFixture(t, tuesday)
	w := f.do(t, http.MethodGet, "/api/children/minjun/missions/20250301", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReport(t *testing.T) {
	f := newFixture(t, tuesday, llm.MockResponse{Text: "## 이번 주 학습 요약"})

	w := f.do(t, http.MethodPost, "/api/children/minjun/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	empty := decode[reportView](t, w)
	assert.Equal(t, report.NoRecordsMessage, empty.Text)
	assert.Equal(t, 0, f.mock.CallCount())

	_, err := f.history.Save("minjun", "mission", tuesday)
	require.NoError(t, err)

	w = f.do(t, http.MethodPost, "/api/children/minjun/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	r := decode[reportView](t, w)
	assert.Equal(t, "## 이번 주 학습 요약", r.Text)
	assert.Equal(t, 1, r.Records)
	assert.Equal(t, "리포트_20250304.txt", r.DownloadName)
	assert.Equal(t, 1, f.mock.CallCount())
}

func TestRenderPDF(t *testing.T) {
	f := newFixture(t, tuesday)
	w := f.do(t, http.MethodPost, "/api/render/pdf", renderRequest{Text: "# Mission\n\nbody", ChildID: "minjun"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestRenderPNG(t *testing.T) {
	f := newFixture(t, tuesday)
	w := f.do(t, http.MethodPost, "/api/render/png", renderRequest{Text: "# Mission"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func TestRenderValidation(t *testing.T) {
	f := newFixture(t, tuesday)
	w := f.do(t, http.MethodPost, "/api/render/pdf", map[string]string{"child_id": "minjun"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(t, http.MethodPost, "/api/render/pdf", renderRequest{Text: "x", ChildID: "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	f := newFixture(t, tuesday)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Deps{
		Profiles:    profile.NewStore(profile.Defaults(profile.Env{})),
		History:     history.NewStore(t.TempDir(), nil),
		Renderer:    render.NewRenderer(nil),
		CORSOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/children", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/children", nil)
	req.Header.Set("Origin", "http://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
