package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vmxio.com/kana-quiz/internal/config"
)

func newTestRouter(t *testing.T, batchSize int) (*gin.Engine, *QuizService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := newTestService(t, batchSize)
	cfg := &config.Config{
		Quiz: config.Quiz{BatchSize: batchSize},
		CORS: config.CORS{AllowedOrigins: []string{"https://quiz.example"}},
	}
	return NewRouter(cfg, svc, zap.NewNop()), svc
}

func doJSON(t *testing.T, r http.Handler, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type submitResp struct {
	Score   int        `json:"score"`
	Total   int        `json:"total"`
	Session SessionDTO `json:"session"`
	Summary struct {
		Correct  int `json:"correct"`
		Answered int `json:"answered"`
	} `json:"summary"`
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t, 5)
	w := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestGetSession_IssuesSession(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodGet, "/api/v1/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	id := w.Header().Get(sessionHeader)
	require.NotEmpty(t, id)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, id, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	s := decode[SessionDTO](t, w)
	assert.Equal(t, id, s.SessionID)
	assert.Equal(t, "hiragana", s.Mode)
	assert.Equal(t, "Hiragana → Bangla MCQ (5 Random)", s.Title)
	assert.Equal(t, 5, s.Total)
	assert.Nil(t, s.Score)
	for _, q := range s.Questions {
		assert.Len(t, q.Options, 4)
		assert.Empty(t, q.CorrectAnswer, "answers must stay hidden before submit")
	}

	// the same id resolves to the same session, via header or cookie
	again := doJSON(t, r, http.MethodGet, "/api/v1/session", id, nil)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, s, decode[SessionDTO](t, again))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	viaCookie := httptest.NewRecorder()
	r.ServeHTTP(viaCookie, req)
	require.Equal(t, http.StatusOK, viaCookie.Code)
	assert.Equal(t, id, viaCookie.Header().Get(sessionHeader))
}

func TestSession_UnknownIDStartsOver(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodGet, "/api/v1/session", "00000000-0000-0000-0000-000000000000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", w.Header().Get(sessionHeader))
}

func TestSession_AnswerAndSubmit(t *testing.T) {
	r, svc := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodGet, "/api/v1/session", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	id := w.Header().Get(sessionHeader)

	st, err := svc.Load(t.Context(), id)
	require.NoError(t, err)

	// answer every question but the last, all correctly
	for _, q := range st.Questions[:4] {
		w = doJSON(t, r, http.MethodPut, "/api/v1/session/answers", id, gin.H{
			"questionId": q.ID,
			"option":     q.CorrectAnswer,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	s := decode[SessionDTO](t, w)
	assert.Equal(t, 4, s.Answered)
	assert.Equal(t, st.Questions[3].CorrectAnswer, s.Questions[3].Selected)

	w = doJSON(t, r, http.MethodPost, "/api/v1/session/submit", id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[submitResp](t, w)
	assert.Equal(t, 4, res.Score)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 4, res.Summary.Correct)
	assert.Equal(t, 4, res.Summary.Answered)
	require.NotNil(t, res.Session.Score)
	for i, q := range res.Session.Questions {
		assert.Equal(t, st.Questions[i].CorrectAnswer, q.CorrectAnswer)
	}

	// try again: fresh batch, no answers, no score
	w = doJSON(t, r, http.MethodPost, "/api/v1/session/batch", id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	s = decode[SessionDTO](t, w)
	assert.Equal(t, 0, s.Answered)
	assert.Nil(t, s.Score)
	assert.Equal(t, 5, s.Total)
}

func TestSession_CreatedLazily(t *testing.T) {
	r, svc := newTestRouter(t, 5)

	sessions := func() int64 {
		var n int64
		require.NoError(t, svc.db.Model(&QuizSession{}).Count(&n).Error)
		return n
	}

	// the read-only deck routes never open a session
	w := doJSON(t, r, http.MethodGet, "/api/v1/modes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get(sessionHeader))
	assert.Zero(t, sessions())

	// a cookie-less mode switch starts straight in the requested mode
	w = doJSON(t, r, http.MethodPut, "/api/v1/session/mode", "", gin.H{"mode": "katakana"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "katakana", decode[SessionDTO](t, w).Mode)
	assert.NotEmpty(t, w.Header().Get(sessionHeader))
	assert.EqualValues(t, 1, sessions())

	w = doJSON(t, r, http.MethodPost, "/api/v1/session/batch", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, sessions())

	// a rejected body does not leave a session behind
	w = doJSON(t, r, http.MethodPut, "/api/v1/session/mode", "", gin.H{"mode": "romaji"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 2, sessions())
}

func TestSession_LockedAfterSubmit(t *testing.T) {
	r, svc := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodGet, "/api/v1/session", "", nil)
	id := w.Header().Get(sessionHeader)
	st, err := svc.Load(t.Context(), id)
	require.NoError(t, err)

	w = doJSON(t, r, http.MethodPost, "/api/v1/session/submit", id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[submitResp](t, w).Score)

	// the revealed key cannot be used to change answers
	for _, q := range st.Questions {
		w = doJSON(t, r, http.MethodPut, "/api/v1/session/answers", id, gin.H{
			"questionId": q.ID,
			"option":     q.CorrectAnswer,
		})
		assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/session/submit", id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[submitResp](t, w).Score)

	// a new batch unlocks the session
	w = doJSON(t, r, http.MethodPost, "/api/v1/session/batch", id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	fresh := decode[SessionDTO](t, w)
	w = doJSON(t, r, http.MethodPut, "/api/v1/session/answers", id, gin.H{
		"questionId": fresh.Questions[0].ID,
		"option":     fresh.Questions[0].Options[0],
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSession_SubmitEmpty(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodPost, "/api/v1/session/submit", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	res := decode[submitResp](t, w)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 5, res.Total)
}

func TestSession_SwitchMode(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodGet, "/api/v1/session", "", nil)
	id := w.Header().Get(sessionHeader)
	first := decode[SessionDTO](t, w)

	w = doJSON(t, r, http.MethodPut, "/api/v1/session/answers", id, gin.H{
		"questionId": first.Questions[0].ID,
		"option":     first.Questions[0].Options[1],
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/session/mode", id, gin.H{"mode": "katakana"})
	require.Equal(t, http.StatusOK, w.Code)
	s := decode[SessionDTO](t, w)
	assert.Equal(t, "katakana", s.Mode)
	assert.Equal(t, "Katakana → Bangla MCQ (5 Random)", s.Title)
	assert.Equal(t, 0, s.Answered)
	assert.Nil(t, s.Score)
}

func TestSession_BadRequests(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodGet, "/api/v1/session", "", nil)
	id := w.Header().Get(sessionHeader)
	s := decode[SessionDTO](t, w)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"unknown mode", http.MethodPut, "/api/v1/session/mode", gin.H{"mode": "romaji"}, http.StatusBadRequest},
		{"mode missing body", http.MethodPut, "/api/v1/session/mode", nil, http.StatusBadRequest},
		{"answer missing question", http.MethodPut, "/api/v1/session/answers", gin.H{"option": "আ"}, http.StatusBadRequest},
		{"answer unknown question", http.MethodPut, "/api/v1/session/answers", gin.H{"questionId": 99, "option": "আ"}, http.StatusBadRequest},
		{"answer not offered", http.MethodPut, "/api/v1/session/answers", gin.H{"questionId": s.Questions[0].ID, "option": "nope"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, tt.method, tt.path, id, tt.body)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}

	// none of the rejected requests changed the session
	w = doJSON(t, r, http.MethodGet, "/api/v1/session", id, nil)
	assert.Equal(t, s, decode[SessionDTO](t, w))
}

func TestListModes(t *testing.T) {
	r, _ := newTestRouter(t, 50)

	w := doJSON(t, r, http.MethodGet, "/api/v1/modes", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	modes := decode[[]ModeDTO](t, w)
	assert.Equal(t, []ModeDTO{
		{Mode: "hiragana", Title: "Hiragana → Bangla MCQ (50 Random)", DeckSize: 104},
		{Mode: "katakana", Title: "Katakana → Bangla MCQ (50 Random)", DeckSize: 104},
	}, modes)
}

func TestGetDeck(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	w := doJSON(t, r, http.MethodGet, "/api/v1/decks/katakana", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	deck := decode[struct {
		Mode  string `json:"mode"`
		Pairs []struct {
			Symbol      string `json:"symbol"`
			Translation string `json:"translation"`
		} `json:"pairs"`
	}](t, w)
	assert.Equal(t, "katakana", deck.Mode)
	require.Len(t, deck.Pairs, 104)
	assert.Equal(t, "ア", deck.Pairs[0].Symbol)
	assert.Equal(t, "আ", deck.Pairs[0].Translation)

	w = doJSON(t, r, http.MethodGet, "/api/v1/decks/romaji", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	r, _ := newTestRouter(t, 5)

	tests := []struct {
		origin  string
		allowed bool
	}{
		{"https://quiz.example", true},
		{"http://localhost:5173", true},
		{"https://evil.example", false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/modes", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if tt.allowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Equal(t, http.StatusForbidden, w.Code)
			}
		})
	}
}
