package fakeapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatgo/internal/domain"
	"eatgo/internal/fakeapi"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	s := fakeapi.New(nil)
	fakeapi.Seed(s)
	return s.Handler()
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRestaurants_FilteredByRegionAndCategory(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/restaurants?region=서울&category=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "양천주가", got[0].Name)
	assert.Empty(t, got[0].Reviews)

	rec = do(t, h, http.MethodGet, "/restaurants?region=서울&category=x", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestaurant_NotFound(t *testing.T) {
	h := newHandler(t)
	rec := do(t, h, http.MethodGet, "/restaurants/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSessionAndReview(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/session", "", map[string]string{"email": "tester@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/session", "", map[string]string{"email": "tester@example.com", "password": "test"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var session struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.AccessToken)

	review := map[string]any{"score": 5, "description": "정말 최고"}

	rec = do(t, h, http.MethodPost, "/restaurants/1/reviews", "", review)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/restaurants/1/reviews", session.AccessToken, map[string]any{"score": 9, "description": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/restaurants/1/reviews", session.AccessToken, review)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, "/restaurants/1", "", nil)
	var r domain.Restaurant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	require.Len(t, r.Reviews, 2)
	assert.Equal(t, "테스터", r.Reviews[1].Name)
	assert.Equal(t, int64(2), r.Reviews[1].ID)
}
