package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/auth"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-hub/backend/internal/repository"
)

// newTestHandler 构造一个不连接任何外部服务的 handler，
// 这里的用例只覆盖在进入存储层之前就返回的路径
func newTestHandler(t *testing.T) (*Handler, *auth.TokenService) {
	t.Helper()

	cfg := &config.Config{}
	repo := repository.NewRepository(cfg, nil)
	tokenService := auth.NewTokenService([]byte("test-secret"), time.Hour)

	h, err := NewHandler(cfg, repo, tokenService, nil, nil)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h, tokenService
}

func doRequest(h *Handler, method string, target string, authorization string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)
	return rec
}

func TestAuth_MutatingRoutesRequireBearerToken(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		name          string
		method        string
		target        string
		authorization string
	}{
		{"create without header", http.MethodPost, "/employees", ""},
		{"update without header", http.MethodPut, "/employees/E001", ""},
		{"delete without header", http.MethodDelete, "/employees/E001", ""},
		{"create with non-bearer header", http.MethodPost, "/employees", "Basic dXNlcjpwYXNz"},
		{"create with invalid token", http.MethodPost, "/employees", "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(h, tt.method, tt.target, tt.authorization, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, KindUnauthorized, resp.Kind)
		})
	}
}

func TestAuth_ExpiredTokenRejected(t *testing.T) {
	h, _ := newTestHandler(t)

	expired := auth.NewTokenService([]byte("test-secret"), -1*time.Second)
	tok, err := expired.Issue("alice")
	require.NoError(t, err)

	rec := doRequest(h, http.MethodPost, "/employees", "Bearer "+tok, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidTokenPassesGuard(t *testing.T) {
	h, tokenService := newTestHandler(t)

	tok, err := tokenService.Issue("alice")
	require.NoError(t, err)

	// 请求体为空时在校验阶段就返回 400，说明守卫已放行
	rec := doRequest(h, http.MethodPost, "/employees", "Bearer "+tok, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, KindValidationError, resp.Kind)
}

func TestAuth_ReadRoutesSkipGuard(t *testing.T) {
	h, _ := newTestHandler(t)

	// 不带令牌的读请求不应该返回 401，
	// 这里用参数校验错误在进入存储层之前截断请求
	tests := []struct {
		name   string
		target string
	}{
		{"list with invalid page", "/employees?page=0"},
		{"search without skill", "/employees/search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(h, http.MethodGet, tt.target, "", "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, KindValidationError, resp.Kind)
		})
	}
}
