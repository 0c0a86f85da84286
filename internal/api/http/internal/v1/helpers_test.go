package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/vibe-gaming/clan-api/internal/service"
	"github.com/vibe-gaming/clan-api/pkg/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router *gin.Engine
	clans  *clansMock
	files  *clanFilesMock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validator.RegisterGinValidator()

	env := &testEnv{
		router: gin.New(),
		clans:  &clansMock{},
		files:  &clanFilesMock{},
	}
	NewHandler(&service.Services{Clans: env.clans, ClanFiles: env.files}).Init(env.router.Group("/"))

	t.Cleanup(func() {
		env.clans.AssertExpectations(t)
		env.files.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(b)
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
