package v1_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-resume-backend/config"
	"go-resume-backend/internal/delivery/http/response"
	"go-resume-backend/internal/domain"
)

func decodeEnvelope(t *testing.T, body []byte) response.Response {
	t.Helper()
	var env response.Response
	assert.NoError(t, json.Unmarshal(body, &env))
	return env
}

func TestResumeCRUDEndpoints(t *testing.T) {
	router := testRouter(t, &config.Config{Doubao: config.ProviderSettings{ModelID: "ep-test"}}, stubChat{})

	// seed resume
	w := doJSON(router, http.MethodGet, "/api/resumes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)

	var resumes []domain.Resume
	raw, _ := json.Marshal(env.Data)
	assert.NoError(t, json.Unmarshal(raw, &resumes))
	assert.Len(t, resumes, 1)
	seedID := resumes[0].ID

	t.Run("create", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/resumes", `{"title":"后端简历"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Success)
	})

	t.Run("get unknown id", func(t *testing.T) {
		w := doJSON(router, http.MethodGet, "/api/resumes/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Success)
		assert.Equal(t, "Resume not found", env.Message)
	})

	t.Run("update title", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/resumes/"+seedID, `{"title":"改名"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/resumes/"+seedID, "")
		var r domain.Resume
		env := decodeEnvelope(t, w.Body.Bytes())
		raw, _ := json.Marshal(env.Data)
		assert.NoError(t, json.Unmarshal(raw, &r))
		assert.Equal(t, "改名", r.Title)
	})

	t.Run("section content replace", func(t *testing.T) {
		path := fmt.Sprintf("/api/resumes/%s/sections/skills", seedID)
		w := doJSON(router, http.MethodPut, path, `{"content":"<p>polished</p>"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/resumes/"+seedID, "")
		env := decodeEnvelope(t, w.Body.Bytes())
		var r domain.Resume
		raw, _ := json.Marshal(env.Data)
		assert.NoError(t, json.Unmarshal(raw, &r))
		assert.Equal(t, json.RawMessage(`"<p>polished</p>"`), r.Sections[1].Content)
	})

	t.Run("reorder", func(t *testing.T) {
		path := fmt.Sprintf("/api/resumes/%s/section-order", seedID)
		w := doJSON(router, http.MethodPut, path, `{"order":["education","project","experience","skills","basic"]}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodPut, path, `{"order":["basic"]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		w := doJSON(router, http.MethodDelete, "/api/resumes/"+seedID, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/resumes/"+seedID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSettingsEndpoints(t *testing.T) {
	router := testRouter(t, &config.Config{Doubao: config.ProviderSettings{ModelID: "ep-test"}}, stubChat{})

	t.Run("ai config partial merge", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/settings/ai", `{"provider":"openai"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/settings/ai", "")
		env := decodeEnvelope(t, w.Body.Bytes())
		var cfg domain.AIConfig
		raw, _ := json.Marshal(env.Data)
		assert.NoError(t, json.Unmarshal(raw, &cfg))
		assert.Equal(t, domain.ProviderOpenAI, cfg.Provider)
		assert.Equal(t, "ep-test", cfg.Model, "model untouched by partial update")
	})

	t.Run("ai config rejects unknown provider", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/settings/ai", `{"provider":"claude"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("theme roundtrip", func(t *testing.T) {
		w := doJSON(router, http.MethodPut, "/api/settings/theme", `{"theme":"light"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doJSON(router, http.MethodGet, "/api/settings/theme", "")
		env := decodeEnvelope(t, w.Body.Bytes())
		raw, _ := json.Marshal(env.Data)
		assert.JSONEq(t, `{"theme":"light"}`, string(raw))
	})
}
