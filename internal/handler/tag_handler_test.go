package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tierlist/backend/internal/handler"
	"tierlist/backend/internal/models"
	"tierlist/backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTags(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTag(t, env.db, "Shooter")
	testutil.CreateTag(t, env.db, "Co-op")

	w := env.get("/api/tags")
	require.Equal(t, http.StatusOK, w.Code)
	tags := decode[[]handler.TagResponse](t, w)
	require.Len(t, tags, 2)
	assert.Equal(t, "Co-op", tags[0].Name)
}

func TestAdminTags(t *testing.T) {
	env := newTestEnv(t)
	admin := env.signIn(t, models.RoleAdmin)
	member := env.signIn(t, "user")
	tag := testutil.CreateTag(t, env.db, "Rogelike")
	path := fmt.Sprintf("/api/admin/tags/%d", tag.ID)

	rename := func(cookie *http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(`{"name":"Roguelike"}`))
		req.Header.Set("Content-Type", "application/json")
		return env.serve(req, cookie)
	}

	assert.Equal(t, http.StatusUnauthorized, rename(nil).Code)
	assert.Equal(t, http.StatusForbidden, rename(member).Code)

	w := rename(admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Roguelike", decode[handler.TagResponse](t, w).Name)

	w = env.serve(httptest.NewRequest(http.MethodDelete, path, nil), admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.serve(httptest.NewRequest(http.MethodDelete, path, nil), admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.serve(httptest.NewRequest(http.MethodDelete, "/api/admin/tags/abc", nil), admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
