package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"tierlist/backend/internal/auth"
	"tierlist/backend/internal/database"
	"tierlist/backend/internal/handler"
	"tierlist/backend/internal/hub"
	"tierlist/backend/internal/identity"
	"tierlist/backend/internal/models"
	"tierlist/backend/internal/steam"
	"tierlist/backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router     *gin.Engine
	db         *gorm.DB
	store      *database.Store
	fake       *testutil.FakeIdentityProvider
	resolver   *auth.Resolver
	hub        *hub.Hub
	steamCalls *atomic.Int32
	steamDown  *atomic.Bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewTestDB(t)
	testutil.SeedTiers(t, db)
	store := database.NewStore(db)

	fake := testutil.NewFakeIdentityProvider(t)
	idp := identity.NewClient(fake.URL(), "anon", nil)
	resolver := auth.NewResolver(idp, auth.NewCookieCodec("session-secret"), fake.Secret, false)

	calls := &atomic.Int32{}
	down := &atomic.Bool{}
	steamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if down.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":1,"items":[{"type":"app","name":"Portal","id":400,"tiny_image":"https://cdn/400.jpg"}]}`))
	}))
	t.Cleanup(steamSrv.Close)

	events := hub.NewHub()
	h := handler.New(store, idp, resolver, steam.NewClient(steamSrv.URL, nil), events, handler.Options{
		OAuthProvider: "twitch",
		CallbackURL:   "http://localhost:8080/api/auth/callback",
	})

	return &testEnv{
		router:     handler.NewRouter(h, store),
		db:         db,
		store:      store,
		fake:       fake,
		resolver:   resolver,
		hub:        events,
		steamCalls: calls,
		steamDown:  down,
	}
}

// signIn provisions a profile with role and returns its session cookie.
func (e *testEnv) signIn(t *testing.T, role string) *http.Cookie {
	t.Helper()
	return testutil.SignIn(t, e.fake, e.resolver, testutil.CreateProfile(t, e.db, role))
}

func (e *testEnv) signInAs(t *testing.T, userID uuid.UUID) *http.Cookie {
	t.Helper()
	return testutil.SignIn(t, e.fake, e.resolver, userID)
}

func (e *testEnv) serve(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		if c != nil {
			req.AddCookie(c)
		}
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, values url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return e.serve(req, cookies...)
}

func (e *testEnv) postJSON(path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return e.serve(req, cookies...)
}

func (e *testEnv) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return e.serve(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (e *testEnv) games(t *testing.T) []models.Game {
	t.Helper()
	var games []models.Game
	require.NoError(t, e.db.Order("id").Find(&games).Error)
	return games
}

func (e *testEnv) tagNames(t *testing.T, gameID uint) []string {
	t.Helper()
	var names []string
	require.NoError(t, e.db.Table("game_tags").
		Joins("JOIN tags ON tags.id = game_tags.tag_id").
		Where("game_tags.game_id = ?", gameID).
		Order("tags.name").
		Pluck("tags.name", &names).Error)
	return names
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
