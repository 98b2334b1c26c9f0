package resolver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/JoeSaf/personal-management-system/routing"
)

// staticRequest is a RequestInfo reporting a fixed method.
type staticRequest string

func (s staticRequest) Method() string { return string(s) }

func newTestTable(t *testing.T) *routing.Table {
	t.Helper()
	table, err := routing.NewTable(
		routing.Definition{Name: "dashboard", Path: "/dashboard", Handler: "DashboardController::index"},
		routing.Definition{Name: "overview_files", Path: "/files/{subpath}", Handler: "FilesController::overview"},
		routing.Definition{Name: "overview_videos", Path: "/videos/{subpath}", Handler: "VideosController::overview"},
		routing.Definition{Name: "overview_images", Path: "/images/{subpath}", Handler: "ImagesController::overview"},
	)
	require.NoError(t, err)
	return table
}

func newObservedResolver(t *testing.T, req RequestInfo) (*Resolver, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.WarnLevel)
	r, err := New(Config{
		Table:   newTestTable(t),
		Request: req,
		Logger:  zap.New(core),
	})
	require.NoError(t, err)
	return r, logs
}

func TestNew(t *testing.T) {
	t.Run("requires a table", func(t *testing.T) {
		_, err := New(Config{})
		assert.Error(t, err)
	})

	t.Run("defaults are optional", func(t *testing.T) {
		r, err := New(Config{Table: newTestTable(t)})
		require.NoError(t, err)

		handler, ok := r.ResolveHandler("/dashboard")
		assert.True(t, ok)
		assert.Equal(t, "DashboardController::index", handler)
	})
}

func TestResolveHandler(t *testing.T) {
	t.Run("resolves registered url", func(t *testing.T) {
		r, logs := newObservedResolver(t, nil)

		handler, ok := r.ResolveHandler("/files/docs")
		assert.True(t, ok)
		assert.Equal(t, "FilesController::overview", handler)
		assert.Zero(t, logs.Len())
	})

	t.Run("query string does not affect resolution", func(t *testing.T) {
		r, _ := newObservedResolver(t, nil)

		withQuery, ok1 := r.ResolveHandler("/dashboard?x=1")
		bare, ok2 := r.ResolveHandler("/dashboard")
		assert.True(t, ok1)
		assert.True(t, ok2)
		assert.Equal(t, bare, withQuery)
	})

	t.Run("unmatched url is absent, never an error", func(t *testing.T) {
		r, logs := newObservedResolver(t, nil)

		handler, ok := r.ResolveHandler("/nowhere?x=1")
		assert.False(t, ok)
		assert.Empty(t, handler)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		fields := entry.ContextMap()
		assert.Equal(t, "no_handler_found", fields["event"])
		assert.Equal(t, "/nowhere?x=1", fields["url"])
		assert.Equal(t, "/nowhere", fields["normalized_url"])
		assert.NotEmpty(t, fields["event_id"])
		assert.NotEmpty(t, fields["error"])
	})
}

func TestResolveRouteName(t *testing.T) {
	t.Run("resolves registered uri", func(t *testing.T) {
		r, logs := newObservedResolver(t, staticRequest(http.MethodGet))

		name, ok := r.ResolveRouteName("/videos/clips")
		assert.True(t, ok)
		assert.Equal(t, "overview_videos", name)
		assert.Zero(t, logs.Len())
	})

	t.Run("unmatched uri logs a diagnostic", func(t *testing.T) {
		r, logs := newObservedResolver(t, staticRequest(http.MethodGet))

		_, ok := r.ResolveRouteName("/nowhere")
		assert.False(t, ok)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, "no_route_found", logs.All()[0].ContextMap()["event"])
	})

	t.Run("diagnostic suppressed for OPTIONS requests", func(t *testing.T) {
		r, logs := newObservedResolver(t, staticRequest(http.MethodOptions))

		_, ok := r.ResolveRouteName("/nowhere")
		assert.False(t, ok)
		assert.Zero(t, logs.Len())
	})
}

func TestMatchesAnyOverviewRoute(t *testing.T) {
	t.Run("matches files overview", func(t *testing.T) {
		r, _ := newObservedResolver(t, nil)
		assert.True(t, r.MatchesAnyOverviewRoute("/files/docs", "docs"))
	})

	t.Run("matches later module after earlier misses", func(t *testing.T) {
		r, _ := newObservedResolver(t, nil)
		assert.True(t, r.MatchesAnyOverviewRoute("/images/photos", "photos"))
	})

	t.Run("pre-encoded sub-path needs the double encoding", func(t *testing.T) {
		r, _ := newObservedResolver(t, nil)
		assert.True(t, r.MatchesAnyOverviewRoute("/files/a%2520b", "a%20b"))
	})

	t.Run("non-overview url does not match", func(t *testing.T) {
		r, _ := newObservedResolver(t, nil)
		assert.False(t, r.MatchesAnyOverviewRoute("/dashboard", "docs"))
		assert.False(t, r.MatchesAnyOverviewRoute("/files/other", "docs"))
	})
}
