package routecfg

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeSaf/personal-management-system/routing"
)

const sampleRoutes = `
routes:
  - name: overview_files
    path: /files/{subpath}
    handler: "FilesController::overview"
  - name: article
    path: /articles/{category}/{id}
    handler: "ArticleController::show"
    methods: [get, POST]
    requirements:
      id: "[0-9]+"
    defaults:
      category: news
`

func TestParse(t *testing.T) {
	t.Run("parses routes", func(t *testing.T) {
		f, err := Parse([]byte(sampleRoutes))
		require.NoError(t, err)
		require.Len(t, f.Routes, 2)

		assert.Equal(t, "overview_files", f.Routes[0].Name)
		assert.Equal(t, "/files/{subpath}", f.Routes[0].Path)
		assert.Equal(t, "FilesController::overview", f.Routes[0].Handler)

		assert.Equal(t, []string{"get", "POST"}, f.Routes[1].Methods)
		assert.Equal(t, map[string]string{"id": "[0-9]+"}, f.Routes[1].Requirements)
		assert.Equal(t, map[string]string{"category": "news"}, f.Routes[1].Defaults)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("routes: ["))
		assert.Error(t, err)
	})
}

func TestFileValidate(t *testing.T) {
	valid := func() *File {
		return &File{Routes: []Route{
			{Name: "home", Path: "/", Handler: "HomeController::index"},
		}}
	}

	t.Run("accepts valid file", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		f := valid()
		f.Routes[0].Name = ""
		assert.ErrorContains(t, f.Validate(), "name is required")
	})

	t.Run("rejects reused name", func(t *testing.T) {
		f := valid()
		f.Routes = append(f.Routes, Route{Name: "home", Path: "/home", Handler: "HomeController::index"})
		assert.ErrorContains(t, f.Validate(), "already used")
	})

	t.Run("rejects missing path", func(t *testing.T) {
		f := valid()
		f.Routes[0].Path = ""
		assert.ErrorContains(t, f.Validate(), "path is required")
	})

	t.Run("rejects relative path", func(t *testing.T) {
		f := valid()
		f.Routes[0].Path = "home"
		assert.ErrorContains(t, f.Validate(), "must start with /")
	})

	t.Run("rejects missing handler", func(t *testing.T) {
		f := valid()
		f.Routes[0].Handler = ""
		assert.ErrorContains(t, f.Validate(), "handler is required")
	})

	t.Run("rejects unknown method token", func(t *testing.T) {
		f := valid()
		f.Routes[0].Methods = []string{"FETCH"}
		assert.ErrorContains(t, f.Validate(), "unknown HTTP method")
	})
}

func TestFileDefinitions(t *testing.T) {
	f, err := Parse([]byte(sampleRoutes))
	require.NoError(t, err)

	defs := f.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, []string{"GET", "POST"}, defs[1].Methods)

	table, err := routing.NewTable(defs...)
	require.NoError(t, err)

	m, err := table.Match("/articles/tech/42", http.MethodGet)
	require.NoError(t, err)
	assert.Equal(t, "article", m.RouteName)

	_, err = table.Match("/articles/tech/not-a-number", http.MethodGet)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Run("loads from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "routes.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleRoutes), 0o600))

		f, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, f.Routes, 2)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("directory instead of file", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "directory")
	})
}
