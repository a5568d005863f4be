package resolve

import (
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classloader/internal/classid"
	"classloader/internal/diagnostic"
	"classloader/internal/includepath"
)

func newResolver(env Environment) *Resolver {
	return NewResolver(env, DefaultConfig())
}

func appsFs(t *testing.T, dirs ...string) *includepath.Search {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}

	return includepath.New(fs)
}

func TestFindClass_PrefixExample(t *testing.T) {
	r := newResolver(Environment{})
	r.RegisterPrefix("Foo_", "/src")

	assert.Equal(t, []string{"/src/Foo/Bar/Baz.php"}, r.FindClass("Foo_Bar_Baz"))
}

func TestFindClass_ExplicitBeatsPrefix(t *testing.T) {
	r := newResolver(Environment{})
	r.RegisterPrefix(`My\`, "/src")
	r.RegisterClass(`My\Class`, "/custom/path.php")

	assert.Equal(t, []string{"/custom/path.php"}, r.FindClass(`My\Class`))
	assert.Equal(t, []string{"/custom/path.php"}, r.FindClass(`\My\Class\`))
	assert.Equal(t, []string{"/src/My/Other.php"}, r.FindClass(`My\Other`))
}

func TestFindClass_ExplicitBeatsConventionAndGlobal(t *testing.T) {
	r := newResolver(Environment{
		ClassPath: map[string]string{"OC_Util": "lib/util.php"},
	})
	r.RegisterClass("OC_Util", "/override/util.php")

	res := r.Explain("OC_Util")
	assert.Equal(t, classid.KindExplicit, res.Kind)
	assert.Equal(t, []string{"/override/util.php"}, res.Candidates)
}

func TestFindClass_RegisterOverwrites(t *testing.T) {
	r := newResolver(Environment{})
	r.RegisterClass("Foo", "/a.php")
	r.RegisterClass("Foo", "/b.php")

	assert.Equal(t, []string{"/b.php"}, r.FindClass("Foo"))
	assert.Equal(t, map[string]string{"Foo": "/b.php"}, r.Classes())
}

func TestFindClass_GlobalClassPath(t *testing.T) {
	env := Environment{
		ClassPath: map[string]string{
			"OC_Search_Provider_File": "search/lib/provider/file.php",
			"OCA_Legacy":              "apps/legacy/lib/legacy.php",
			`OC\Files\View`:           "custom/view.php",
		},
	}

	t.Run("plain", func(t *testing.T) {
		r := newResolver(env)
		res := r.Explain("OC_Search_Provider_File")
		assert.Equal(t, classid.KindGlobalOverride, res.Kind)
		assert.Equal(t, []string{"search/lib/provider/file.php"}, res.Candidates)
		assert.Empty(t, res.Diagnostics.Infos)
	})

	t.Run("apps compatibility duplicate", func(t *testing.T) {
		var buf bytes.Buffer

		r := NewResolver(env, Config{UseGlobalClassPath: true, Logger: log.NewLogfmtLogger(&buf)})
		res := r.Explain("OCA_Legacy")

		assert.Equal(t, []string{"apps/legacy/lib/legacy.php", "legacy/lib/legacy.php"}, res.Candidates)
		require.Len(t, res.Diagnostics.Infos, 1)
		assert.Equal(t, diagnostic.CodeDeprecatedAppsPath, res.Diagnostics.Infos[0].Code)
		assert.Contains(t, buf.String(), "level=debug")
		assert.Contains(t, buf.String(), "class=OCA_Legacy")
	})

	t.Run("global beats convention", func(t *testing.T) {
		r := newResolver(env)
		assert.Equal(t, []string{"custom/view.php"}, r.FindClass(`OC\Files\View`))
	})

	t.Run("disabled falls through to convention", func(t *testing.T) {
		r := newResolver(env)
		r.DisableGlobalClassPath()
		assert.False(t, r.GlobalClassPathEnabled())
		assert.Equal(t, []string{"files/view.php"}, r.FindClass(`OC\Files\View`))

		r.EnableGlobalClassPath()
		assert.True(t, r.GlobalClassPathEnabled())
		assert.Equal(t, []string{"custom/view.php"}, r.FindClass(`OC\Files\View`))
	})

	t.Run("disabled unmatched", func(t *testing.T) {
		r := newResolver(env)
		r.DisableGlobalClassPath()
		assert.Empty(t, r.FindClass("OCA_Legacy"))
	})
}

func TestFindClass_Conventions(t *testing.T) {
	r := newResolver(Environment{})
	// User prefixes must never be consulted for convention classes.
	r.RegisterPrefix("OC", "/wrong")
	r.RegisterPrefix("Test", "/wrong")

	tests := []struct {
		class    string
		kind     classid.Kind
		expected []string
	}{
		{"OC_Files_View", classid.KindLegacyUnderscore, []string{"legacy/files/view.php", "files/view.php"}},
		{`\OC\Files\View`, classid.KindStructuralNamespace, []string{"files/view.php"}},
		{`OCP\Share\IManager`, classid.KindStructuralNamespace, []string{"public/share/imanager.php"}},
		{"Test_Util", classid.KindTestNamespace, []string{"tests/lib/util.php"}},
		{`Test\Files\View`, classid.KindTestNamespace, []string{"tests/lib/files/view.php"}},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			res := r.Explain(tt.class)
			assert.Equal(t, tt.kind, res.Kind)
			assert.Equal(t, tt.expected, res.Candidates)
		})
	}
}

func TestFindClass_AppNamespace(t *testing.T) {
	prober := appsFs(t, "/srv/apps/files", "/srv/apps2/news", "/srv/apps2/files")
	env := Environment{
		AppRoots: []AppRoot{
			{Path: "/srv/apps", URL: "/apps"},
			{Path: "/srv/apps2", URL: "/apps2", Writable: true},
		},
		Prober: prober,
	}
	r := newResolver(env)

	t.Run("app in both roots", func(t *testing.T) {
		res := r.Explain(`OCA\Files\Controller\View`)
		assert.Equal(t, classid.KindAppNamespace, res.Kind)
		assert.Equal(t, []string{
			"/srv/apps/files/controller/view.php",
			"/srv/apps/lib/files/controller/view.php",
			"/srv/apps2/files/controller/view.php",
			"/srv/apps2/lib/files/controller/view.php",
		}, res.Candidates)
		assert.Empty(t, res.Diagnostics.Warnings)
	})

	t.Run("app in second root only", func(t *testing.T) {
		res := r.Explain(`OCA\News\Feed`)
		assert.Equal(t, []string{
			"/srv/apps2/news/feed.php",
			"/srv/apps2/lib/news/feed.php",
		}, res.Candidates)
		require.Len(t, res.Diagnostics.Warnings, 1)
		assert.Equal(t, diagnostic.CodeAppDirMissing, res.Diagnostics.Warnings[0].Code)
		assert.Equal(t, "/srv/apps/news", res.Diagnostics.Warnings[0].Path)
	})

	t.Run("app missing everywhere", func(t *testing.T) {
		r.RegisterPrefix("OCA", "/wrong")
		res := r.Explain(`OCA\Gallery\Album`)
		assert.Equal(t, classid.KindAppNamespace, res.Kind)
		assert.Empty(t, res.Candidates)
	})

	t.Run("nil prober", func(t *testing.T) {
		r := newResolver(Environment{AppRoots: env.AppRoots})
		assert.Empty(t, r.FindClass(`OCA\Files\App`))
	})
}

func TestFindClass_Prefixes(t *testing.T) {
	r := newResolver(Environment{})
	r.RegisterPrefix("Sabre", "/3rdparty/sabre")
	r.RegisterPrefix(`Sabre\DAV`, "/3rdparty/dav")
	r.RegisterPrefix("Symfony", "/3rdparty/symfony")

	t.Run("every matching prefix in order", func(t *testing.T) {
		res := r.Explain(`Sabre\DAV\Server`)
		assert.Equal(t, classid.KindUserPrefix, res.Kind)
		assert.Equal(t, []string{
			"/3rdparty/sabre/Sabre/DAV/Server.php",
			"/3rdparty/dav/Sabre/DAV/Server.php",
		}, res.Candidates)
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		r.RegisterPrefix("Sabre", "/vendor/sabre")
		assert.Equal(t, []Prefix{
			{Prefix: "Sabre", Dir: "/vendor/sabre"},
			{Prefix: `Sabre\DAV`, Dir: "/3rdparty/dav"},
			{Prefix: "Symfony", Dir: "/3rdparty/symfony"},
		}, r.Prefixes())
		assert.Equal(t, []string{
			"/vendor/sabre/Sabre/DAV/Server.php",
			"/3rdparty/dav/Sabre/DAV/Server.php",
		}, r.FindClass(`Sabre\DAV\Server`))
	})

	t.Run("underscores become separators", func(t *testing.T) {
		assert.Equal(t, []string{"/3rdparty/symfony/Symfony/Component/Routing.php"},
			r.FindClass("Symfony_Component_Routing"))
	})
}

func TestFindClass_Unmatched(t *testing.T) {
	r := newResolver(Environment{ClassPath: map[string]string{"Other": "other.php"}})
	r.RegisterPrefix("Foo_", "/src")

	for _, class := range []string{"Bar_Baz", `Random\Thing`, "", `\`} {
		t.Run(class, func(t *testing.T) {
			res := r.Explain(class)
			assert.Empty(t, res.Candidates)
			assert.Equal(t, classid.KindUnmatched, res.Kind)
			require.Len(t, res.Diagnostics.Warnings, 1)
			assert.Equal(t, diagnostic.CodeUnmatchedClass, res.Diagnostics.Warnings[0].Code)
		})
	}
}

func TestNewResolver_NilLogger(t *testing.T) {
	r := NewResolver(Environment{ClassPath: map[string]string{"X": "apps/x.php"}}, Config{UseGlobalClassPath: true})
	assert.Equal(t, []string{"apps/x.php", "x.php"}, r.FindClass("X"))
}

func TestExplain_UnmatchedSuggestions(t *testing.T) {
	r := newResolver(Environment{ClassPath: map[string]string{`Doctrine\DBAL\Connection`: "3rdparty/dbal/connection.php"}})
	r.RegisterClass(`My\Class`, "/custom/path.php")

	res := r.Explain(`My\Clas`)
	require.Len(t, res.Diagnostics.Warnings, 1)
	assert.Equal(t, []string{`My\Class`}, res.Diagnostics.Warnings[0].Suggestions)

	res = r.Explain(`Doctrine\DBAL\Conection`)
	assert.Equal(t, []string{`Doctrine\DBAL\Connection`}, res.Diagnostics.Warnings[0].Suggestions)

	r.DisableGlobalClassPath()
	res = r.Explain(`Doctrine\DBAL\Conection`)
	assert.Empty(t, res.Diagnostics.Warnings[0].Suggestions)
}
