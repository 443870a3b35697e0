package layouts

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, n.Render(&sb))

	return sb.String()
}

func TestIsPartial(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsPartial(r))

	r.Header.Set("Hx-Request", "true")
	assert.True(t, IsPartial(r))

	r.Header.Set("Hx-Boosted", "true")
	assert.False(t, IsPartial(r))
}

func TestPage_PartialReturnsContentOnly(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/settings", nil)
	r.Header.Set("Hx-Request", "true")

	out := renderString(t, Page(r, Config{Title: "Unweave"},
		html.Header(html.ID("nav")),
		html.Div(html.ID("body"), g.Text("hello")),
	))

	assert.Equal(t, `<div id="body">hello</div>`, out)
}

func TestPage_FullDocument(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	out := renderString(t, Page(r, Config{Title: "Unweave"},
		html.Header(html.ID("nav")),
		html.Div(html.ID("body"), g.Text("hello")),
	))

	assert.Contains(t, out, `id="nav"`)
	assert.Contains(t, out, `id="content"`)
	assert.Contains(t, out, HTMXSource)
	assert.Contains(t, out, "Unweave")
	assert.Less(t, strings.Index(out, `id="nav"`), strings.Index(out, `id="body"`))
}
