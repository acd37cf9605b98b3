package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PrefersJobDescriptionContainer(t *testing.T) {
	html := `<html><body>
		<nav>Site navigation</nav>
		<div class="job-description">
			<p>Senior Go Developer</p>
			<p>Requirements: Go, PostgreSQL, Kubernetes</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Developer")
	assert.Contains(t, text, "Requirements: Go, PostgreSQL, Kubernetes")
	assert.NotContains(t, text, "Site navigation")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain job text</p><script>var x = 1;</script></body></html>`

	text, err := ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Plain job text")
	assert.NotContains(t, text, "var x")
}

func TestJobText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><main><p>Backend engineer, Python and Azure</p></main></body></html>`))
	}))
	defer srv.Close()

	text, err := JobText(context.Background(), srv.URL, nil)

	require.NoError(t, err)
	assert.Contains(t, text, "Backend engineer, Python and Azure")
}

func TestJobText_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobText(context.Background(), srv.URL, nil)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobText_InvalidURL(t *testing.T) {
	_, err := JobText(context.Background(), "not-a-url", nil)

	assert.Error(t, err)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long enough content ", 50)))
}
