package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doForm(t *testing.T, s *Server, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestWebRootRedirects(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/web/", rec.Header().Get("Location"))
}

func TestWebIndexPage(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/web/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, "advcalc")
	assert.Contains(t, html, "htmx")
	assert.Contains(t, html, `id="entry"`)
	assert.Contains(t, html, `id="history-panel"`)
	assert.Contains(t, html, `id="modebar"`)
	// keypad exposes the full function set
	for _, key := range []string{"sin", "cos", "tan", "cbrt(", "abs", "floor", "ceil", "Frac/Dec", "Deg/Rad"} {
		assert.Contains(t, html, key)
	}
}

func TestWebStaticAssets(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/web/static/styles.css", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), ".keypad")

	rec = doJSON(t, s, http.MethodGet, "/web/static/app.js", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "javascript")
	assert.Contains(t, rec.Body.String(), "insertText")

	rec = doJSON(t, s, http.MethodGet, "/web/static/missing.css", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebDocsPage(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/web/docs", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, "API Documentation")
	assert.Contains(t, html, "http://127.0.0.1:8421")
	for _, endpoint := range []string{"/health", "/version", "/evaluate", "/modes", "/history"} {
		assert.Contains(t, html, endpoint)
	}
}

func TestWebEvaluatePartial(t *testing.T) {
	s, session := newTestServer(t)

	rec := doForm(t, s, http.MethodPost, "/web/evaluate", url.Values{"expression": {"5!+3"}})
	require.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, `id="calc-panel"`)
	assert.Contains(t, html, "123")
	// updated history arrives as an out-of-band swap in the same response
	assert.Contains(t, html, `hx-swap-oob="true"`)
	assert.Contains(t, html, "5!+3")

	require.Len(t, session.History(), 1)
}

func TestWebEvaluatePartial_Error(t *testing.T) {
	s, session := newTestServer(t)

	rec := doForm(t, s, http.MethodPost, "/web/evaluate", url.Values{"expression": {"|5"}})
	require.Equal(t, http.StatusOK, rec.Code, "errors render in the answer box, not as HTTP failures")

	html := rec.Body.String()
	assert.Contains(t, html, "answer-error")
	assert.Contains(t, html, "unbalanced")
	assert.Empty(t, session.History())
}

func TestWebEvaluatePartial_EmptyExpression(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doForm(t, s, http.MethodPost, "/web/evaluate", url.Values{"expression": {"   "}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enter an expression")
}

func TestWebActionPartial(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doForm(t, s, http.MethodPost, "/web/actions/square", url.Values{"expression": {"12"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="144"`)
}

func TestWebActionPartial_ErrorKeepsEntry(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doForm(t, s, http.MethodPost, "/web/actions/reciprocal", url.Values{"expression": {"0"}})
	require.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, `value="0"`, "entry value survives a failed action")
	assert.Contains(t, html, "answer-error")
	assert.Contains(t, html, "division by zero")
}

func TestWebModeTogglePartial(t *testing.T) {
	s, session := newTestServer(t)

	rec := doForm(t, s, http.MethodPost, "/web/modes/fraction", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fraction")
	assert.True(t, session.Modes().Fraction)
}

func TestWebHistoryPartials(t *testing.T) {
	s, session := newTestServer(t)

	_, err := session.Evaluate("1+1")
	require.NoError(t, err)
	res, err := session.Evaluate("2+2")
	require.NoError(t, err)

	rec := doJSON(t, s, http.MethodDelete, "/web/history/"+res.Entry.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	html := rec.Body.String()
	assert.Contains(t, html, "1+1")
	assert.NotContains(t, html, "2+2")

	// deleting an already-deleted entry re-renders the current list
	rec = doJSON(t, s, http.MethodDelete, "/web/history/"+res.Entry.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/web/history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No calculations yet")
	assert.Empty(t, session.History())
}
