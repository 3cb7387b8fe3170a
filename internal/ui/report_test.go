package ui

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportPageEscapesTitle(t *testing.T) {
	var buf bytes.Buffer

	err := ReportPage("Tom & Jerry <study>", []byte("<h1>Review</h1>")).Render(context.Background(), &buf)

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "<title>Tom &amp; Jerry &lt;study&gt;</title>")
	assert.Contains(t, out, "<body>\n<h1>Review</h1></body></html>")
}

func TestRenderWritesComponent(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)

	Render(rec, req, ReportPage("Review", []byte("<p>ok</p>")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>ok</p>")
}
