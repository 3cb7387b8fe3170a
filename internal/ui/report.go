package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const reportStyle = `body{font-family:system-ui,sans-serif;max-width:48rem;margin:2rem auto;padding:0 1rem;color:#1e1e2e}` +
	`table{border-collapse:collapse}th,td{border:1px solid #ccd0da;padding:.25rem .75rem}` +
	`li:has(input[type=checkbox]){list-style:none}`

// ReportPage wraps a rendered review body in a standalone HTML document.
// body must already be trusted HTML; title is escaped.
func ReportPage(title string, body []byte) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := "<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\"/>" +
			"<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>" +
			"<title>" + templ.EscapeString(title) + "</title>" +
			"<style>" + reportStyle + "</style></head><body>\n"
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}

		if err := templ.Raw(string(body)).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}
