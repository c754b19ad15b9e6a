// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package service

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/linuxfoundation/lfx-v2-family-service/pkg/constants"
	lfxerrors "github.com/linuxfoundation/lfx-v2-family-service/pkg/errors"
)

// sitemapRenderer escapes raw HTML in the generated markdown
var sitemapRenderer = goldmark.New()

// SitemapHandler serves an HTML index of the mounted endpoints
func SitemapHandler(endpoints []Endpoint) http.HandlerFunc {
	page, err := renderSitemap(endpoints)
	if err != nil {
		slog.Error("failed to render sitemap", "error", err)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if page == nil {
			encodeError(r.Context(), w, lfxerrors.NewUnexpected("sitemap unavailable", err))
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}

// renderSitemap lists parameterless GET routes as links and the rest as plain text
func renderSitemap(endpoints []Endpoint) ([]byte, error) {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\nAvailable endpoints:\n\n", constants.ServiceName)

	for _, e := range endpoints {
		if e.Method == http.MethodGet && !strings.Contains(e.Pattern, "{") {
			fmt.Fprintf(&md, "- `%s` [%s](%s)\n", e.Method, e.Pattern, e.Pattern)
			continue
		}
		fmt.Fprintf(&md, "- `%s` `%s`\n", e.Method, e.Pattern)
	}

	var page bytes.Buffer
	if err := sitemapRenderer.Convert([]byte(md.String()), &page); err != nil {
		return nil, err
	}
	return page.Bytes(), nil
}
