// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/MKhiriev/mcp-manager/internal/app"
	"github.com/MKhiriev/mcp-manager/internal/utils"
	"github.com/MKhiriev/mcp-manager/models"
)

const indexPage = "index.html"

// serveStatic serves files of the web UI. Paths that do not name a file are
// answered with index.html so the single-page UI can handle its own routes.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		notFound(w, r)
		return
	}

	if h.staticDir == "" {
		notFound(w, r)
		return
	}

	// path.Clean on a rooted path drops every ".." segment
	name := filepath.Join(h.staticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
	if serveFile(w, r, name) {
		return
	}
	if serveFile(w, r, filepath.Join(h.staticDir, indexPage)) {
		return
	}

	notFound(w, r)
}

// serveFile writes the regular file at name and reports whether it did.
func serveFile(w http.ResponseWriter, r *http.Request, name string) bool {
	f, err := os.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil || stat.IsDir() {
		return false
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), f)
	return true
}

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgNotFound}, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgMethodNotAllowed}, http.StatusMethodNotAllowed)
}
