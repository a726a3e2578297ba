package http

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/pkg/httpx"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

// StaticHandler serves stored files directly under their generated name,
// the same way the upload directory is exposed next to the download route.
type StaticHandler struct {
	FileService *service.FileService
}

// ServeHTTP godoc
//
//	@Summary		Serve a stored file
//	@Description	Serves a stored file inline by its generated name.
//	@Tags			Files
//	@Produce		octet-stream
//	@Param			name	path		string	true	"Generated file name"
//	@Success		200		{file}		file	"File content"
//	@Failure		404		{string}	string	"Not found"
//	@Router			/{name} [get]
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())
	name := r.PathValue("name")

	f, err := h.FileService.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error("failed to open file", slog.String("file", name), slog.Any("error", err))
		httpx.WriteText(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	defer f.Content.Close()

	// Seekable content gets range and conditional request support
	if rs, ok := f.Content.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, f.Info.ModTime, rs)
		return
	}

	body := bufio.NewReaderSize(f.Content, 512)
	w.Header().Set("Content-Type", contentTypeOf(f.Info, body))
	if !f.Info.ModTime.IsZero() {
		w.Header().Set("Last-Modified", f.Info.ModTime.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		log.Warn("static transfer interrupted", slog.String("file", name), slog.Any("error", err))
	}
}
