package http

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/aussiebroadwan/signup/internal/signup/filestore"
	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/pkg/httpx"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

type DownloadHandler struct {
	FileService *service.FileService
}

// ServeHTTP godoc
//
//	@Summary		Download a stored file
//	@Description	Streams a stored file as an attachment. Any generated file name can be downloaded,
//	@Description	there is no check that ties the caller to the user the file belongs to.
//	@Description	A missing file is reported as a server error.
//	@Tags			Files
//	@Produce		octet-stream
//	@Param			filename	path		string	true	"Generated file name"
//	@Success		200			{file}		file	"File content"
//	@Failure		500			{string}	string	"Error downloading file: <reason>"
//	@Router			/download/{filename} [get]
func (h *DownloadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())
	name := r.PathValue("filename")

	f, err := h.FileService.Open(r.Context(), name)
	if err != nil {
		if !errors.Is(err, service.ErrFileNotFound) {
			log.Error("failed to open file", slog.String("file", name), slog.Any("error", err))
		}
		httpx.WriteText(w, http.StatusInternalServerError, "Error downloading file: "+err.Error())
		return
	}
	defer f.Content.Close()

	body := bufio.NewReaderSize(f.Content, 512)
	w.Header().Set("Content-Type", contentTypeOf(f.Info, body))
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": name,
	}))
	if f.Info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(f.Info.Size, 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, body); err != nil {
		log.Warn("download interrupted", slog.String("file", name), slog.Any("error", err))
	}
}

// contentTypeOf infers the type from the extension, then from the type the
// backend recorded, then from the first bytes.
func contentTypeOf(info filestore.FileInfo, body *bufio.Reader) string {
	if ct := mime.TypeByExtension(filepath.Ext(info.Name)); ct != "" {
		return ct
	}
	if info.ContentType != "" {
		return info.ContentType
	}
	head, _ := body.Peek(512)
	return http.DetectContentType(head)
}
