package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/pkg/httpx"
)

//go:embed templates/*.html
var templatesFS embed.FS

var views = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

type formView struct {
	Accept         string
	MaxAttachments int
}

type listView struct {
	Users []domain.User
}

// render executes the named view into a buffer first so a template error
// can still be answered with a 500.
func render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := views.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
	return nil
}

func writeRenderError(w http.ResponseWriter, err error) {
	httpx.WriteText(w, http.StatusInternalServerError, "Error occurred: "+err.Error())
}
