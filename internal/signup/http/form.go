package http

import (
	"net/http"

	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

// FormHandler godoc
//
//	@Summary		Registration form
//	@Description	Renders the registration form. Always succeeds.
//	@Tags			Registration
//	@Produce		html
//	@Success		200	{string}	string	"HTML form"
//	@Router			/ [get]
func FormHandler() http.HandlerFunc {
	view := formView{
		Accept:         ".jpeg,.jpg,.png,.gif,.pdf",
		MaxAttachments: service.MaxAttachments,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := render(w, "index.html", view); err != nil {
			slogx.FromContext(r.Context()).Error("failed to render form", "error", err)
			writeRenderError(w, err)
		}
	}
}
