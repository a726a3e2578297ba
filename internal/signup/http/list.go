package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/pkg/httpx"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

type ListHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		List registered users
//	@Description	Renders every registered user with links to their stored files.
//	@Tags			Registration
//	@Produce		html
//	@Success		200	{string}	string	"HTML listing"
//	@Failure		500	{string}	string	"Error occurred: <reason>"
//	@Router			/list [get]
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := slogx.FromContext(r.Context())

	users, err := h.RegistrationService.ListUsers(r.Context())
	if err != nil {
		log.Error("failed to list users", slog.Any("error", err))
		httpx.WriteText(w, http.StatusInternalServerError, "Error occurred: "+err.Error())
		return
	}

	if err := render(w, "list.html", listView{Users: users}); err != nil {
		log.Error("failed to render user list", slog.Any("error", err))
		writeRenderError(w, err)
	}
}
