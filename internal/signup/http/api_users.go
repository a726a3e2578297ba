package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/pkg/httpx"
	"github.com/aussiebroadwan/signup/pkg/signupsdk"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

type UsersAPIHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		List registered users (JSON)
//	@Description	Returns every registered user in registration order.
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	signupsdk.ListUsersResponse	"users"
//	@Failure		500	{object}	signupsdk.ErrorResponse		"error, error_description"
//	@Router			/api/v1/users [get]
func (h *UsersAPIHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	users, err := h.RegistrationService.ListUsers(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to list users", slog.Any("error", err))
		httpx.WriteJSON(w, http.StatusInternalServerError, signupsdk.ErrorResponse{
			Error:            signupsdk.ErrorCodeServerError,
			ErrorDescription: err.Error(),
		})
		return
	}

	resp := signupsdk.ListUsersResponse{Users: make([]signupsdk.User, len(users))}
	for i, u := range users {
		resp.Users[i] = toAPIUser(u)
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

func toAPIUser(u domain.User) signupsdk.User {
	files := u.Attachments
	if files == nil {
		files = []string{}
	}
	return signupsdk.User{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		ProfilePic:    u.ProfilePicture,
		UploadedFiles: files,
		CreatedAt:     u.CreatedAt,
	}
}
