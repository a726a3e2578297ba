package http

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/internal/signup/service"
	"github.com/aussiebroadwan/signup/pkg/httpx"
	"github.com/aussiebroadwan/signup/pkg/slogx"
)

const (
	// Parts above this are spooled to temporary files.
	multipartMemory = 8 << 20

	// Room for the text fields and multipart framing on top of the files.
	registerBodySlack = 1 << 20

	// MaxRegisterBody caps a registration request. One more file than the
	// form allows still fits, so an extra file is reported as such rather
	// than as an oversized body.
	MaxRegisterBody = (service.MaxAttachments+2)*service.MaxFileSize + registerBodySlack
)

// errUnexpectedField is returned for file parts the form does not define,
// including a second profile picture.
var errUnexpectedField = &service.ValidationError{Reason: "Unexpected field"}

type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP godoc
//
//	@Summary		Register a user
//	@Description	Accepts the registration form with one profile picture and up to ten additional files.
//	@Description	Every file must have a jpeg, jpg, png, gif or pdf extension, a matching declared content type
//	@Description	and be at most 1,000,000 bytes. Nothing is stored when any file is rejected.
//	@Tags			Registration
//	@Accept			mpfd
//	@Produce		plain
//	@Param			name			formData	string	true	"User name"
//	@Param			email			formData	string	true	"User email"
//	@Param			profilePic		formData	file	true	"Profile picture"
//	@Param			uploadedFiles	formData	file	false	"Additional files, up to 10"
//	@Success		302				{string}	string	"Redirect to /list"
//	@Failure		500				{string}	string	"Error occurred: <reason>"
//	@Router			/register [post]
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		log.Info("failed to parse registration form", slog.Any("error", err))
		writeRegisterError(w, err)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req, err := decodeRegistration(r.MultipartForm)
	if err != nil {
		log.Info("registration rejected", slog.Any("error", err))
		writeRegisterError(w, err)
		return
	}

	if _, err := h.RegistrationService.Register(ctx, req); err != nil {
		if !errors.Is(err, service.ErrValidation) {
			log.Error("registration failed", slog.Any("error", err))
		}
		writeRegisterError(w, err)
		return
	}

	http.Redirect(w, r, "/list", http.StatusFound)
}

func decodeRegistration(form *multipart.Form) (service.RegisterRequest, error) {
	req := service.RegisterRequest{
		Name:  firstValue(form.Value, service.FieldName),
		Email: firstValue(form.Value, service.FieldEmail),
	}

	for field, files := range form.File {
		switch field {
		case service.FieldProfilePic:
			if len(files) > 1 {
				return req, errUnexpectedField
			}
			u := toUpload(files[0])
			req.ProfilePic = &u
		case service.FieldUploadedFiles:
			for _, fh := range files {
				req.UploadedFiles = append(req.UploadedFiles, toUpload(fh))
			}
		default:
			return req, errUnexpectedField
		}
	}

	return req, nil
}

func toUpload(fh *multipart.FileHeader) domain.Upload {
	return domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

func firstValue(values map[string][]string, key string) string {
	if v := values[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func writeRegisterError(w http.ResponseWriter, err error) {
	httpx.WriteText(w, http.StatusInternalServerError, "Error occurred: "+err.Error())
}
