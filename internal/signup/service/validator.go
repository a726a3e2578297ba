package service

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
)

const (
	// MaxFileSize is the largest accepted upload in bytes.
	MaxFileSize = 1_000_000

	// MaxAttachments bounds the uploadedFiles field.
	MaxAttachments = 10

	FieldName          = "name"
	FieldEmail         = "email"
	FieldProfilePic    = "profilePic"
	FieldUploadedFiles = "uploadedFiles"
)

const (
	reasonFileType = "Only images and PDF files are allowed"
	reasonTooLarge = "File too large"
)

var (
	allowedExtensions = map[string]struct{}{
		"jpeg": {},
		"jpg":  {},
		"png":  {},
		"gif":  {},
		"pdf":  {},
	}

	// Declared content types only need to mention an allowed type,
	// e.g. "image/png" or "application/pdf".
	allowedContentType = regexp.MustCompile(`jpeg|jpg|png|gif|pdf`)
)

// RegisterRequest is the typed input of a registration.
type RegisterRequest struct {
	Name          string
	Email         string
	ProfilePic    *domain.Upload
	UploadedFiles []domain.Upload
}

// ValidateUpload accepts a file only when both its extension and its declared
// content type are on the allow-list and it is no larger than MaxFileSize.
func ValidateUpload(u domain.Upload) error {
	if reason := checkUpload(u); reason != "" {
		return &ValidationError{Filename: u.Filename, Reason: reason}
	}
	return nil
}

// ValidateRegistration checks the whole request: required fields, the
// attachment bound and every file. It has no side effects.
func ValidateRegistration(req RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return &ValidationError{Field: FieldName, Reason: "name is required"}
	}
	if strings.TrimSpace(req.Email) == "" {
		return &ValidationError{Field: FieldEmail, Reason: "email is required"}
	}
	if req.ProfilePic == nil {
		return &ValidationError{Field: FieldProfilePic, Reason: "profile picture is required"}
	}
	if len(req.UploadedFiles) > MaxAttachments {
		return &ValidationError{Field: FieldUploadedFiles, Reason: "Too many files"}
	}

	if reason := checkUpload(*req.ProfilePic); reason != "" {
		return &ValidationError{Field: FieldProfilePic, Filename: req.ProfilePic.Filename, Reason: reason}
	}
	for _, u := range req.UploadedFiles {
		if reason := checkUpload(u); reason != "" {
			return &ValidationError{Field: FieldUploadedFiles, Filename: u.Filename, Reason: reason}
		}
	}

	return nil
}

func checkUpload(u domain.Upload) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(u.Filename)), ".")
	if _, ok := allowedExtensions[ext]; !ok {
		return reasonFileType
	}
	if !allowedContentType.MatchString(strings.ToLower(u.ContentType)) {
		return reasonFileType
	}
	if u.Size > MaxFileSize {
		return reasonTooLarge
	}
	return ""
}
