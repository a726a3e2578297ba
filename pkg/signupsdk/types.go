package signupsdk

import "time"

// File is a file to upload as one multipart part.
type File struct {
	Name        string
	ContentType string // Defaults to application/octet-stream
	Data        []byte
}

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Name          string
	Email         string
	ProfilePic    File
	UploadedFiles []File

	// SkipProfilePic leaves the profilePic part out entirely.
	SkipProfilePic bool
}

// User is a registered user as returned by GET /api/v1/users.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ProfilePic    string    `json:"profilePic"`
	UploadedFiles []string  `json:"uploadedFiles"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListUsersResponse wraps the user listing.
type ListUsersResponse struct {
	Users []User `json:"users"`
}

// ErrorResponse is the body of a failed JSON request.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of the backing stores.
type HealthChecks struct {
	// Database indicates the user record store status
	Database string `json:"database"`

	// FileStore indicates the file store status
	FileStore string `json:"file_store"`
}
