package signupsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
)

// Register submits the registration form. It succeeds only when the service
// redirects to the user listing.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) error {
	body, contentType, err := encodeRegistration(req)
	if err != nil {
		return err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/register", body, map[string]string{
		"Content-Type": contentType,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusFound {
		return parseErrorResponse(resp, bodyBytes)
	}
	if loc := resp.Header.Get("Location"); loc != "/list" {
		return fmt.Errorf("unexpected redirect to %q", loc)
	}

	return nil
}

// ListUsers returns every registered user.
func (c *SDKClient) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/users", nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListUsersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return out.Users, nil
}

// Download fetches a stored file through the download route.
func (c *SDKClient) Download(ctx context.Context, name string) ([]byte, error) {
	return c.fetch(ctx, "/download/"+url.PathEscape(name))
}

// GetStatic fetches a stored file through the static route.
func (c *SDKClient) GetStatic(ctx context.Context, name string) ([]byte, error) {
	return c.fetch(ctx, "/"+url.PathEscape(name))
}

func (c *SDKClient) fetch(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorResponse(resp, data)
	}

	return data, nil
}

func encodeRegistration(req RegisterRequest) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("name", req.Name); err != nil {
		return nil, "", err
	}
	if err := mw.WriteField("email", req.Email); err != nil {
		return nil, "", err
	}

	if !req.SkipProfilePic {
		if err := writeFile(mw, "profilePic", req.ProfilePic); err != nil {
			return nil, "", err
		}
	}
	for _, f := range req.UploadedFiles {
		if err := writeFile(mw, "uploadedFiles", f); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}

	return &buf, mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// writeFile adds a file part. multipart.Writer.CreateFormFile always declares
// application/octet-stream, the service checks the declared type.
func writeFile(mw *multipart.Writer, field string, f File) error {
	contentType := f.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(f.Name)))
	h.Set("Content-Type", contentType)

	part, err := mw.CreatePart(h)
	if err != nil {
		return err
	}
	_, err = part.Write(f.Data)
	return err
}
