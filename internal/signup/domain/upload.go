package domain

import "io"

// Upload is a single submitted file as received from the client, before it
// is written anywhere.
type Upload struct {
	Filename    string // Original name supplied by the client
	ContentType string // Declared content type of the part
	Size        int64

	// Open returns a fresh reader over the uploaded bytes.
	Open func() (io.ReadCloser, error)
}
