package filestore

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/signup/pkg/idx"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Naming schemes accepted by NewNamer.
const (
	SchemeTimestamp = "timestamp" // <unixMillis>-<original>
	SchemeULID      = "ulid"      // <ulid>-<original>
	SchemeUUID      = "uuid"      // <uuidv4>-<original>
	SchemeBlake2b   = "blake2b"   // <first 16 bytes of blake2b-256, hex>-<original>
)

// Namer derives the generated name a file is stored under.
type Namer interface {
	Name(original string, content []byte) string
}

// NamerFunc adapts a function to the Namer interface.
type NamerFunc func(original string, content []byte) string

func (f NamerFunc) Name(original string, content []byte) string { return f(original, content) }

// NewNamer returns the Namer for scheme. An empty scheme selects ULID.
func NewNamer(scheme string) (Namer, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case SchemeTimestamp:
		return TimestampNamer(time.Now), nil
	case SchemeULID, "":
		return ULIDNamer(), nil
	case SchemeUUID:
		return UUIDNamer(), nil
	case SchemeBlake2b:
		return Blake2bNamer(), nil
	default:
		return nil, fmt.Errorf("filestore: unknown naming scheme %q", scheme)
	}
}

// TimestampNamer prefixes the original name with the current Unix time in
// milliseconds. Two uploads of the same name in the same millisecond collide.
func TimestampNamer(now func() time.Time) Namer {
	return NamerFunc(func(original string, _ []byte) string {
		return strconv.FormatInt(now().UnixMilli(), 10) + "-" + baseName(original)
	})
}

// ULIDNamer prefixes the original name with a monotonic ULID. The ULID still
// carries the millisecond timestamp, so names sort by upload time.
func ULIDNamer() Namer {
	return NamerFunc(func(original string, _ []byte) string {
		return idx.New().String() + "-" + baseName(original)
	})
}

func UUIDNamer() Namer {
	return NamerFunc(func(original string, _ []byte) string {
		return uuid.NewString() + "-" + baseName(original)
	})
}

// Blake2bNamer addresses files by content. Identical bytes uploaded under the
// same original name map to the same stored file.
func Blake2bNamer() Namer {
	return NamerFunc(func(original string, content []byte) string {
		sum := blake2b.Sum256(content)
		return hex.EncodeToString(sum[:16]) + "-" + baseName(original)
	})
}

// baseName strips any directory part a client sent along with the file name.
func baseName(original string) string {
	if i := strings.LastIndexAny(original, "/\\"); i >= 0 {
		original = original[i+1:]
	}
	original = strings.ReplaceAll(original, "\x00", "")
	if original == "" || original == "." || original == ".." {
		return "file"
	}
	return original
}
