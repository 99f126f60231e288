// Package fsutil reads Markdown sources from disk for mdblocklint and maps
// file system failures onto sentinel errors.
package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrTooLarge indicates the file exceeds MaxFileSize.
	ErrTooLarge = errors.New("file too large")
)

// MaxFileSize bounds the size of a single Markdown source.
const MaxFileSize = 16 << 20

//nolint:gochecknoglobals // Read-only byte order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the path the file was read from.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes, including any byte order mark.
	Size int64

	// BOM is set when a UTF-8 byte order mark was stripped from the content.
	BOM bool

	// CRLF is set when the first line ending in the file is CRLF.
	CRLF bool
}

// ReadFile reads a file and returns its content along with metadata.
// A leading UTF-8 byte order mark is removed so that line 1 is classified
// like any other line.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	if stat.Size() > MaxFileSize {
		return nil, nil, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, path, stat.Size(), MaxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
	}

	if bytes.HasPrefix(content, utf8BOM) {
		content = content[len(utf8BOM):]
		info.BOM = true
	}

	if idx := bytes.IndexByte(content, '\n'); idx > 0 && content[idx-1] == '\r' {
		info.CRLF = true
	}

	return content, info, nil
}

func classify(path, op string, err error) error {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
