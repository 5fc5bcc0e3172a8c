// Package assets handles ingestion of user-uploaded 3D model files.
package assets

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedFormat is returned for uploads outside the model-file
// allowlist. File contents are not inspected beyond the extension; the
// render surface is responsible for coping with broken models.
var ErrUnsupportedFormat = errors.New("unsupported file format: only .glb and .gltf models are accepted")

var allowedExtensions = map[string]bool{
	".glb":  true,
	".gltf": true,
}

// Ingestor writes uploaded model files into the upload directory and hands
// back the URL they will be served under.
type Ingestor struct {
	uploadDir string
	publicDir string
}

// NewIngestor creates an Ingestor that stores files under uploadDir and
// maps them to URLs under publicDir (e.g. "/uploads").
func NewIngestor(uploadDir, publicDir string) (*Ingestor, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Ingestor{uploadDir: uploadDir, publicDir: publicDir}, nil
}

// ValidateFilename checks the upload against the extension allowlist.
func ValidateFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedFormat
	}
	return nil
}

// Store writes the uploaded model under a fresh UUID name, keeping the
// original extension, and returns the public URL.
func (i *Ingestor) Store(filename string, content io.Reader) (string, error) {
	if err := ValidateFilename(filename); err != nil {
		return "", err
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(i.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return path.Join(i.publicDir, name), nil
}

// Dir returns the directory uploads are stored in, for static serving.
func (i *Ingestor) Dir() string {
	return i.uploadDir
}
