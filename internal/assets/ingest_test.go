package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"avatar.glb", false},
		{"scene.gltf", false},
		{"AVATAR.GLB", false},
		{"texture.png", true},
		{"model.obj", true},
		{"noextension", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			err := ValidateFilename(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFilename(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("error = %v, want ErrUnsupportedFormat", err)
			}
		})
	}
}

func TestStore(t *testing.T) {
	dir := t.TempDir()
	ing, err := NewIngestor(dir, "/uploads")
	if err != nil {
		t.Fatalf("NewIngestor failed: %v", err)
	}

	url, err := ing.Store("hat.glb", strings.NewReader("glTF-binary-bytes"))
	if err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") || !strings.HasSuffix(url, ".glb") {
		t.Errorf("url = %s, want /uploads/<uuid>.glb", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(url)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "glTF-binary-bytes" {
		t.Errorf("stored content = %q", data)
	}

	if _, err := ing.Store("virus.exe", strings.NewReader("nope")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
