package archive

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestDirSink_WriteFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink := NewDirSink(fs, "vault")

	err := sink.WriteFile("entries/2024-01-15 Morning thoughts.md", strings.NewReader("---\nuuid: X\n---\n\nHello\n"))
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := sink.WriteFile("attachments/f00dfeed.jpeg", strings.NewReader("jpeg bytes")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	entry, err := afero.ReadFile(fs, filepath.Join("vault", "entries", "2024-01-15 Morning thoughts.md"))
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if !strings.Contains(string(entry), "Hello") {
		t.Errorf("entry content = %q, want to contain %q", entry, "Hello")
	}

	media, err := afero.ReadFile(fs, filepath.Join("vault", "attachments", "f00dfeed.jpeg"))
	if err != nil {
		t.Fatalf("reading media: %v", err)
	}
	if string(media) != "jpeg bytes" {
		t.Errorf("media content = %q, want %q", media, "jpeg bytes")
	}
}

func TestDirSink_NoTempLeftovers(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink := NewDirSink(fs, "vault")

	if err := sink.WriteFile("entries/note.md", strings.NewReader("body")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	infos, err := afero.ReadDir(fs, filepath.Join("vault", "entries"))
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	for _, info := range infos {
		if strings.HasPrefix(info.Name(), ".driftwood-") {
			t.Errorf("temp file left behind: %s", info.Name())
		}
	}
	if len(infos) != 1 {
		t.Errorf("len(entries dir) = %d, want 1", len(infos))
	}
}

func TestDirSink_OverwriteReplaces(t *testing.T) {
	fs := afero.NewMemMapFs()
	sink := NewDirSink(fs, "vault")

	if err := sink.WriteFile("entries/note.md", strings.NewReader("first")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := sink.WriteFile("entries/note.md", strings.NewReader("second")); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	content, err := afero.ReadFile(fs, filepath.Join("vault", "entries", "note.md"))
	if err != nil {
		t.Fatalf("reading entry: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("content = %q, want %q", content, "second")
	}
}
