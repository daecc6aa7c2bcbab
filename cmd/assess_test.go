package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/skillcheck/skillcheck/internal/catalog"
	"github.com/skillcheck/skillcheck/internal/media"
)

func newAnswerStorage(t *testing.T) *media.Storage {
	t.Helper()
	s, err := media.NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	return s
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseAnswerText(t *testing.T) {
	s := newAnswerStorage(t)

	ans, err := parseAnswer("Active listening builds trust.", s)
	if err != nil {
		t.Fatalf("parseAnswer: %v", err)
	}
	if ans.Type != catalog.ModalityText {
		t.Errorf("Type = %q, want Text", ans.Type)
	}
	if ans.Text != "Active listening builds trust." {
		t.Errorf("Text = %q", ans.Text)
	}
	if ans.MediaRef != "" {
		t.Errorf("MediaRef = %q, want empty", ans.MediaRef)
	}
}

func TestParseAnswerAudioFile(t *testing.T) {
	s := newAnswerStorage(t)
	path := writeTempFile(t, "reply.wav", "fake wav bytes")

	ans, err := parseAnswer("@"+path, s)
	if err != nil {
		t.Fatalf("parseAnswer: %v", err)
	}
	if ans.Type != catalog.ModalityAudio {
		t.Errorf("Type = %q, want Audio", ans.Type)
	}
	if !strings.HasPrefix(ans.MediaRef, "audio/") {
		t.Errorf("MediaRef = %q, want audio/ prefix", ans.MediaRef)
	}
	if ans.Text != "Audio answer submitted (file: reply.wav)" {
		t.Errorf("Text = %q", ans.Text)
	}
	if ans.audioRef() != ans.MediaRef || ans.imageRef() != "" {
		t.Errorf("ref routing wrong: audio %q image %q", ans.audioRef(), ans.imageRef())
	}

	if _, err := s.ReadBase64(ans.MediaRef); err != nil {
		t.Errorf("stored audio unreadable: %v", err)
	}
}

func TestParseAnswerImageFile(t *testing.T) {
	s := newAnswerStorage(t)
	path := writeTempFile(t, "sketch.png", "fake png bytes")

	ans, err := parseAnswer("@"+path, s)
	if err != nil {
		t.Fatalf("parseAnswer: %v", err)
	}
	if ans.Type != catalog.ModalityImage {
		t.Errorf("Type = %q, want Image", ans.Type)
	}
	if !strings.HasPrefix(ans.MediaRef, "images/") {
		t.Errorf("MediaRef = %q, want images/ prefix", ans.MediaRef)
	}
	if ans.Text != "Image answer submitted (file: sketch.png)" {
		t.Errorf("Text = %q", ans.Text)
	}
	if ans.imageRef() != ans.MediaRef || ans.audioRef() != "" {
		t.Errorf("ref routing wrong: audio %q image %q", ans.audioRef(), ans.imageRef())
	}
}

func TestParseAnswerMissingFile(t *testing.T) {
	s := newAnswerStorage(t)

	if _, err := parseAnswer("@/no/such/file.wav", s); err == nil {
		t.Error("expected error for missing answer file")
	}
}

func TestParseAnswerAtPathWithSpaces(t *testing.T) {
	s := newAnswerStorage(t)
	path := writeTempFile(t, "reply.mp3", "fake mp3 bytes")

	ans, err := parseAnswer("@  "+path, s)
	if err != nil {
		t.Fatalf("parseAnswer: %v", err)
	}
	if ans.Type != catalog.ModalityAudio {
		t.Errorf("Type = %q, want Audio", ans.Type)
	}
}
