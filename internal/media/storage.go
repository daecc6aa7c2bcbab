package media

import (
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	audioSubdir = "audio"
	imageSubdir = "images"
)

var (
	allowedImageExts = map[string]bool{"png": true, "jpg": true, "jpeg": true, "gif": true}
	allowedAudioExts = map[string]bool{"mp3": true, "wav": true, "ogg": true}
)

// Storage persists uploaded media files under a root uploads directory and
// hands out opaque relative references ("audio/...", "images/...") used to
// re-fetch the content later.
type Storage struct {
	root string
}

// NewStorage creates the uploads directory tree if needed.
func NewStorage(root string) (*Storage, error) {
	for _, dir := range []string{root, filepath.Join(root, audioSubdir), filepath.Join(root, imageSubdir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create uploads dir: %w", err)
		}
	}
	return &Storage{root: root}, nil
}

// ValidImageName reports whether the filename has an allowed image extension.
func ValidImageName(name string) bool {
	return allowedImageExts[extOf(name)]
}

// ValidAudioName reports whether the filename has an allowed audio extension.
func ValidAudioName(name string) bool {
	return allowedAudioExts[extOf(name)]
}

// SaveAudio stores audio content and returns its reference.
// An unrecognized extension defaults to wav.
func (s *Storage) SaveAudio(src io.Reader, ext string) (string, error) {
	if !allowedAudioExts[normalizeExt(ext)] {
		ext = "wav"
	}
	return s.save(src, audioSubdir, normalizeExt(ext))
}

// SaveImage stores image content and returns its reference.
// An unrecognized extension defaults to png.
func (s *Storage) SaveImage(src io.Reader, ext string) (string, error) {
	if !allowedImageExts[normalizeExt(ext)] {
		ext = "png"
	}
	return s.save(src, imageSubdir, normalizeExt(ext))
}

// SaveFile copies an existing file on disk into storage, routing by its
// extension: audio extensions go under audio/, everything else under images/.
func (s *Storage) SaveFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	if ValidAudioName(path) {
		return s.SaveAudio(f, extOf(path))
	}
	return s.SaveImage(f, extOf(path))
}

func (s *Storage) save(src io.Reader, subdir, ext string) (string, error) {
	name := fmt.Sprintf("%s_%s.%s", time.Now().Format("20060102_150405"), hexID(), ext)
	ref := filepath.ToSlash(filepath.Join(subdir, name))

	dst, err := os.Create(filepath.Join(s.root, subdir, name))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return ref, nil
}

// Open returns a reader for a previously stored reference.
func (s *Storage) Open(ref string) (io.ReadCloser, error) {
	return os.Open(s.AbsPath(ref))
}

// ReadBase64 loads a stored file and encodes it for API transmission.
func (s *Storage) ReadBase64(ref string) (string, error) {
	data, err := os.ReadFile(s.AbsPath(ref))
	if err != nil {
		return "", fmt.Errorf("read media %s: %w", ref, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// AbsPath resolves a reference to its on-disk location.
func (s *Storage) AbsPath(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(ref))
}

// Root returns the uploads root directory.
func (s *Storage) Root() string {
	return s.root
}

func hexID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func extOf(name string) string {
	return normalizeExt(strings.TrimPrefix(filepath.Ext(name), "."))
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
