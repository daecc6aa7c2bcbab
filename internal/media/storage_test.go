package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestSaveImageRef(t *testing.T) {
	s := newTestStorage(t)

	ref, err := s.SaveImage(strings.NewReader("fake png bytes"), "png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "images/"), "ref %q should live under images/", ref)
	assert.True(t, strings.HasSuffix(ref, ".png"))
}

func TestSaveAudioRef(t *testing.T) {
	s := newTestStorage(t)

	ref, err := s.SaveAudio(strings.NewReader("fake wav bytes"), "wav")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ref, "audio/"), "ref %q should live under audio/", ref)
	assert.True(t, strings.HasSuffix(ref, ".wav"))
}

func TestSaveUnknownExtensionDefaults(t *testing.T) {
	s := newTestStorage(t)

	ref, err := s.SaveImage(strings.NewReader("x"), "exe")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".png"), "unknown image ext should default to png, got %q", ref)

	ref, err = s.SaveAudio(strings.NewReader("x"), "exe")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ref, ".wav"), "unknown audio ext should default to wav, got %q", ref)
}

func TestRefsAreUnique(t *testing.T) {
	s := newTestStorage(t)

	a, err := s.SaveImage(strings.NewReader("one"), "png")
	require.NoError(t, err)
	b, err := s.SaveImage(strings.NewReader("two"), "png")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestReadBase64RoundTrip(t *testing.T) {
	s := newTestStorage(t)

	ref, err := s.SaveImage(strings.NewReader("payload"), "png")
	require.NoError(t, err)

	encoded, err := s.ReadBase64(ref)
	require.NoError(t, err)
	assert.Equal(t, "cGF5bG9hZA==", encoded)
}

func TestReadBase64Missing(t *testing.T) {
	s := newTestStorage(t)
	_, err := s.ReadBase64("images/does-not-exist.png")
	assert.Error(t, err)
}

func TestValidNames(t *testing.T) {
	assert.True(t, ValidImageName("photo.JPG"))
	assert.True(t, ValidAudioName("clip.mp3"))
	assert.False(t, ValidImageName("malware.exe"))
	assert.False(t, ValidAudioName("notes.txt"))
}

func TestRenderPlaceholderToStorage(t *testing.T) {
	s := newTestStorage(t)

	ref, err := RenderPlaceholderToStorage(s, "Leadership assessment", "A team meeting around a whiteboard with one person presenting.")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "images/"))

	encoded, err := s.ReadBase64(ref)
	require.NoError(t, err)
	assert.NotEmpty(t, encoded)
}
