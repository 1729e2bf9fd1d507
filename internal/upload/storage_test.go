package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFileHeader собирает multipart.FileHeader так, как его получает хендлер
func newFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestDiskStorage_Save(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewDiskStorage(dir)
	require.NoError(t, err)

	path, err := storage.Save(newFileHeader(t, "scene.jpg", "fake image bytes"))
	require.NoError(t, err)

	// Путь клиентский, имя уникальное, расширение исходного файла сохраняется
	assert.True(t, strings.HasPrefix(path, "/uploads/image-"), "unexpected path %q", path)
	assert.True(t, strings.HasSuffix(path, ".jpg"), "unexpected path %q", path)

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(path, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestDiskStorage_Save_UniqueNames(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	first, err := storage.Save(newFileHeader(t, "a.png", "one"))
	require.NoError(t, err)
	second, err := storage.Save(newFileHeader(t, "b.png", "two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStorage_Save_NoExtension(t *testing.T) {
	storage, err := NewDiskStorage(t.TempDir())
	require.NoError(t, err)

	path, err := storage.Save(newFileHeader(t, "photo", "raw"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/image-"), "unexpected path %q", path)
}

func TestNewDiskStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	_, err := NewDiskStorage(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
