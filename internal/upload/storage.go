package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// Storage - контракт сохранения приложенных к заявке фотографий
type Storage interface {
	Save(file *multipart.FileHeader) (string, error)
}

// DiskStorage сохраняет файлы в локальный каталог, раздаваемый как /uploads
type DiskStorage struct {
	dir string
}

func NewDiskStorage(dir string) (*DiskStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStorage{dir: dir}, nil
}

// Save записывает файл под уникальным именем и возвращает путь,
// по которому он доступен клиентам
func (s *DiskStorage) Save(file *multipart.FileHeader) (string, error) {
	name := fmt.Sprintf("image-%d%s", time.Now().UnixNano(), filepath.Ext(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write uploaded file: %w", err)
	}

	return "/uploads/" + name, nil
}
