package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// FileRepository снапшот в JSON-файле
type FileRepository struct {
	path string
}

// NewFileRepository создает репозиторий файла снапшота
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load читает и разбирает файл снапшота
func (r *FileRepository) Load(_ context.Context) (*domain.Snapshot, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, r.path, err)
	}

	var f fileSnapshot
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, r.path, err)
	}
	if f.Venues == nil {
		return nil, fmt.Errorf("%w: %s: missing venues object", domain.ErrCorruptSnapshot, r.path)
	}

	return f.toDomain("file:" + r.path)
}

// Save записывает снапшот атомарно: во временный файл и переименованием
func (r *FileRepository) Save(_ context.Context, s *domain.Snapshot) error {
	data, err := json.MarshalIndent(fromDomain(s), "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWriteFile, err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFile, dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".venues-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", ErrWriteFile, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s: %v", ErrWriteFile, tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFile, tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("%w: rename to %s: %v", ErrWriteFile, r.path, err)
	}
	return nil
}
