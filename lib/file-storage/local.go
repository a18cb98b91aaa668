package filestorage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"job-portal-backend/models"
)

type localImpl struct {
	baseDir string
}

func NewLocalInstance(baseDir string) (Provider, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "не удалось создать каталог для загрузок")
	}
	return &localImpl{baseDir: baseDir}, nil
}

func (i localImpl) Save(ctx context.Context, folder Folder, file models.File) (string, error) {
	key := newObjectName(folder, file)
	fullPath := filepath.Join(i.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", errors.Wrap(err, "не удалось создать каталог")
	}
	if err := os.WriteFile(fullPath, file.Body, 0644); err != nil {
		return "", errors.Wrap(err, "не удалось записать файл")
	}
	log.WithField("file", key).WithField("size", len(file.Body)).Debug("файл сохранен")
	return publicPath(key), nil
}

func (i localImpl) Get(ctx context.Context, relPath string) ([]byte, error) {
	key, err := objectKey(relPath)
	if err != nil {
		return nil, err
	}
	body, err := os.ReadFile(filepath.Join(i.baseDir, filepath.FromSlash(key)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return body, nil
}
