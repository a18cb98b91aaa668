package filestorage

import (
	"context"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"job-portal-backend/models"
)

// PublicPrefix префикс относительных путей, по нему файлы раздаются через http
const PublicPrefix = "uploads"

type Folder string

const (
	ResumeFolder     Folder = "resume"
	OfferFolder      Folder = "offer"
	JobPdfFolder     Folder = "job"
	ProfilePicFolder Folder = "profile"
)

type Provider interface {
	// Save сохраняет файл и возвращает относительный путь вида uploads/<folder>/<name>
	Save(ctx context.Context, folder Folder, file models.File) (string, error)
	Get(ctx context.Context, relPath string) ([]byte, error)
}

func newObjectName(folder Folder, file models.File) string {
	return path.Join(string(folder), uuid.New().String()+strings.ToLower(file.Ext()))
}

// objectKey путь внутри хранилища по относительному пути из документа
func objectKey(relPath string) (string, error) {
	cleaned := path.Clean("/" + relPath)
	key := strings.TrimPrefix(cleaned, "/"+PublicPrefix+"/")
	if key == cleaned || key == "" || strings.Contains(key, "..") {
		return "", errors.Errorf("некорректный путь к файлу: %s", relPath)
	}
	return key, nil
}

func publicPath(key string) string {
	return path.Join(PublicPrefix, key)
}
