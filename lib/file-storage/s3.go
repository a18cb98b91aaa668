package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"job-portal-backend/models"
	s3client "job-portal-backend/s3"
)

type s3Impl struct {
	client     *minio.Client
	bucketName string
}

func NewS3Instance(ctx context.Context, client *minio.Client, bucketName string) (Provider, error) {
	i := &s3Impl{
		client:     client,
		bucketName: bucketName,
	}
	if err := s3client.MakeBucket(ctx, client, bucketName); err != nil {
		return nil, errors.Wrap(err, "ошибка создания бакета")
	}
	return i, nil
}

func (i s3Impl) Save(ctx context.Context, folder Folder, file models.File) (string, error) {
	key := newObjectName(folder, file)
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.client.PutObject(ctx, i.bucketName, key, bytes.NewReader(file.Body), int64(len(file.Body)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return publicPath(key), nil
}

func (i s3Impl) Get(ctx context.Context, relPath string) ([]byte, error) {
	key, err := objectKey(relPath)
	if err != nil {
		return nil, err
	}
	obj, err := i.client.GetObject(ctx, i.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	body, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, nil
		}
		return nil, err
	}
	return body, nil
}
