package models

import "path/filepath"

// File загруженный пользователем файл, до сохранения в хранилище
type File struct {
	FileName    string
	ContentType string
	Body        []byte
}

func (f File) Ext() string {
	return filepath.Ext(f.FileName)
}
