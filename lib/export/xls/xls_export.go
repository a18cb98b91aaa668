package xlsexport

import (
	"bytes"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	dbmodels "job-portal-backend/models/db"
)

type Provider interface {
	ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error)
}

func NewInstance() Provider {
	return impl{}
}

type impl struct{}

var applicationHeaders = []string{"Name", "Email", "Phone", "Status", "Applied at", "Decided at", "Resume"}

func (i impl) ExportApplicationList(jobTitle string, list []dbmodels.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	if err := writeHeader(f, sheet, applicationHeaders); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if err := writeApplicationData(f, sheet, list); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
	}
	if err := f.SetSheetName(sheet, sheetName(jobTitle)); err != nil {
		return nil, errors.Wrap(err, "ошибка переименования листа в xlsx")
	}
	return f.WriteToBuffer()
}

// sheetName имя листа, excel ограничивает длину 31 символом и запрещает часть символов
func sheetName(jobTitle string) string {
	name := []rune{}
	for _, r := range jobTitle {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		name = append(name, r)
	}
	if len(name) > 31 {
		name = name[:31]
	}
	if len(name) == 0 {
		return "Applications"
	}
	return string(name)
}

func decidedAt(item dbmodels.Application) *time.Time {
	if item.AcceptedAt != nil {
		return item.AcceptedAt
	}
	return item.RejectedAt
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(dateFormat)
}

func writeApplicationData(f *excelize.File, sheet string, list []dbmodels.Application) error {
	if len(list) == 0 {
		return nil
	}
	style, err := newStyle(f, false, "left")
	if err != nil {
		return err
	}
	for idx, item := range list {
		values := []interface{}{
			item.StudentName,
			item.StudentEmail,
			item.Phone,
			item.Status.ToHuman(),
			formatDate(&item.CreatedAt),
			formatDate(decidedAt(item)),
			item.Resume,
		}
		if err = writeRow(f, sheet, idx+2, style, values); err != nil {
			return err
		}
	}
	return nil
}
