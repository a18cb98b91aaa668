package pdfexport

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	dbmodels "job-portal-backend/models/db"
)

const (
	fontFamily = "Helvetica"
	pageMargin = 18.0
	textLineHt = 5.5
)

type Provider interface {
	ApplicationPdf(app dbmodels.Application, job *dbmodels.Job) ([]byte, error)
}

func NewInstance(publicURL string) Provider {
	return &impl{
		publicURL: publicURL,
	}
}

type impl struct {
	publicURL string
}

func (i impl) ApplicationPdf(app dbmodels.Application, job *dbmodels.Job) ([]byte, error) {
	doc := BuildApplicationDocument(app, job, i.publicURL)
	return Render(doc)
}

// Render выводит документ в pdf (A4, перенос страниц автоматически)
func Render(doc Document) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("Render panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.SetTitle("Application Details", true)
	pdf.AddPage()
	// базовый шрифт без внешних файлов, текст в cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, line := range doc.Lines {
		switch line.Kind {
		case LineTitle:
			pdf.SetFont(fontFamily, "BU", 20)
			pdf.CellFormat(0, 10, tr(line.Text), "", 1, "C", false, 0, "")
			pdf.Ln(3)
		case LineSubtitle:
			pdf.SetFont(fontFamily, "", 12)
			pdf.CellFormat(0, 6, tr(line.Text), "", 1, "C", false, 0, "")
		case LineHeading:
			pdf.Ln(2)
			pdf.SetFont(fontFamily, "BU", 14)
			pdf.CellFormat(0, 8, tr(line.Text), "", 1, "L", false, 0, "")
			pdf.Ln(2)
		case LineText:
			pdf.SetFont(fontFamily, "", 11)
			pdf.MultiCell(0, textLineHt, tr(line.Text), "", "L", false)
		case LineLink:
			pdf.SetFont(fontFamily, "U", 11)
			pdf.SetTextColor(0, 0, 255)
			pdf.WriteLinkString(textLineHt, tr(line.Text), line.Link)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(textLineHt)
		case LineSpacer:
			pdf.Ln(4)
		}
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования pdf")
	}
	return buf.Bytes(), nil
}
