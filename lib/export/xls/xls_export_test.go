package xlsexport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"job-portal-backend/models"
	dbmodels "job-portal-backend/models/db"
)

func TestExportApplicationList(t *testing.T) {
	acceptedAt := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	list := []dbmodels.Application{
		{
			StudentName:  "Ann Lee",
			StudentEmail: "ann@x.com",
			Phone:        "123",
			Status:       models.ApplicationStatusAccepted,
			AcceptedAt:   &acceptedAt,
		},
		{
			StudentName:  "Bob Ray",
			StudentEmail: "bob@x.com",
			Status:       models.ApplicationStatusPending,
		},
	}
	buf, err := NewInstance().ExportApplicationList("Go/Intern", list)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"GoIntern"}, f.GetSheetList())
	rows, err := f.GetRows("GoIntern")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, applicationHeaders, rows[0])
	require.Equal(t, "Ann Lee", rows[1][0])
	require.Equal(t, "Offer sent", rows[1][3])
	require.Equal(t, "05.03.2024", rows[1][5])
	require.Equal(t, "bob@x.com", rows[2][1])
}

func TestSheetName(t *testing.T) {
	require.Equal(t, "Applications", sheetName(""))
	require.Equal(t, "Applications", sheetName("[]"))
	require.Len(t, []rune(sheetName("a very long job title that does not fit")), 31)
}
