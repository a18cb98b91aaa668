package jobshandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	filestorage "job-portal-backend/lib/file-storage"
	apperrors "job-portal-backend/lib/utils/app-errors"
	"job-portal-backend/models"
	jobapimodels "job-portal-backend/models/api/job"
	dbmodels "job-portal-backend/models/db"
)

type fakeJobsStore struct {
	list []dbmodels.Job
}

func (f *fakeJobsStore) Create(rec dbmodels.Job) (string, error) {
	rec.ID = fmt.Sprintf("job-%v", len(f.list)+1)
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeJobsStore) GetByID(id string) (*dbmodels.Job, error) {
	for _, rec := range f.list {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeJobsStore) List() ([]dbmodels.Job, error) {
	return f.list, nil
}

func (f *fakeJobsStore) ListByRecruiter(recruiterEmail string) ([]dbmodels.Job, error) {
	result := []dbmodels.Job{}
	for _, rec := range f.list {
		if rec.RecruiterEmail == recruiterEmail {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (f *fakeJobsStore) ListAvailableForStudent(studentEmail string) ([]dbmodels.Job, error) {
	return f.list, nil
}

func (f *fakeJobsStore) DeleteByRecruiter(recruiterEmail string) (int64, error) {
	return 0, nil
}

type fakeUsersStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) {
	f.users[rec.Email] = rec
	return rec.Email, nil
}

func (f *fakeUsersStore) Update(email string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeUsersStore) DeleteByEmail(email string) (bool, error) {
	return false, nil
}

func (f *fakeUsersStore) ExistByEmail(email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUsersStore) GetByEmail(email string) (*dbmodels.User, error) {
	rec, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeFiles struct {
	saved []string
}

func (f *fakeFiles) Save(ctx context.Context, folder filestorage.Folder, file models.File) (string, error) {
	path := fmt.Sprintf("uploads/%v/%v", folder, file.FileName)
	f.saved = append(f.saved, path)
	return path, nil
}

func (f *fakeFiles) Get(ctx context.Context, relPath string) ([]byte, error) {
	return nil, nil
}

func newHandler() (Provider, *fakeJobsStore, *fakeFiles) {
	store := &fakeJobsStore{}
	files := &fakeFiles{}
	users := &fakeUsersStore{users: map[string]dbmodels.User{
		"hr@acme.com": {Email: "hr@acme.com", Role: models.RecruiterRole},
		"st@uni.edu":  {Email: "st@uni.edu", Role: models.StudentRole},
	}}
	return NewInstance(store, users, files), store, files
}

func jobData(jobType models.JobType) jobapimodels.JobData {
	return jobapimodels.JobData{
		RecruiterEmail: "hr@acme.com",
		Company:        "Acme",
		Title:          "Go Intern",
		Description:    "Write services",
		JobType:        jobType,
		Eligibility: dbmodels.Eligibility{
			Skills:   []string{"go", "sql"},
			Location: dbmodels.Location{City: "Pune"},
		},
		Questions: dbmodels.JobQuestions{
			{QuestionText: "Why us?", AnswerType: models.AnswerTypeText},
			{QuestionText: "Shift", AnswerType: models.AnswerTypeRadio, Options: []string{"day", "night"}},
		},
	}
}

func TestCreate(t *testing.T) {
	t.Run("вакансия с вопросами", func(t *testing.T) {
		h, store, files := newHandler()
		view, err := h.Create(context.Background(), jobData(models.JobTypeQuestions), &models.File{FileName: "jd.pdf"})
		require.NoError(t, err)
		require.Equal(t, "job-1", view.ID)
		require.Empty(t, view.PdfPath)
		require.Empty(t, files.saved)
		require.Len(t, store.list, 1)
		require.Equal(t, "Shift", store.list[0].Questions[1].QuestionText)
		require.Equal(t, []string{"day", "night"}, view.Questions[1].Options)
	})
	t.Run("вакансия с pdf", func(t *testing.T) {
		h, _, files := newHandler()
		view, err := h.Create(context.Background(), jobData(models.JobTypePdf), &models.File{FileName: "jd.pdf"})
		require.NoError(t, err)
		require.Equal(t, "uploads/job/jd.pdf", view.PdfPath)
		require.Len(t, files.saved, 1)
	})
	t.Run("обязательные поля", func(t *testing.T) {
		h, store, _ := newHandler()
		data := jobData(models.JobTypeQuestions)
		data.Title = " "
		_, err := h.Create(context.Background(), data, nil)
		require.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		require.Empty(t, store.list)
	})
	t.Run("студент не может публиковать", func(t *testing.T) {
		h, _, _ := newHandler()
		data := jobData(models.JobTypeQuestions)
		data.RecruiterEmail = "st@uni.edu"
		_, err := h.Create(context.Background(), data, nil)
		require.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
	})
	t.Run("неизвестный рекрутер", func(t *testing.T) {
		h, _, _ := newHandler()
		data := jobData(models.JobTypeQuestions)
		data.RecruiterEmail = "nobody@x.com"
		_, err := h.Create(context.Background(), data, nil)
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestGetByID(t *testing.T) {
	h, _, _ := newHandler()
	created, err := h.Create(context.Background(), jobData(models.JobTypeQuestions), nil)
	require.NoError(t, err)
	view, err := h.GetByID(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Go Intern", view.Title)
	require.Equal(t, []string{"go", "sql"}, []string(view.Eligibility.Skills))

	_, err = h.GetByID("missing")
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))

	list, err := h.ListByRecruiter("hr@acme.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
	list, err = h.ListByRecruiter("other@acme.com")
	require.NoError(t, err)
	require.Empty(t, list)
}
