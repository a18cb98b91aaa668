package usershandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	filestorage "job-portal-backend/lib/file-storage"
	apperrors "job-portal-backend/lib/utils/app-errors"
	authutils "job-portal-backend/lib/utils/auth-utils"
	"job-portal-backend/models"
	profileapimodels "job-portal-backend/models/api/profile"
	dbmodels "job-portal-backend/models/db"
)

type fakeUsersStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error) {
	f.users[rec.Email] = rec
	return rec.Email, nil
}

func (f *fakeUsersStore) Update(email string, updMap map[string]interface{}) error {
	rec := f.users[email]
	for key, value := range updMap {
		switch key {
		case "name":
			rec.Name = value.(string)
		case "password":
			rec.Password = value.(string)
		case "company_name":
			rec.CompanyName = value.(string)
		case "profile_pic":
			rec.ProfilePic = value.(string)
		}
	}
	f.users[email] = rec
	return nil
}

func (f *fakeUsersStore) DeleteByEmail(email string) (bool, error) {
	_, ok := f.users[email]
	delete(f.users, email)
	return ok, nil
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

type fakeApplicationsStore struct {
	list []dbmodels.Application
}

func (f *fakeApplicationsStore) Create(rec dbmodels.Application) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeApplicationsStore) GetByID(id string) (*dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationsStore) ExistByJobAndStudent(jobID, studentEmail string) (bool, error) {
	return false, nil
}

func (f *fakeApplicationsStore) ListByStudent(studentEmail string) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationsStore) ListByJob(jobID string) ([]dbmodels.Application, error) {
	return nil, nil
}

func (f *fakeApplicationsStore) UpdateStatus(id string, from models.ApplicationStatus, updMap map[string]interface{}) (bool, error) {
	return false, nil
}

func (f *fakeApplicationsStore) DeleteByStudent(studentEmail string) (int64, error) {
	kept := []dbmodels.Application{}
	var count int64
	for _, rec := range f.list {
		if rec.StudentEmail == studentEmail {
			count++
			continue
		}
		kept = append(kept, rec)
	}
	f.list = kept
	return count, nil
}

type fakeJobsStore struct {
	list []dbmodels.Job
}

func (f *fakeJobsStore) Create(rec dbmodels.Job) (string, error) {
	f.list = append(f.list, rec)
	return rec.ID, nil
}

func (f *fakeJobsStore) GetByID(id string) (*dbmodels.Job, error) {
	return nil, nil
}

func (f *fakeJobsStore) List() ([]dbmodels.Job, error) {
	return f.list, nil
}

func (f *fakeJobsStore) ListByRecruiter(recruiterEmail string) ([]dbmodels.Job, error) {
	return nil, nil
}

func (f *fakeJobsStore) ListAvailableForStudent(studentEmail string) ([]dbmodels.Job, error) {
	return nil, nil
}

func (f *fakeJobsStore) DeleteByRecruiter(recruiterEmail string) (int64, error) {
	kept := []dbmodels.Job{}
	var count int64
	for _, rec := range f.list {
		if rec.RecruiterEmail == recruiterEmail {
			count++
			continue
		}
		kept = append(kept, rec)
	}
	f.list = kept
	return count, nil
}

type fakeFiles struct{}

func (f fakeFiles) Save(ctx context.Context, folder filestorage.Folder, file models.File) (string, error) {
	return fmt.Sprintf("uploads/%v/%v", folder, file.FileName), nil
}

func (f fakeFiles) Get(ctx context.Context, relPath string) ([]byte, error) {
	return nil, nil
}

type testEnv struct {
	h            Provider
	users        *fakeUsersStore
	applications *fakeApplicationsStore
	jobs         *fakeJobsStore
}

func newTestEnv() testEnv {
	env := testEnv{
		users: &fakeUsersStore{users: map[string]dbmodels.User{
			"st@uni.edu":  {Name: "Ann", Email: "st@uni.edu", Password: "hash", Role: models.StudentRole},
			"hr@acme.com": {Name: "Bob", Email: "hr@acme.com", Password: "hash", Role: models.RecruiterRole, CompanyName: "Acme"},
		}},
		applications: &fakeApplicationsStore{list: []dbmodels.Application{
			{JobID: "job-1", StudentEmail: "st@uni.edu"},
			{JobID: "job-2", StudentEmail: "st@uni.edu"},
			{JobID: "job-1", StudentEmail: "other@uni.edu"},
		}},
		jobs: &fakeJobsStore{list: []dbmodels.Job{
			{RecruiterEmail: "hr@acme.com"},
			{RecruiterEmail: "other@acme.com"},
		}},
	}
	env.h = NewInstance(env.users, env.applications, env.jobs, fakeFiles{})
	return env
}

func TestGet(t *testing.T) {
	env := newTestEnv()
	view, err := env.h.Get("hr@acme.com")
	require.NoError(t, err)
	require.Equal(t, profileapimodels.UserView{Name: "Bob", Email: "hr@acme.com", Role: models.RecruiterRole, CompanyName: "Acme"}, view)

	_, err = env.h.Get("nobody@x.com")
	require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdate(t *testing.T) {
	t.Run("пароль без изменений", func(t *testing.T) {
		env := newTestEnv()
		view, err := env.h.UpdateStudent(profileapimodels.StudentUpdateRequest{Email: "st@uni.edu", Name: "Anna"})
		require.NoError(t, err)
		require.Equal(t, "Anna", view.Name)
		require.Equal(t, "hash", env.users.users["st@uni.edu"].Password)
	})
	t.Run("новый пароль хешируется", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.h.UpdateRecruiter("hr@acme.com", profileapimodels.RecruiterUpdateRequest{Password: "newpass", CompanyName: "Acme Ltd"})
		require.NoError(t, err)
		rec := env.users.users["hr@acme.com"]
		require.Equal(t, "Bob", rec.Name)
		require.Equal(t, "Acme Ltd", rec.CompanyName)
		require.True(t, authutils.CheckPassword(rec.Password, "newpass"))
	})
	t.Run("неизвестный пользователь", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.h.UpdateStudent(profileapimodels.StudentUpdateRequest{Email: "nobody@x.com"})
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestDeleteAccount(t *testing.T) {
	t.Run("студент удаляется вместе с откликами", func(t *testing.T) {
		env := newTestEnv()
		require.NoError(t, env.h.DeleteAccount("st@uni.edu"))
		require.NotContains(t, env.users.users, "st@uni.edu")
		require.Len(t, env.applications.list, 1)
		require.Equal(t, "other@uni.edu", env.applications.list[0].StudentEmail)
		require.Len(t, env.jobs.list, 2)
	})
	t.Run("рекрутер удаляется вместе с вакансиями", func(t *testing.T) {
		env := newTestEnv()
		require.NoError(t, env.h.DeleteAccount("hr@acme.com"))
		require.Len(t, env.jobs.list, 1)
		require.Equal(t, "other@acme.com", env.jobs.list[0].RecruiterEmail)
		require.Len(t, env.applications.list, 3)
	})
	t.Run("неизвестный пользователь", func(t *testing.T) {
		env := newTestEnv()
		err := env.h.DeleteAccount("nobody@x.com")
		require.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
		require.Len(t, env.applications.list, 3)
	})
}

func TestUploadPicture(t *testing.T) {
	env := newTestEnv()
	path, err := env.h.UploadPicture(context.Background(), "st@uni.edu", models.File{FileName: "me.png"})
	require.NoError(t, err)
	require.Equal(t, "uploads/profile/me.png", path)
	require.Equal(t, path, env.users.users["st@uni.edu"].ProfilePic)
}
