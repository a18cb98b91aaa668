package applicationshandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	filestorage "job-portal-backend/lib/file-storage"
	notificationshandler "job-portal-backend/lib/notifications"
	"job-portal-backend/models"
	notificationapimodels "job-portal-backend/models/api/notification"
	dbmodels "job-portal-backend/models/db"
)

type fakeApplicationsStore struct {
	recs map[string]dbmodels.Application
	jobs *fakeJobsStore
	seq  int
	// createErr возвращается из Create, если задана
	createErr error
}

func newFakeApplicationsStore(jobs *fakeJobsStore) *fakeApplicationsStore {
	return &fakeApplicationsStore{
		recs: map[string]dbmodels.Application{},
		jobs: jobs,
	}
}

func (f *fakeApplicationsStore) Create(rec dbmodels.Application) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	for _, item := range f.recs {
		if item.JobID == rec.JobID && item.StudentEmail == rec.StudentEmail {
			return "", gorm.ErrDuplicatedKey
		}
	}
	f.seq++
	rec.ID = fmt.Sprintf("app-%v", f.seq)
	rec.CreatedAt = time.Now()
	rec.Job = nil
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeApplicationsStore) GetByID(id string) (*dbmodels.Application, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	rec.Job, _ = f.jobs.GetByID(rec.JobID)
	return &rec, nil
}

func (f *fakeApplicationsStore) ExistByJobAndStudent(jobID, studentEmail string) (bool, error) {
	for _, item := range f.recs {
		if item.JobID == jobID && item.StudentEmail == studentEmail {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationsStore) ListByStudent(studentEmail string) ([]dbmodels.Application, error) {
	result := []dbmodels.Application{}
	for _, item := range f.recs {
		if item.StudentEmail == studentEmail {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeApplicationsStore) ListByJob(jobID string) ([]dbmodels.Application, error) {
	result := []dbmodels.Application{}
	for _, item := range f.recs {
		if item.JobID == jobID {
			result = append(result, item)
		}
	}
	return result, nil
}

func (f *fakeApplicationsStore) UpdateStatus(id string, from models.ApplicationStatus, updMap map[string]interface{}) (bool, error) {
	rec, ok := f.recs[id]
	if !ok || rec.Status != from {
		return false, nil
	}
	for key, value := range updMap {
		switch key {
		case "status":
			rec.Status = value.(models.ApplicationStatus)
		case "offer_letter":
			rec.OfferLetter = value.(string)
		case "offer_pdf":
			rec.OfferPdf = value.(string)
		case "rejection_message":
			rec.RejectionMessage = value.(string)
		case "accepted_at":
			at := value.(time.Time)
			rec.AcceptedAt = &at
		case "rejected_at":
			at := value.(time.Time)
			rec.RejectedAt = &at
		default:
			return false, errors.Errorf("unexpected column %v", key)
		}
	}
	f.recs[id] = rec
	return true, nil
}

func (f *fakeApplicationsStore) DeleteByStudent(studentEmail string) (int64, error) {
	var count int64
	for id, item := range f.recs {
		if item.StudentEmail == studentEmail {
			delete(f.recs, id)
			count++
		}
	}
	return count, nil
}

type fakeJobsStore struct {
	recs map[string]dbmodels.Job
}

func (f *fakeJobsStore) Create(rec dbmodels.Job) (string, error) {
	f.recs[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeJobsStore) GetByID(id string) (*dbmodels.Job, error) {
	rec, ok := f.recs[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeJobsStore) List() ([]dbmodels.Job, error) {
	result := []dbmodels.Job{}
	for _, rec := range f.recs {
		result = append(result, rec)
	}
	return result, nil
}

func (f *fakeJobsStore) ListByRecruiter(recruiterEmail string) ([]dbmodels.Job, error) {
	return nil, nil
}

func (f *fakeJobsStore) ListAvailableForStudent(studentEmail string) ([]dbmodels.Job, error) {
	return nil, nil
}

func (f *fakeJobsStore) DeleteByRecruiter(recruiterEmail string) (int64, error) {
	return 0, nil
}

type fakeNotifications struct {
	events []notificationshandler.Event
	err    error
}

func (f *fakeNotifications) Emit(event notificationshandler.Event) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.events = append(f.events, event)
	return fmt.Sprintf("n-%v", len(f.events)), nil
}

func (f *fakeNotifications) List(email string) ([]notificationapimodels.NotificationView, error) {
	return nil, nil
}

func (f *fakeNotifications) MarkRead(id string) error {
	return nil
}

type fakeFiles struct {
	saved map[string][]byte
}

func (f *fakeFiles) Save(ctx context.Context, folder filestorage.Folder, file models.File) (string, error) {
	path := fmt.Sprintf("uploads/%v/%v", folder, file.FileName)
	f.saved[path] = file.Body
	return path, nil
}

func (f *fakeFiles) Get(ctx context.Context, relPath string) ([]byte, error) {
	return f.saved[relPath], nil
}
