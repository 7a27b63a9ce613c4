package services

import (
	"context"
	"errors"
	"sync"

	"ClinicDesk/models"
	"ClinicDesk/util"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeAccounts struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]models.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[primitive.ObjectID]models.Account{}}
}

func (f *fakeAccounts) FindByUsername(_ context.Context, username string) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.Username == username {
			return a, nil
		}
	}
	return models.Account{}, util.ErrUserNotFound
}

func (f *fakeAccounts) FindByID(_ context.Context, id string) (models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Account{}, util.ErrUserNotFound
	}
	a, ok := f.byID[oid]
	if !ok {
		return models.Account{}, util.ErrUserNotFound
	}
	return a, nil
}

func (f *fakeAccounts) Create(_ context.Context, account *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.byID {
		if a.Username == account.Username {
			return util.ErrDuplicateIdentifier
		}
	}
	account.ID = primitive.NewObjectID()
	f.byID[account.ID] = *account
	return nil
}

func (f *fakeAccounts) UpdatePassword(_ context.Context, id string, hash string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	a, ok := f.byID[oid]
	if !ok {
		return false, nil
	}
	a.Password = hash
	f.byID[oid] = a
	return true, nil
}

func (f *fakeAccounts) List(_ context.Context) ([]models.AccountSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.AccountSummary{}
	for _, a := range f.byID {
		out = append(out, models.AccountSummary{ID: a.ID, Username: a.Username, Role: a.Role})
	}
	return out, nil
}

func (f *fakeAccounts) count(username string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, a := range f.byID {
		if a.Username == username {
			n++
		}
	}
	return n
}

type fakeDoctors struct {
	mu      sync.Mutex
	order   []primitive.ObjectID
	byID    map[primitive.ObjectID]models.Doctor
	listErr error
	lists   int
}

func newFakeDoctors() *fakeDoctors {
	return &fakeDoctors{byID: map[primitive.ObjectID]models.Doctor{}}
}

func (f *fakeDoctors) Create(_ context.Context, doctor *models.Doctor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	doctor.ID = primitive.NewObjectID()
	f.byID[doctor.ID] = *doctor
	f.order = append(f.order, doctor.ID)
	return nil
}

func (f *fakeDoctors) List(_ context.Context) ([]models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []models.Doctor{}
	for _, id := range f.order {
		if d, ok := f.byID[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDoctors) FindByID(_ context.Context, id string) (models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	d, ok := f.byID[oid]
	if !ok {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	return d, nil
}

func (f *fakeDoctors) UpdateSchedule(_ context.Context, id string, fields map[string]interface{}) (models.Doctor, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	d, ok := f.byID[oid]
	if !ok {
		return models.Doctor{}, util.ErrDoctorNotFound
	}
	for k, v := range fields {
		switch k {
		case "isAvailable":
			d.IsAvailable = v.(bool)
		case "startTime1":
			d.StartTime1 = v.(string)
		case "endTime1":
			d.EndTime1 = v.(string)
		case "startTime2":
			d.StartTime2 = v.(string)
		case "endTime2":
			d.EndTime2 = v.(string)
		default:
			return models.Doctor{}, errors.New("unexpected schedule field " + k)
		}
	}
	f.byID[oid] = d
	return d, nil
}

func (f *fakeDoctors) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	delete(f.byID, oid)
	return nil
}

func (f *fakeDoctors) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byID)), nil
}

type fakeAppointments struct {
	mu        sync.Mutex
	saved     []models.Appointment
	createErr error
}

func (f *fakeAppointments) Create(_ context.Context, appointment *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	appointment.ID = primitive.NewObjectID()
	f.saved = append(f.saved, *appointment)
	return nil
}

func (f *fakeAppointments) List(_ context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Appointment{}, f.saved...), nil
}
