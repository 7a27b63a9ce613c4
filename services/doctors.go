package services

import (
	"context"
	"fmt"

	"ClinicDesk/config/redis"
	"ClinicDesk/metrics"
	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
)

type AccountProvisioner interface {
	ProvisionDoctorAccount(ctx context.Context, name string) (models.Account, error)
}

// ProvisionDoctor is the intent to store a profile together with its login.
type ProvisionDoctor struct {
	Profile models.Doctor
	Account models.Account
}

func NewProvisionDoctor(profile models.Doctor) ProvisionDoctor {
	return ProvisionDoctor{
		Profile: profile,
		Account: models.Account{Username: profile.Name, Role: role.Doctor},
	}
}

/*
* Outcome of a ProvisionDoctor
* AccountErr is set when the profile was stored but the login was not
 */
type ProvisionResult struct {
	Profile        models.Doctor
	Account        models.Account
	AccountCreated bool
	AccountErr     error
}

func (r ProvisionResult) Partial() bool {
	return !r.AccountCreated && r.AccountErr != nil
}

type DoctorService struct {
	doctors  DoctorRepository
	accounts AccountProvisioner
	cache    Cache
	metrics  *metrics.Metrics
}

func NewDoctorService(doctors DoctorRepository, accounts AccountProvisioner, cache Cache, m *metrics.Metrics) *DoctorService {
	if cache == nil {
		cache = redis.NewCache(nil, 0)
	}
	return &DoctorService{doctors: doctors, accounts: accounts, cache: cache, metrics: m}
}

/*
* Store the profile first, then its login
* A failed login write does not undo the profile, it is reported
* as ErrPartialProvision with the stored profile in the result
 */
func (s *DoctorService) Provision(ctx context.Context, intent ProvisionDoctor) (ProvisionResult, error) {
	profile := intent.Profile
	if err := s.doctors.Create(ctx, &profile); err != nil {
		log.Error().Err(err).Msg("Error from doctor Create")
		return ProvisionResult{}, err
	}
	s.invalidate(ctx)
	result := ProvisionResult{Profile: profile}

	account, err := s.accounts.ProvisionDoctorAccount(ctx, intent.Account.Username)
	if err != nil {
		log.Error().Err(err).Str("doctor", profile.Name).Msg("doctor profile saved without login")
		s.metrics.ObservePartialProvision()
		result.AccountErr = err
		return result, fmt.Errorf("%w: %v", util.ErrPartialProvision, err)
	}
	result.Account = account
	result.AccountCreated = true
	log.Info().Str("doctor", profile.Name).Msg("New Doctor & Login Added")
	return result, nil
}

func (s *DoctorService) Create(ctx context.Context, req models.CreateDoctorRequest) (ProvisionResult, error) {
	return s.Provision(ctx, NewProvisionDoctor(req.Doctor()))
}

/*
* Serve the list from cache when present
* Fill the cache on a miss; cache errors never fail the request
 */
func (s *DoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	var cached []models.Doctor
	found, err := s.cache.GetCache(ctx, util.DoctorListKey, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("Error from GetCache for doctors")
	}
	if found {
		return cached, nil
	}

	doctors, err := s.doctors.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from doctor List")
		return nil, err
	}
	if err := s.cache.SetCache(ctx, util.DoctorListKey, doctors); err != nil {
		log.Warn().Err(err).Msg("Error from SetCache for doctors")
	}
	return doctors, nil
}

func (s *DoctorService) Get(ctx context.Context, id string) (models.Doctor, error) {
	return s.doctors.FindByID(ctx, id)
}

// UpdateSchedule touches availability and the two shift windows only.
func (s *DoctorService) UpdateSchedule(ctx context.Context, id string, update models.ScheduleUpdate) (models.Doctor, error) {
	doctor, err := s.doctors.UpdateSchedule(ctx, id, update.Fields())
	if err != nil {
		log.Info().Err(err).Str("id", id).Msg("Error from UpdateSchedule")
		return models.Doctor{}, err
	}
	s.invalidate(ctx)
	log.Info().Str("doctor", doctor.Name).Msg("Updated Schedule")
	return doctor, nil
}

// Delete removes the profile and keeps the doctor's login.
func (s *DoctorService) Delete(ctx context.Context, id string) error {
	if err := s.doctors.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("Error from doctor Delete")
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *DoctorService) Count(ctx context.Context) (int64, error) {
	return s.doctors.Count(ctx)
}

func (s *DoctorService) invalidate(ctx context.Context) {
	if err := s.cache.DeleteCache(ctx, util.DoctorListKey); err != nil {
		log.Warn().Err(err).Msg("Error from DeleteCache for doctors")
	}
}
