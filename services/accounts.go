package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ClinicDesk/metrics"
	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	accounts AccountRepository
	doctors  DoctorRepository
	tokens   TokenIssuer
	metrics  *metrics.Metrics
	hashCost int
}

func NewAccountService(accounts AccountRepository, doctors DoctorRepository, tokens TokenIssuer, m *metrics.Metrics) *AccountService {
	return &AccountService{
		accounts: accounts,
		doctors:  doctors,
		tokens:   tokens,
		metrics:  m,
		hashCost: bcrypt.DefaultCost,
	}
}

/*
* Generate a bcrypt hash based on the password given
* bcrypt salts every hash on its own
 */
func (s *AccountService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Every account path stores and looks up the trimmed name.
func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", util.ErrUsernameRequired
	}
	return username, nil
}

func verifyPassword(hash, password string) bool {
	if strings.TrimSpace(hash) == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

/*
* Trim the username and check it is free
* Hash the secret and store the account
* A unique index race is still reported as a duplicate by the store
 */
func (s *AccountService) CreateAccount(ctx context.Context, username, password string, r role.Role) (models.Account, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return models.Account{}, err
	}
	_, err = s.accounts.FindByUsername(ctx, username)
	if err == nil {
		log.Info().Str("username", username).Msg("User already exists")
		return models.Account{}, util.ErrDuplicateIdentifier
	}
	if !errors.Is(err, util.ErrNotFound) {
		log.Error().Err(err).Msg("Error from FindByUsername")
		return models.Account{}, err
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		log.Error().Err(err).Msg("Error from HashPassword")
		return models.Account{}, err
	}
	account := models.Account{Username: username, Password: hash, Role: r}
	if err := s.accounts.Create(ctx, &account); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Error from account Create")
		return models.Account{}, err
	}
	return account, nil
}

// Register stores a new account. It does not log the caller in.
func (s *AccountService) Register(ctx context.Context, req models.RegisterRequest) error {
	r, ok := role.Parse(req.Role)
	if !ok {
		return util.ErrInvalidRole
	}
	_, err := s.CreateAccount(ctx, req.Username, req.Password, r)
	return err
}

/*
* Find the account and compare the hash
* Issue a token carrying id, username and role
* forceReset tells the client the default secret was used
 */
func (s *AccountService) Authenticate(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return models.LoginResponse{}, err
	}
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			s.metrics.ObserveLogin("not_found")
		}
		log.Info().Err(err).Str("username", req.Username).Msg("Error from FindByUsername in login")
		return models.LoginResponse{}, err
	}
	if !verifyPassword(account.Password, req.Password) {
		s.metrics.ObserveLogin("invalid_credentials")
		return models.LoginResponse{}, util.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateJWT(account.ID.Hex(), account.Username, account.Role)
	if err != nil {
		log.Error().Err(err).Msg("Error while generating the token")
		return models.LoginResponse{}, err
	}
	s.metrics.ObserveLogin("success")
	return models.LoginResponse{
		Token:      token,
		Role:       account.Role,
		Username:   account.Username,
		ForceReset: req.Password == util.DefaultPassword,
	}, nil
}

func (s *AccountService) ChangeOwnPassword(ctx context.Context, req models.ChangePasswordRequest) error {
	username, err := normalizeUsername(req.Username)
	if err != nil {
		return err
	}
	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		log.Info().Err(err).Msg("Error from FindByUsername in change password")
		return err
	}
	if !verifyPassword(account.Password, req.OldPassword) {
		return util.ErrIncorrectOldPassword
	}
	return s.overwritePassword(ctx, account.ID.Hex(), req.NewPassword)
}

/*
* Overwrite the target hash without checking who is asking
* Callers are expected to sit behind an admin-only route
 */
func (s *AccountService) AdminResetPassword(ctx context.Context, targetID, newPassword string) error {
	return s.overwritePassword(ctx, targetID, newPassword)
}

func (s *AccountService) overwritePassword(ctx context.Context, id, password string) error {
	hash, err := s.HashPassword(password)
	if err != nil {
		log.Error().Err(err).Msg("Error from HashPassword")
		return err
	}
	matched, err := s.accounts.UpdatePassword(ctx, id, hash)
	if err != nil {
		log.Error().Err(err).Msg("Error from UpdatePassword")
		return err
	}
	if !matched {
		log.Info().Str("id", id).Msg("password update matched no account")
	}
	return nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]models.AccountSummary, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from account List")
		return nil, err
	}
	return accounts, nil
}

// ProvisionDoctorAccount creates the clinician login a doctor profile gets by default.
func (s *AccountService) ProvisionDoctorAccount(ctx context.Context, name string) (models.Account, error) {
	return s.CreateAccount(ctx, name, util.DefaultPassword, role.Doctor)
}

/*
* For every doctor without a login of the same name create one
* Names already taken by any account are skipped
 */
func (s *AccountService) SyncDoctorAccounts(ctx context.Context) (int, error) {
	doctors, err := s.doctors.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from doctor List in sync")
		return 0, err
	}

	created := 0
	for _, d := range doctors {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			continue
		}
		_, err := s.accounts.FindByUsername(ctx, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, util.ErrNotFound) {
			return created, fmt.Errorf("sync %q: %w", d.Name, err)
		}
		if _, err := s.ProvisionDoctorAccount(ctx, name); err != nil {
			if errors.Is(err, util.ErrDuplicateIdentifier) {
				continue
			}
			return created, fmt.Errorf("sync %q: %w", d.Name, err)
		}
		created++
	}
	log.Info().Int("count", created).Msg("doctor account sync complete")
	return created, nil
}
