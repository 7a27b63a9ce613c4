package services

import (
	"context"
	"testing"
	"time"

	"ClinicDesk/config/jwt"
	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	accounts     *fakeAccounts
	doctors      *fakeDoctors
	appointments *fakeAppointments
	issuer       *jwt.Issuer
	accountSvc   *AccountService
	doctorSvc    *DoctorService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		accounts:     newFakeAccounts(),
		doctors:      newFakeDoctors(),
		appointments: &fakeAppointments{},
		issuer:       jwt.NewIssuer("test-secret", time.Hour),
	}
	f.accountSvc = NewAccountService(f.accounts, f.doctors, f.issuer, nil)
	f.accountSvc.hashCost = bcrypt.MinCost
	f.doctorSvc = NewDoctorService(f.doctors, f.accountSvc, nil, nil)
	return f
}

func (f *fixture) login(username, password string) (models.LoginResponse, error) {
	return f.accountSvc.Authenticate(context.Background(), models.LoginRequest{Username: username, Password: password})
}

func TestRegister_DuplicateIdentifier(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "desk", Password: "pw"}))
	err := f.accountSvc.Register(ctx, models.RegisterRequest{Username: "desk", Password: "other"})

	assert.ErrorIs(t, err, util.ErrDuplicateIdentifier)
	assert.Equal(t, 1, f.accounts.count("desk"))
}

func TestRegister_DefaultsAndHashes(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.accountSvc.Register(context.Background(), models.RegisterRequest{Username: "desk", Password: "pw"}))

	account, err := f.accounts.FindByUsername(context.Background(), "desk")
	require.NoError(t, err)
	assert.Equal(t, role.Receptionist, account.Role)
	assert.NotEqual(t, "pw", account.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.Password), []byte("pw")))
}

func TestRegister_SaltsEachHash(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "a", Password: "same"}))
	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "b", Password: "same"}))

	a, _ := f.accounts.FindByUsername(ctx, "a")
	b, _ := f.accounts.FindByUsername(ctx, "b")
	assert.NotEqual(t, a.Password, b.Password)
}

func TestRegister_InvalidRole(t *testing.T) {
	f := newFixture(t)
	err := f.accountSvc.Register(context.Background(), models.RegisterRequest{Username: "x", Password: "pw", Role: "janitor"})
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestRegister_BlankUsername(t *testing.T) {
	f := newFixture(t)
	err := f.accountSvc.Register(context.Background(), models.RegisterRequest{Username: "   ", Password: "pw"})

	assert.ErrorIs(t, err, util.ErrValidation)
	assert.ErrorIs(t, err, util.ErrUsernameRequired)
	assert.Equal(t, 0, f.accounts.count(""))
	assert.Equal(t, 0, f.accounts.count("   "))
}

func TestRegister_TrimsUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "  desk ", Password: "pw"}))

	assert.Equal(t, 1, f.accounts.count("desk"))
	_, err := f.login("desk", "pw")
	assert.NoError(t, err)
	_, err = f.login(" desk  ", "pw")
	assert.NoError(t, err)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.accountSvc.Register(context.Background(), models.RegisterRequest{Username: "root", Password: "S3cret!", Role: "admin"}))

	resp, err := f.login("root", "S3cret!")
	require.NoError(t, err)
	assert.Equal(t, role.Admin, resp.Role)
	assert.Equal(t, "root", resp.Username)
	assert.False(t, resp.ForceReset)

	claims, err := f.issuer.ValidateJWT(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, role.Admin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	f := newFixture(t)
	_, err := f.login("ghost", "x")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestAuthenticate_WrongSecretAlwaysFails(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.accountSvc.Register(context.Background(), models.RegisterRequest{Username: "desk", Password: "right"}))

	for i := 0; i < 5; i++ {
		_, err := f.login("desk", "right")
		require.NoError(t, err)
		_, err = f.login("desk", "wrong")
		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	}
}

func TestAuthenticate_ForceResetOnlyForDefaultSecret(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, r := range []string{"admin", "receptionist", "doctor"} {
		require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: r + "-default", Password: "12345", Role: r}))
		require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: r + "-custom", Password: "123456", Role: r}))

		resp, err := f.login(r+"-default", "12345")
		require.NoError(t, err)
		assert.True(t, resp.ForceReset, r)

		resp, err = f.login(r+"-custom", "123456")
		require.NoError(t, err)
		assert.False(t, resp.ForceReset, r)
	}
}

func TestChangeOwnPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "desk", Password: "old"}))

	err := f.accountSvc.ChangeOwnPassword(ctx, models.ChangePasswordRequest{Username: "desk", OldPassword: "nope", NewPassword: "new"})
	assert.ErrorIs(t, err, util.ErrIncorrectOldPassword)

	err = f.accountSvc.ChangeOwnPassword(ctx, models.ChangePasswordRequest{Username: "ghost", OldPassword: "old", NewPassword: "new"})
	assert.ErrorIs(t, err, util.ErrNotFound)

	require.NoError(t, f.accountSvc.ChangeOwnPassword(ctx, models.ChangePasswordRequest{Username: "desk", OldPassword: "old", NewPassword: "new"}))
	_, err = f.login("desk", "old")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, err = f.login("desk", "new")
	assert.NoError(t, err)
}

func TestBlankUsernameRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.login("  ", "pw")
	assert.ErrorIs(t, err, util.ErrValidation)

	err = f.accountSvc.ChangeOwnPassword(ctx, models.ChangePasswordRequest{Username: "\t ", OldPassword: "old", NewPassword: "new"})
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestAdminResetPassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "Dr. X", Password: "12345", Role: "doctor"}))
	account, _ := f.accounts.FindByUsername(ctx, "Dr. X")

	require.NoError(t, f.accountSvc.AdminResetPassword(ctx, account.ID.Hex(), "fresh"))

	resp, err := f.login("Dr. X", "fresh")
	require.NoError(t, err)
	assert.False(t, resp.ForceReset)

	assert.NoError(t, f.accountSvc.AdminResetPassword(ctx, "000000000000000000000000", "x"), "unknown target is not an error")
}

func TestListAccounts_NoSecrets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "desk", Password: "pw"}))

	accounts, err := f.accountSvc.ListAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "desk", accounts[0].Username)
	assert.Equal(t, role.Receptionist, accounts[0].Role)
}

func TestSyncDoctorAccounts_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.doctorSvc.Create(ctx, models.CreateDoctorRequest{Name: "Dr. X", Specialization: "ENT", Qualifications: "MBBS", Experience: "5"})
	require.NoError(t, err)

	created, err := f.accountSvc.SyncDoctorAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, f.accounts.count("Dr. X"))
}

func TestSyncDoctorAccounts_CreatesMissingAndSkipsCollisions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.doctors.Create(ctx, &models.Doctor{Name: "Dr. A"})
	f.doctors.Create(ctx, &models.Doctor{Name: "Dr. B"})
	require.NoError(t, f.accountSvc.Register(ctx, models.RegisterRequest{Username: "Dr. B", Password: "mine", Role: "admin"}))

	created, err := f.accountSvc.SyncDoctorAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	resp, err := f.login("Dr. A", "12345")
	require.NoError(t, err)
	assert.Equal(t, role.Doctor, resp.Role)
	assert.True(t, resp.ForceReset)

	b, _ := f.accounts.FindByUsername(ctx, "Dr. B")
	assert.Equal(t, role.Admin, b.Role, "colliding account is left alone")

	created, err = f.accountSvc.SyncDoctorAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}
