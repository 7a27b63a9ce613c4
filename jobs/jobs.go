package jobs

import (
	"context"
	"errors"

	"ClinicDesk/models"
	"ClinicDesk/services"
	"ClinicDesk/util"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

type AccountSyncer interface {
	SyncDoctorAccounts(ctx context.Context) (int, error)
}

type DirectorySeeder interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, req models.CreateDoctorRequest) (services.ProvisionResult, error)
}

// The two doctors listed on the clinic site before the directory existed.
var SeedDoctors = []models.CreateDoctorRequest{
	{
		Name:           "Dr. Mansi Shanghavi",
		Specialization: "Gynecologist & Obstetrician",
		Qualifications: "MBBS, DGO",
		Experience:     "7 years",
		Image:          "images/dr-mansi.png",
		Bio:            "Empathetic gynecologist with 7 years of experience in healthcare. Specializing in obstetrics, pregnancy care, painless normal delivery, and women's health.",
		Fee:            1000,
	},
	{
		Name:           "Dr. Amol Shah",
		Specialization: "Homeopathy Doctor",
		Qualifications: "BHMS (M.U.H.S. Nasik, 2008)",
		Experience:     "17 years",
		Image:          "https://cdn-icons-png.flaticon.com/512/3774/3774299.png",
		Bio:            "Homeopathy specialist with 17 years of experience. Also specializes in Dermatology & Cosmetology. Treats height issues, leg pain, and underweight disorders.",
		Fee:            500,
	},
}

/*
* Start the cron that provisions the missing doctor logins
* schedule is a standard five field cron spec
 */
func StartSyncScheduler(schedule string, syncer AccountSyncer) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		log.Info().Msg("Running doctor account sync...")
		RunSync(context.Background(), syncer)
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

func RunSync(ctx context.Context, syncer AccountSyncer) {
	count, err := syncer.SyncDoctorAccounts(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error from SyncDoctorAccounts")
		return
	}
	log.Info().Int("count", count).Msg("doctor account sync finished")
}

/*
* Fill an empty directory with the seed doctors
* A directory with any profile is left alone
 */
func SeedDirectory(ctx context.Context, doctors DirectorySeeder) error {
	count, err := doctors.Count(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Error checking doctor count")
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range SeedDoctors {
		_, err := doctors.Create(ctx, seed)
		if errors.Is(err, util.ErrPartialProvision) {
			log.Warn().Str("doctor", seed.Name).Msg("seed doctor stored without login")
			continue
		}
		if err != nil {
			log.Error().Err(err).Str("doctor", seed.Name).Msg("Error inserting seed doctor")
			return err
		}
	}
	log.Info().Int("count", len(SeedDoctors)).Msg("doctor directory seeded")
	return nil
}
