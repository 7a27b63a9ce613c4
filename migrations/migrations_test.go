package migrations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func updated(n int32) bson.D {
	return mtest.CreateSuccessResponse(
		bson.E{Key: "n", Value: n},
		bson.E{Key: "nModified", Value: n},
	)
}

func TestRun(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("applies all in order", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			updated(2), updated(0), updated(0), updated(1), updated(1),
			mtest.CreateSuccessResponse(),
		)
		require.NoError(mt, Run(ctx, mt.DB))

		started := mt.GetAllStartedEvents()
		require.Len(mt, started, 7)
		assert.Equal(mt, "createIndexes", started[0].CommandName)
		assert.Equal(mt, "update", started[1].CommandName)
		assert.Equal(mt, "createIndexes", started[6].CommandName)
	})

	mt.Run("stops at the first failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error",
		}))
		err := Run(ctx, mt.DB)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "001_add_username_index")
		assert.Len(mt, mt.GetAllStartedEvents(), 1)
	})
}

func TestBackfillDoctorSchedule_OnlyMissingFields(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters on $exists", func(mt *mtest.T) {
		mt.AddMockResponses(updated(0), updated(0), updated(0), updated(0), updated(0))
		require.NoError(mt, BackfillDoctorSchedule(context.Background(), mt.DB))

		first := mt.GetStartedEvent()
		require.NotNil(mt, first)
		updates := first.Command.Lookup("updates").Array()
		doc := updates.Index(0).Value().Document()
		assert.Equal(mt, false, doc.Lookup("q", "isAvailable", "$exists").Boolean())
		assert.Equal(mt, true, doc.Lookup("u", "$set", "isAvailable").Boolean())
		assert.Equal(mt, true, doc.Lookup("multi").Boolean())
	})
}
