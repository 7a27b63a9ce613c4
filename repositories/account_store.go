package repositories

import (
	"context"
	"errors"
	"fmt"

	"ClinicDesk/config/db"
	"ClinicDesk/models"
	"ClinicDesk/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AccountStore struct {
	coll *mongo.Collection
}

func NewAccountStore(coll *mongo.Collection) *AccountStore {
	return &AccountStore{coll: coll}
}

func (s *AccountStore) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	var account models.Account
	err := db.FindOne(ctx, s.coll, bson.M{"username": username}, &account)
	if errors.Is(err, db.ErrNoDocument) {
		return models.Account{}, util.ErrUserNotFound
	}
	return account, err
}

func (s *AccountStore) FindByID(ctx context.Context, id string) (models.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Account{}, util.ErrUserNotFound
	}
	var account models.Account
	err = db.FindOne(ctx, s.coll, bson.M{"_id": oid}, &account)
	if errors.Is(err, db.ErrNoDocument) {
		return models.Account{}, util.ErrUserNotFound
	}
	return account, err
}

/*
* Insert the account and set its generated id
* A unique index violation is reported as a duplicate identifier
 */
func (s *AccountStore) Create(ctx context.Context, account *models.Account) error {
	res, err := db.CreateOne(ctx, s.coll, account)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", util.ErrDuplicateIdentifier, account.Username)
	}
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

// UpdatePassword overwrites the hash; matched is false when no account has the id.
func (s *AccountStore) UpdatePassword(ctx context.Context, id string, hash string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}
	res, err := db.UpdateOne(ctx, s.coll, bson.M{"_id": oid}, bson.M{"$set": bson.M{"password": hash}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *AccountStore) List(ctx context.Context) ([]models.AccountSummary, error) {
	accounts := []models.AccountSummary{}
	opts := options.Find().SetProjection(bson.M{"username": 1, "role": 1})
	if err := db.FindAll(ctx, s.coll, nil, &accounts, opts); err != nil {
		return nil, err
	}
	return accounts, nil
}
