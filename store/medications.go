package store

import (
	"context"
	"time"

	"snapill/config/db"
	"snapill/models"
	"snapill/util"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MedicationStore is the owner-scoped adapter over the MEDICATIONS
// collection. Every operation filters by userId, so one user can never
// observe or mutate another user's records.
type MedicationStore interface {
	List(ctx context.Context, userId string) ([]models.Medication, error)
	FetchByCode(ctx context.Context, userId string, code string) (*models.Medication, error)
	Create(ctx context.Context, medication *models.Medication) error
	Update(ctx context.Context, userId string, code string, fields bson.M) error
	UpdateQuantity(ctx context.Context, userId string, code string, quantity int) error
	Delete(ctx context.Context, userId string, code string) error
}

var Medications MedicationStore = &mongoMedicationStore{}

type mongoMedicationStore struct{}

func (s *mongoMedicationStore) List(ctx context.Context, userId string) ([]models.Medication, error) {
	collection := db.OpenCollections(util.MedicationCollection)
	medications := []models.Medication{}
	if err := db.FindAll(ctx, collection, bson.M{"userId": userId}, &medications); err != nil {
		return nil, err
	}
	return medications, nil
}

func (s *mongoMedicationStore) FetchByCode(ctx context.Context, userId string, code string) (*models.Medication, error) {
	collection := db.OpenCollections(util.MedicationCollection)
	var medication models.Medication
	if err := db.FindOne(ctx, collection, bson.M{"userId": userId, "code": code}, &medication); err != nil {
		return nil, err
	}
	return &medication, nil
}

func (s *mongoMedicationStore) Create(ctx context.Context, medication *models.Medication) error {
	if medication.Code == "" {
		medication.Code = uuid.NewString()
	}
	now := time.Now()
	medication.CreatedAt = now
	medication.UpdatedAt = now

	collection := db.OpenCollections(util.MedicationCollection)
	_, err := db.CreateOne(ctx, collection, medication)
	return err
}

func (s *mongoMedicationStore) Update(ctx context.Context, userId string, code string, fields bson.M) error {
	fields["updatedAt"] = time.Now()
	collection := db.OpenCollections(util.MedicationCollection)
	updated, err := db.UpdateOne(ctx, collection, bson.M{"userId": userId, "code": code}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if updated.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (s *mongoMedicationStore) UpdateQuantity(ctx context.Context, userId string, code string, quantity int) error {
	return s.Update(ctx, userId, code, bson.M{"quantity": quantity})
}

// Delete removes the record if the caller owns it. Deleting a code that no
// longer exists deletes nothing and is treated as success.
func (s *mongoMedicationStore) Delete(ctx context.Context, userId string, code string) error {
	collection := db.OpenCollections(util.MedicationCollection)
	_, err := db.DeleteOne(ctx, collection, bson.M{"userId": userId, "code": code})
	return err
}
