package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IntakeSession tracks one captured video through upload, extraction and the
// resulting draft. A failed extraction moves the session back to the uploaded
// state so the same video URL can be resubmitted without re-uploading.
type IntakeSession struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code"`
	UserID    string             `json:"userId" bson:"userId"`
	State     string             `json:"state" bson:"state"`
	VideoURL  string             `json:"videoUrl" bson:"videoUrl"`
	FileID    string             `json:"fileId" bson:"fileId"`
	Draft     *DraftMedication   `json:"draft,omitempty" bson:"draft,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
