package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Medication struct {
	ID            primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Code          string             `json:"id" bson:"code"`
	UserID        string             `json:"userId" bson:"userId"`
	Name          string             `json:"name" bson:"name"`
	Dosage        string             `json:"dosage" bson:"dosage"`
	Instructions  string             `json:"instructions" bson:"instructions"`
	Quantity      int                `json:"quantity" bson:"quantity"`
	ReminderTimes []string           `json:"reminderTimes" bson:"reminderTimes"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// DraftMedication is the unpersisted result of video extraction. It pre-fills
// the add-medication form and is only stored once the user confirms it through
// the normal create path. Quantity stays a string because the form field is
// free text until submit.
type DraftMedication struct {
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Instructions string `json:"instructions" bson:"instructions"`
	Quantity     string `json:"quantity" bson:"quantity"`
	ReminderTime string `json:"reminderTime" bson:"reminderTime"`
}
