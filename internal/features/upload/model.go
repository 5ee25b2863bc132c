package upload

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DataImport is one uploaded workbook. The transfer pipeline reads the raw
// bytes back by id, or picks the most recent upload.
type DataImport struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Weight           int                `json:"weight" bson:"weight"`
	OriginalFilename string             `json:"original_filename" bson:"original_filename"`
	Path             string             `json:"path" bson:"path"`
	Size             int64              `json:"size" bson:"size"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}
