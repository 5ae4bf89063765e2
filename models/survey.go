// survey.go - Defines the Survey model for the document store

package models // Declares the package name

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Survey struct { // Survey struct represents a survey document
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"` // Store-assigned id
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Query1      string             `bson:"query1" json:"query1"`
	Query2      string             `bson:"query2" json:"query2"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Timestamp   time.Time          `bson:"timestamp,omitempty" json:"timestamp,omitempty"` // Server-assigned at creation
}
