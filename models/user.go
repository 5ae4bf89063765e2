// user.go - Defines the User model for the document store

package models // Declares the package name

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user record can carry. Role is the only authorization
// attribute in the system; everything is a string equality check.
const (
	RoleAdmin    = "admin"
	RoleSurveyor = "surveyor"
	RoleProUser  = "proUser"
)

type User struct { // User struct represents a user document
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"` // Store-assigned id
	Email string             `bson:"email" json:"email"`                 // Unique identity key
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"` // admin/surveyor/proUser or empty
}
