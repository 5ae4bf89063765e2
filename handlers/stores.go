// stores.go - Store and payment-processor interfaces the handlers depend on
// The database package provides the real implementations; tests use fakes.

package handlers // Declares the package name

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-survey-backend/models"
)

// UserStore - Operations on the users collection
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error)
	UpdateRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error)
	UpdateRoleByEmail(ctx context.Context, email, role string) (*models.UpdateResult, error)
	DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// SurveyStore - Operations on the survey collection
type SurveyStore interface {
	List(ctx context.Context) ([]models.Survey, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error)
	Insert(ctx context.Context, survey models.Survey) (*models.InsertResult, error)
	Upsert(ctx context.Context, id primitive.ObjectID, survey models.Survey) (*models.UpdateResult, error)
}

// VoteStore - Append-only votes, filterable by voter email
type VoteStore interface {
	List(ctx context.Context, voterEmail string) ([]bson.M, error)
	Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error)
}

// DocumentStore - Append-only free-form collections (comments, reports, payments)
type DocumentStore interface {
	List(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error)
}

// IntentCreator - The one call the payment bridge makes to the processor
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64) (string, error)
}
