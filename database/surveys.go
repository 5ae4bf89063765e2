// surveys.go - Document-store operations for the survey collection

package database // Declares the package name

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"go-survey-backend/models"
)

// Surveys - Wraps the survey collection
type Surveys struct {
	c *mongo.Collection
}

// List - Returns every survey document
func (s *Surveys) List(ctx context.Context) ([]models.Survey, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []models.Survey{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID - Looks up a survey by id; returns nil without error when absent
func (s *Surveys) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	var survey models.Survey
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&survey)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// Insert - Stores a new survey (timestamp already assigned by the handler)
func (s *Surveys) Insert(ctx context.Context, survey models.Survey) (*models.InsertResult, error) {
	res, err := s.c.InsertOne(ctx, survey)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: res.InsertedID}, nil
}

// Upsert - Replaces the editable fields of the survey with the given id,
// inserting a new document when the id does not exist.
func (s *Surveys) Upsert(ctx context.Context, id primitive.ObjectID, survey models.Survey) (*models.UpdateResult, error) {
	update := bson.M{"$set": bson.M{
		"name":        survey.Name,
		"category":    survey.Category,
		"query1":      survey.Query1,
		"query2":      survey.Query2,
		"description": survey.Description,
		"image":       survey.Image,
	}}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount, UpsertedID: res.UpsertedID}, nil
}
