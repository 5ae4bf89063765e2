// documents.go - Free-form document stores (votes, comments, reports, payments)
// These collections take whatever the client submits and hand it back as-is.

package database // Declares the package name

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"go-survey-backend/models"
)

// Documents - Append-only store over a single collection
type Documents struct {
	c *mongo.Collection
}

// List - Returns every document in the collection
func (d *Documents) List(ctx context.Context) ([]bson.M, error) {
	cur, err := d.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert - Stores the submitted payload unmodified
func (d *Documents) Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error) {
	res, err := d.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: res.InsertedID}, nil
}

// Votes - Append-only store for votes, filterable by voter email
type Votes struct {
	c *mongo.Collection
}

// List - Returns vote documents, restricted to one voter when email is non-empty
func (v *Votes) List(ctx context.Context, voterEmail string) ([]bson.M, error) {
	filter := bson.M{}
	if voterEmail != "" {
		filter["voterEmail"] = voterEmail
	}
	cur, err := v.c.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert - Stores the submitted vote unmodified
func (v *Votes) Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error) {
	res, err := v.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: res.InsertedID}, nil
}
