// users.go - Document-store operations for the users collection

package database // Declares the package name

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"go-survey-backend/models" // Result and user types
)

// Users - Wraps the users collection
type Users struct {
	c *mongo.Collection
}

// List - Returns every user document
func (u *Users) List(ctx context.Context) ([]models.User, error) {
	cur, err := u.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	out := []models.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByEmail - Looks up a user by email; returns nil without error when absent
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := u.c.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) { // Absent is not an error here
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert - Stores the registration payload as submitted
func (u *Users) Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error) {
	res, err := u.c.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &models.InsertResult{InsertedID: res.InsertedID}, nil
}

// UpdateRoleByID - Sets the role field on the user with the given id
func (u *Users) UpdateRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
	res, err := u.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount, UpsertedID: res.UpsertedID}, nil
}

// UpdateRoleByEmail - Sets the role field on the user with the given email
func (u *Users) UpdateRoleByEmail(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	res, err := u.c.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return nil, err
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount, UpsertedID: res.UpsertedID}, nil
}

// DeleteByID - Removes the user with the given id; deletedCount reports the effect
func (u *Users) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	res, err := u.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
