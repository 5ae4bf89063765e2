// database.go - Handles the MongoDB connection and collection setup

package database // Declares the package name

import ( // Import required packages
	"context"

	"go.mongodb.org/mongo-driver/bson"          // BSON documents for index keys
	"go.mongodb.org/mongo-driver/mongo"         // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options" // Client and index options
)

// Collection names inside the survey database
const (
	usersCollection    = "users"
	surveyCollection   = "survey"
	voteCollection     = "vote"
	paymentsCollection = "payments"
	commentCollection  = "comment"
	reportCollection   = "report"
)

// Store - Holds the long-lived client and database handle.
// Constructed once at startup and injected into handlers.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect - Opens the MongoDB connection, verifies it, and prepares indexes
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri)) // Open connection
	if err != nil {                                                   // If error, return it
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil { // Verify connection
		return nil, err
	}
	db := client.Database(dbName)

	// Unique index on users.email; registration still does a check-then-insert
	// for its existing-user message, but concurrent duplicates lose here.
	_, err = db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	return &Store{client: client, db: db}, nil
}

// Close - Disconnects the underlying client
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Users - Store for the users collection
func (s *Store) Users() *Users {
	return &Users{c: s.db.Collection(usersCollection)}
}

// Surveys - Store for the survey collection
func (s *Store) Surveys() *Surveys {
	return &Surveys{c: s.db.Collection(surveyCollection)}
}

// Votes - Store for the vote collection
func (s *Store) Votes() *Votes {
	return &Votes{c: s.db.Collection(voteCollection)}
}

// Comments - Free-form store for the comment collection
func (s *Store) Comments() *Documents {
	return &Documents{c: s.db.Collection(commentCollection)}
}

// Reports - Free-form store for the report collection
func (s *Store) Reports() *Documents {
	return &Documents{c: s.db.Collection(reportCollection)}
}

// Payments - Free-form store for the payments collection
func (s *Store) Payments() *Documents {
	return &Documents{c: s.db.Collection(paymentsCollection)}
}
