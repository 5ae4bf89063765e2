// results.go - Store operation results returned to clients
// These mirror the raw result documents the MongoDB driver reports, with
// the wire field names the frontend already consumes.

package models // Declares the package name

type InsertResult struct { // Result of an insert-one operation
	InsertedID any `json:"insertedId"` // ObjectID of the new document
}

type UpdateResult struct { // Result of an update-one operation
	MatchedCount  int64 `json:"matchedCount"`  // Documents matched by the filter
	ModifiedCount int64 `json:"modifiedCount"` // Documents actually modified
	UpsertedID    any   `json:"upsertedId"`    // ObjectID when the update upserted, else null
}

type DeleteResult struct { // Result of a delete-one operation
	DeletedCount int64 `json:"deletedCount"` // Zero when nothing matched
}
