// handlers_test.go - Shared fakes and helpers for handler tests
// Run with: go test ./...

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"go-survey-backend/auth"
	"go-survey-backend/models"
)

const testSecret = "test-secret" // Signing secret shared by all handler tests

func init() {
	gin.SetMode(gin.TestMode)
}

// newToken - Issues a valid token for the given email
func newToken(t *testing.T, email string) string {
	t.Helper()
	token, err := auth.CreateAccessToken(email, testSecret, auth.TokenTTL)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

// doJSON - Performs a request with an optional JSON body and bearer token
func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		buf = bytes.NewBuffer(b)
	} else {
		buf = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// fakeUserStore - In-memory UserStore
type fakeUserStore struct {
	users []models.User
	err   error // When set, every call fails with it
}

func (f *fakeUserStore) List(ctx context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	user := models.User{ID: primitive.NewObjectID()}
	user.Email, _ = doc["email"].(string)
	user.Name, _ = doc["name"].(string)
	user.Role, _ = doc["role"].(string)
	f.users = append(f.users, user)
	return &models.InsertResult{InsertedID: user.ID}, nil
}

func (f *fakeUserStore) UpdateRoleByID(ctx context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i].Role = role
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &models.UpdateResult{}, nil
}

func (f *fakeUserStore) UpdateRoleByEmail(ctx context.Context, email, role string) (*models.UpdateResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			f.users[i].Role = role
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	return &models.UpdateResult{}, nil
}

func (f *fakeUserStore) DeleteByID(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return &models.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &models.DeleteResult{DeletedCount: 0}, nil
}

// fakeSurveyStore - In-memory SurveyStore
type fakeSurveyStore struct {
	surveys map[primitive.ObjectID]models.Survey
}

func newFakeSurveyStore() *fakeSurveyStore {
	return &fakeSurveyStore{surveys: map[primitive.ObjectID]models.Survey{}}
}

func (f *fakeSurveyStore) List(ctx context.Context) ([]models.Survey, error) {
	out := []models.Survey{}
	for _, s := range f.surveys {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSurveyStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Survey, error) {
	s, ok := f.surveys[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSurveyStore) Insert(ctx context.Context, survey models.Survey) (*models.InsertResult, error) {
	survey.ID = primitive.NewObjectID()
	f.surveys[survey.ID] = survey
	return &models.InsertResult{InsertedID: survey.ID}, nil
}

func (f *fakeSurveyStore) Upsert(ctx context.Context, id primitive.ObjectID, survey models.Survey) (*models.UpdateResult, error) {
	existing, matched := f.surveys[id]
	survey.ID = id
	if matched {
		survey.Timestamp = existing.Timestamp // $set never touches the timestamp
		f.surveys[id] = survey
		return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
	}
	f.surveys[id] = survey
	return &models.UpdateResult{UpsertedID: id}, nil
}

// fakeDocStore - In-memory DocumentStore
type fakeDocStore struct {
	docs []bson.M
	err  error
}

func (f *fakeDocStore) List(ctx context.Context) ([]bson.M, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func (f *fakeDocStore) Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := primitive.NewObjectID()
	m := bson.M{"_id": id}
	for k, v := range doc {
		m[k] = v
	}
	f.docs = append(f.docs, m)
	return &models.InsertResult{InsertedID: id}, nil
}

// fakeVoteStore - In-memory VoteStore recording the filter it was asked for
type fakeVoteStore struct {
	docs       []bson.M
	lastFilter string
}

func (f *fakeVoteStore) List(ctx context.Context, voterEmail string) ([]bson.M, error) {
	f.lastFilter = voterEmail
	if voterEmail == "" {
		return f.docs, nil
	}
	out := []bson.M{}
	for _, d := range f.docs {
		if d["voterEmail"] == voterEmail {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeVoteStore) Insert(ctx context.Context, doc map[string]any) (*models.InsertResult, error) {
	id := primitive.NewObjectID()
	m := bson.M{"_id": id}
	for k, v := range doc {
		m[k] = v
	}
	f.docs = append(f.docs, m)
	return &models.InsertResult{InsertedID: id}, nil
}
