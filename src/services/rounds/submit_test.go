package rounds

import (
	"context"
	"errors"
	"testing"

	"Backend-Consensus/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeLiveReplacer struct {
	filter      bson.M
	replacement models.Response
	upsert      bool
	err         error
}

func (f *fakeLiveReplacer) ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error) {
	f.filter, _ = filter.(bson.M)
	f.replacement, _ = replacement.(models.Response)
	for _, o := range opts {
		if o != nil && o.Upsert != nil && *o.Upsert {
			f.upsert = true
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &mongo.UpdateResult{MatchedCount: 1}, nil
}

type fakeArchiveAppender struct {
	inserted []models.ArchivedResponse
	err      error
}

func (f *fakeArchiveAppender) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, _ := document.(models.ArchivedResponse)
	f.inserted = append(f.inserted, row)
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func TestStoreSubmissionReplacesAndArchives(t *testing.T) {
	formID := primitive.NewObjectID()
	userID := primitive.NewObjectID()
	roundID := primitive.NewObjectID()
	answers := map[string]interface{}{"q1": "lower the budget", "q2": "next quarter"}

	live := &fakeLiveReplacer{}
	archive := &fakeArchiveAppender{}

	err := storeSubmission(context.Background(), formID, userID, roundID,
		"alice@example.com", answers, live, archive)
	require.NoError(t, err)

	// live row replaced in place, keyed by the unique (userId, roundId) pair
	assert.Equal(t, bson.M{"userId": userID, "roundId": roundID}, live.filter)
	assert.True(t, live.upsert)
	assert.Equal(t, answers, live.replacement.Answers)
	assert.Equal(t, formID, live.replacement.FormID)

	// archive row appended with the denormalized email and same answers
	require.Len(t, archive.inserted, 1)
	assert.Equal(t, "alice@example.com", archive.inserted[0].Email)
	assert.Equal(t, answers, archive.inserted[0].Answers)
	assert.Equal(t, roundID, archive.inserted[0].RoundID)
	assert.Equal(t, live.replacement.CreatedAt, archive.inserted[0].CreatedAt)
}

func TestStoreSubmissionSkipsArchiveOnRejectedWrite(t *testing.T) {
	live := &fakeLiveReplacer{err: errors.New("write conflict")}
	archive := &fakeArchiveAppender{}

	err := storeSubmission(context.Background(),
		primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(),
		"bob@example.com", map[string]interface{}{"q1": "no"}, live, archive)

	assert.Error(t, err)
	assert.Empty(t, archive.inserted, "a rejected submission must not be archived")
}

func TestStoreSubmissionArchiveErrorSurfaces(t *testing.T) {
	live := &fakeLiveReplacer{}
	archive := &fakeArchiveAppender{err: errors.New("insert failed")}

	err := storeSubmission(context.Background(),
		primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID(),
		"bob@example.com", map[string]interface{}{"q1": "yes"}, live, archive)

	assert.Error(t, err)
}
