package forms

import (
	"context"
	"errors"

	"Backend-Consensus/src/database"
	"Backend-Consensus/src/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrFormNotFound = errors.New("form not found")
	ErrFormClosed   = errors.New("form not found or closed")
)

// CreateForm inserts the form and opens round 1 seeded with the form's
// questions. A blank join code gets a generated one.
func CreateForm(ctx context.Context, title string, questions []string, allowJoin bool, joinCode string) (*models.FormOverview, error) {
	if joinCode == "" {
		joinCode = uuid.NewString()[:8]
	}

	form := models.Form{
		Title:     title,
		Questions: questions,
		AllowJoin: allowJoin,
		JoinCode:  joinCode,
	}

	res, err := database.FormCollection.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = res.InsertedID.(primitive.ObjectID)

	firstRound := models.Round{
		FormID:      form.ID,
		RoundNumber: 1,
		Questions:   questions,
		IsActive:    true,
	}
	if _, err := database.RoundCollection.InsertOne(ctx, firstRound); err != nil {
		return nil, err
	}

	return &models.FormOverview{
		ID:               form.ID,
		Title:            form.Title,
		Questions:        form.Questions,
		AllowJoin:        form.AllowJoin,
		JoinCode:         form.JoinCode,
		ParticipantCount: 0,
		CurrentRound:     1,
	}, nil
}

// UpdateForm changes title and default questions.
func UpdateForm(ctx context.Context, formID primitive.ObjectID, title string, questions []string) error {
	res, err := database.FormCollection.UpdateOne(ctx,
		bson.M{"_id": formID},
		bson.M{"$set": bson.M{"title": title, "questions": questions}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrFormNotFound
	}
	return nil
}

// DeleteForm removes the form and cascades to its rounds, responses,
// archived responses and unlock grants.
func DeleteForm(ctx context.Context, formID primitive.ObjectID) error {
	res, err := database.FormCollection.DeleteOne(ctx, bson.M{"_id": formID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrFormNotFound
	}

	byForm := bson.M{"formId": formID}
	for _, coll := range []*mongo.Collection{
		database.RoundCollection,
		database.ResponseCollection,
		database.ArchiveCollection,
		database.FormUnlockCollection,
	} {
		if _, err := coll.DeleteMany(ctx, byForm); err != nil {
			return err
		}
	}
	return nil
}

// GetForm loads a form by id.
func GetForm(ctx context.Context, formID primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := database.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

// ListForms returns every form with participant count (distinct
// responders across all rounds) and the current round number, for the
// admin dashboard.
func ListForms(ctx context.Context) ([]models.FormOverview, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := database.FormCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Form
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	result := make([]models.FormOverview, 0, len(items))
	for _, f := range items {
		responders, err := database.ResponseCollection.Distinct(ctx, "userId", bson.M{"formId": f.ID})
		if err != nil {
			return nil, err
		}

		currentRound := 0
		var active models.Round
		err = database.RoundCollection.FindOne(ctx,
			bson.M{"formId": f.ID, "isActive": true}).Decode(&active)
		if err == nil {
			currentRound = active.RoundNumber
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, err
		}

		result = append(result, models.FormOverview{
			ID:               f.ID,
			Title:            f.Title,
			Questions:        f.Questions,
			AllowJoin:        f.AllowJoin,
			JoinCode:         f.JoinCode,
			ParticipantCount: len(responders),
			CurrentRound:     currentRound,
		})
	}
	return result, nil
}

// UnlockForm grants the user access to the form behind the join code.
// Idempotent: an existing grant (or a lost insert race on the unique
// userId+formId index) is reported as already unlocked.
func UnlockForm(ctx context.Context, userID primitive.ObjectID, joinCode string) (alreadyUnlocked bool, err error) {
	var form models.Form
	err = database.FormCollection.FindOne(ctx,
		bson.M{"joinCode": joinCode, "allowJoin": true}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, ErrFormClosed
		}
		return false, err
	}

	_, err = database.FormUnlockCollection.InsertOne(ctx, models.FormUnlock{
		UserID: userID,
		FormID: form.ID,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// MyForms lists the forms the user has unlocked, ordered by id.
func MyForms(ctx context.Context, userID primitive.ObjectID) ([]models.Form, error) {
	cursor, err := database.FormUnlockCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var unlocks []models.FormUnlock
	if err := cursor.All(ctx, &unlocks); err != nil {
		return nil, err
	}

	forms := []models.Form{}
	if len(unlocks) == 0 {
		return forms, nil
	}

	formIDs := make([]primitive.ObjectID, 0, len(unlocks))
	for _, u := range unlocks {
		formIDs = append(formIDs, u.FormID)
	}

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	formCursor, err := database.FormCollection.Find(ctx, bson.M{"_id": bson.M{"$in": formIDs}}, opts)
	if err != nil {
		return nil, err
	}
	defer formCursor.Close(ctx)

	if err := formCursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}
