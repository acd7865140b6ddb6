package feedback

import (
	"context"
	"time"

	"Backend-Consensus/src/database"
	"Backend-Consensus/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Submit stores a feedback entry with the summary snapshot that was
// cached at submission time, and flags the user as having submitted.
// Write-once per submission; a user may submit many times.
func Submit(ctx context.Context, userID primitive.ObjectID, accuracy, influence, furtherThoughts, usability, summarySnapshot string) error {
	entry := models.Feedback{
		UserID:          userID,
		Accuracy:        accuracy,
		Influence:       influence,
		FurtherThoughts: furtherThoughts,
		Usability:       usability,
		Summary:         summarySnapshot,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := database.FeedbackCollection.InsertOne(ctx, entry); err != nil {
		return err
	}

	_, err := database.UserCollection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"hasSubmittedFeedback": true}})
	return err
}

// ListAll returns every feedback entry newest first, annotated with the
// author's email.
func ListAll(ctx context.Context) ([]models.FeedbackView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := database.FeedbackCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.Feedback
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	views := make([]models.FeedbackView, 0, len(entries))
	for _, e := range entries {
		var user models.User
		email := ""
		if err := database.UserCollection.FindOne(ctx, bson.M{"_id": e.UserID}).Decode(&user); err == nil {
			email = user.Email
		}
		views = append(views, models.FeedbackView{
			Accuracy:        e.Accuracy,
			Influence:       e.Influence,
			Usability:       e.Usability,
			FurtherThoughts: e.FurtherThoughts,
			Summary:         e.Summary,
			Email:           email,
			Timestamp:       e.CreatedAt.Format(time.RFC3339),
		})
	}
	return views, nil
}
