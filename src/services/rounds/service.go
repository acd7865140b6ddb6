package rounds

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"Backend-Consensus/src/database"
	"Backend-Consensus/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNoActiveRound = errors.New("no active round")
	ErrNoQuestions   = errors.New("no questions found for this round")
	ErrNoResponses   = errors.New("no responses to summarize")
	ErrNoResponse    = errors.New("no response found")
	ErrFormNotFound  = errors.New("form not found")
)

// Broadcaster pushes a summary to every live subscriber. Failures are
// absorbed inside the implementation, never surfaced here.
type Broadcaster interface {
	BroadcastSummary(summary string)
}

// SummaryCache persists the most recently pushed summary out-of-band so
// feedback submissions can snapshot it later.
type SummaryCache interface {
	Store(ctx context.Context, text string) error
	Latest(ctx context.Context) string
}

// Summarizer is the external language-model call.
type Summarizer interface {
	Summarize(ctx context.Context, model, prompt string) (string, error)
}

const summarizeTimeout = 60 * time.Second

// Service ดูแล round lifecycle ของแต่ละฟอร์ม: active round เดียวต่อฟอร์ม,
// การ submit/replace response, การเก็บ synthesis และการเปิด round ถัดไป
type Service struct {
	hub   Broadcaster
	cache SummaryCache
	llm   Summarizer
}

func NewService(hub Broadcaster, cache SummaryCache, llm Summarizer) *Service {
	return &Service{hub: hub, cache: cache, llm: llm}
}

// ActiveRound returns the form's single active round.
func (s *Service) ActiveRound(ctx context.Context, formID primitive.ObjectID) (*models.Round, error) {
	var round models.Round
	err := database.RoundCollection.FindOne(ctx,
		bson.M{"formId": formID, "isActive": true}).Decode(&round)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoActiveRound
		}
		return nil, err
	}
	return &round, nil
}

// GetActiveRound returns the active round as shown to participants:
// effective questions (round override, else form default) plus the
// synthesis of the immediately preceding round (empty if none).
func (s *Service) GetActiveRound(ctx context.Context, formID primitive.ObjectID) (*models.ActiveRoundView, error) {
	active, err := s.ActiveRound(ctx, formID)
	if err != nil {
		return nil, err
	}

	form, err := s.findForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	prevSynthesis := ""
	var prev models.Round
	err = database.RoundCollection.FindOne(ctx,
		bson.M{"formId": formID, "roundNumber": active.RoundNumber - 1}).Decode(&prev)
	if err == nil {
		prevSynthesis = prev.Synthesis
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return &models.ActiveRoundView{
		ID:                     active.ID,
		RoundNumber:            active.RoundNumber,
		Questions:              effectiveQuestions(active.Questions, form.Questions),
		PreviousRoundSynthesis: prevSynthesis,
	}, nil
}

// liveReplacer and archiveAppender are the two collection operations
// submission needs; *mongo.Collection satisfies both.
type liveReplacer interface {
	ReplaceOne(ctx context.Context, filter interface{}, replacement interface{}, opts ...*options.ReplaceOptions) (*mongo.UpdateResult, error)
}

type archiveAppender interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// SubmitResponse stores the user's answers for the active round. A
// resubmission replaces the previous live response in place (upsert on
// the unique userId+roundId index, so concurrent submissions resolve to
// exactly one surviving row); every attempt is also archived.
func (s *Service) SubmitResponse(ctx context.Context, formID, userID primitive.ObjectID, email string, answers map[string]interface{}) error {
	active, err := s.ActiveRound(ctx, formID)
	if err != nil {
		return err
	}
	return storeSubmission(ctx, formID, userID, active.ID, email, answers,
		database.ResponseCollection, database.ArchiveCollection)
}

// storeSubmission upserts the single live response for (user, round) and
// appends the archive row. The archive insert only runs after the live
// write succeeded, so the archive never records a submission that was
// not accepted.
func storeSubmission(ctx context.Context, formID, userID, roundID primitive.ObjectID, email string, answers map[string]interface{}, live liveReplacer, archive archiveAppender) error {
	now := time.Now().UTC()

	_, err := live.ReplaceOne(ctx,
		bson.M{"userId": userID, "roundId": roundID},
		models.Response{
			FormID:    formID,
			UserID:    userID,
			RoundID:   roundID,
			Answers:   answers,
			CreatedAt: now,
		},
		options.Replace().SetUpsert(true))
	if err != nil {
		return err
	}

	_, err = archive.InsertOne(ctx, models.ArchivedResponse{
		FormID:    formID,
		UserID:    userID,
		Email:     email,
		Answers:   answers,
		RoundID:   roundID,
		CreatedAt: now,
	})
	return err
}

// HasSubmitted reports whether the user already has a live response for
// the active round. No active round means "not submitted", not an error.
func (s *Service) HasSubmitted(ctx context.Context, formID, userID primitive.ObjectID) (bool, error) {
	active, err := s.ActiveRound(ctx, formID)
	if err != nil {
		if errors.Is(err, ErrNoActiveRound) {
			return false, nil
		}
		return false, err
	}

	count, err := database.ResponseCollection.CountDocuments(ctx,
		bson.M{"userId": userID, "roundId": active.ID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MyResponse returns the user's live answers for the active round.
func (s *Service) MyResponse(ctx context.Context, formID, userID primitive.ObjectID) (map[string]interface{}, error) {
	active, err := s.ActiveRound(ctx, formID)
	if err != nil {
		return nil, err
	}

	var resp models.Response
	err = database.ResponseCollection.FindOne(ctx,
		bson.M{"userId": userID, "roundId": active.ID}).Decode(&resp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoResponse
		}
		return nil, err
	}
	return resp.Answers, nil
}

// PushSummary stores the trimmed text as the active round's synthesis,
// persists the side-cache and notifies live subscribers. The broadcast
// is fire-and-forget: a dead subscriber never fails the request.
func (s *Service) PushSummary(ctx context.Context, formID primitive.ObjectID, text string) error {
	summary := strings.TrimSpace(text)

	active, err := s.ActiveRound(ctx, formID)
	if err != nil {
		return err
	}

	_, err = database.RoundCollection.UpdateOne(ctx,
		bson.M{"_id": active.ID},
		bson.M{"$set": bson.M{"synthesis": summary}})
	if err != nil {
		return err
	}

	if err := s.cache.Store(ctx, summary); err != nil {
		log.Println("⚠️ summary cache store failed:", err)
	}

	s.hub.BroadcastSummary(summary)
	return nil
}

// GenerateSummary builds the synthesis prompt from the active round's
// questions and responses and asks the language model. The result is
// returned, not persisted — the admin pushes it explicitly.
func (s *Service) GenerateSummary(ctx context.Context, formID primitive.ObjectID, model string) (string, error) {
	active, err := s.ActiveRound(ctx, formID)
	if err != nil {
		return "", err
	}

	questions := active.Questions
	if len(questions) == 0 {
		form, err := s.findForm(ctx, formID)
		if err != nil && !errors.Is(err, ErrFormNotFound) {
			return "", err
		}
		if form != nil {
			questions = form.Questions
		}
	}
	if len(questions) == 0 {
		return "", ErrNoQuestions
	}

	responses, err := s.roundResponses(ctx, active.ID)
	if err != nil {
		return "", err
	}
	if len(responses) == 0 {
		return "", ErrNoResponses
	}

	prompt := BuildSummaryPrompt(questions, responses)

	// bounded call, no locks held while waiting
	llmCtx, cancel := context.WithTimeout(ctx, summarizeTimeout)
	defer cancel()
	return s.llm.Summarize(llmCtx, model, prompt)
}

// OpenNextRound closes the current active round (if any) and opens its
// successor. Round number = highest existing + 1; questions fall back
// override → previous round → form default; the previous synthesis is
// carried forward so the admin keeps context during the new round.
// The unique (formId, roundNumber) index turns a concurrent advancement
// into a duplicate-key error, which we absorb by recomputing and
// retrying, so no duplicate round numbers can ever land.
func (s *Service) OpenNextRound(ctx context.Context, formID primitive.ObjectID, override []string) (*models.Round, error) {
	form, err := s.findForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 3; attempt++ {
		last, err := s.lastRound(ctx, formID)
		if err != nil {
			return nil, err
		}

		_, err = database.RoundCollection.UpdateMany(ctx,
			bson.M{"formId": formID, "isActive": true},
			bson.M{"$set": bson.M{"isActive": false}})
		if err != nil {
			return nil, err
		}

		next := models.Round{
			FormID:      formID,
			RoundNumber: nextRoundNumber(last),
			Questions:   nextRoundQuestions(override, last, form),
			Synthesis:   carriedSynthesis(last),
			IsActive:    true,
		}

		res, err := database.RoundCollection.InsertOne(ctx, next)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue // lost the race, recompute the number
			}
			return nil, err
		}
		next.ID = res.InsertedID.(primitive.ObjectID)
		return &next, nil
	}

	return nil, errors.New("round advancement contention, try again")
}

// ListRounds returns every round of the form ascending by round number,
// each with its effective question list.
func (s *Service) ListRounds(ctx context.Context, formID primitive.ObjectID) ([]models.Round, error) {
	form, err := s.findForm(ctx, formID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "roundNumber", Value: 1}})
	cursor, err := database.RoundCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rounds []models.Round
	if err := cursor.All(ctx, &rounds); err != nil {
		return nil, err
	}
	for i := range rounds {
		rounds[i].Questions = effectiveQuestions(rounds[i].Questions, form.Questions)
	}
	return rounds, nil
}

// FormResponses returns the form's live responses — all rounds, or only
// the active one — annotated with submitter email and timestamp.
func (s *Service) FormResponses(ctx context.Context, formID primitive.ObjectID, allRounds bool) ([]models.ResponseView, error) {
	filter := bson.M{"formId": formID}
	if !allRounds {
		active, err := s.ActiveRound(ctx, formID)
		if err != nil {
			if !errors.Is(err, ErrNoActiveRound) {
				return nil, err
			}
		} else {
			filter["roundId"] = active.ID
		}
	}

	responses, err := s.findResponses(ctx, filter)
	if err != nil {
		return nil, err
	}

	emails, err := s.userEmails(ctx, responses)
	if err != nil {
		return nil, err
	}

	views := make([]models.ResponseView, 0, len(responses))
	for _, r := range responses {
		views = append(views, models.ResponseView{
			Answers:   r.Answers,
			Email:     emails[r.UserID],
			Timestamp: r.CreatedAt.Format(time.RFC3339),
			RoundID:   r.RoundID,
		})
	}
	return views, nil
}

// ArchivedResponses returns every archived submission of the form, in
// submission order. Emails come from the archive itself so entries of
// deleted accounts keep their submitter.
func (s *Service) ArchivedResponses(ctx context.Context, formID primitive.ObjectID) ([]models.ResponseView, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.ArchiveCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var archived []models.ArchivedResponse
	if err := cursor.All(ctx, &archived); err != nil {
		return nil, err
	}

	views := make([]models.ResponseView, 0, len(archived))
	for _, a := range archived {
		views = append(views, models.ResponseView{
			Answers:   a.Answers,
			Email:     a.Email,
			Timestamp: a.CreatedAt.Format(time.RFC3339),
			RoundID:   a.RoundID,
		})
	}
	return views, nil
}

// RoundsWithResponses returns every round ascending with its responses
// nested, for the admin review page.
func (s *Service) RoundsWithResponses(ctx context.Context, formID primitive.ObjectID) ([]models.RoundWithResponses, error) {
	opts := options.Find().SetSort(bson.D{{Key: "roundNumber", Value: 1}})
	cursor, err := database.RoundCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rounds []models.Round
	if err := cursor.All(ctx, &rounds); err != nil {
		return nil, err
	}

	out := make([]models.RoundWithResponses, 0, len(rounds))
	for _, r := range rounds {
		responses, err := s.roundResponses(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		emails, err := s.userEmails(ctx, responses)
		if err != nil {
			return nil, err
		}

		views := make([]models.ResponseView, 0, len(responses))
		for _, resp := range responses {
			views = append(views, models.ResponseView{
				Answers:   resp.Answers,
				Email:     emails[resp.UserID],
				Timestamp: resp.CreatedAt.Format(time.RFC3339),
			})
		}
		out = append(out, models.RoundWithResponses{
			ID:          r.ID,
			RoundNumber: r.RoundNumber,
			Synthesis:   r.Synthesis,
			IsActive:    r.IsActive,
			Responses:   views,
		})
	}
	return out, nil
}

// Synthesise builds the naive HTML concatenation of the active round's
// responses. No external call.
func (s *Service) Synthesise(ctx context.Context, formID primitive.ObjectID) (string, error) {
	active, err := s.ActiveRound(ctx, formID)
	if err != nil {
		return "", err
	}

	responses, err := s.roundResponses(ctx, active.ID)
	if err != nil {
		return "", err
	}
	if len(responses) == 0 {
		return "No responses yet", nil
	}
	return SynthesiseHTML(responses), nil
}

// --------- internal helpers ---------

func (s *Service) findForm(ctx context.Context, formID primitive.ObjectID) (*models.Form, error) {
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

// lastRound returns the highest-numbered round of the form, nil if none.
func (s *Service) lastRound(ctx context.Context, formID primitive.ObjectID) (*models.Round, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "roundNumber", Value: -1}})
	var last models.Round
	err := database.RoundCollection.FindOne(ctx, bson.M{"formId": formID}, opts).Decode(&last)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &last, nil
}

func (s *Service) roundResponses(ctx context.Context, roundID primitive.ObjectID) ([]models.Response, error) {
	return s.findResponses(ctx, bson.M{"roundId": roundID})
}

func (s *Service) findResponses(ctx context.Context, filter bson.M) ([]models.Response, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := database.ResponseCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []models.Response
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	return responses, nil
}

// userEmails resolves submitter emails for a batch of responses.
func (s *Service) userEmails(ctx context.Context, responses []models.Response) (map[primitive.ObjectID]string, error) {
	ids := make([]primitive.ObjectID, 0, len(responses))
	seen := make(map[primitive.ObjectID]struct{}, len(responses))
	for _, r := range responses {
		if _, ok := seen[r.UserID]; ok {
			continue
		}
		seen[r.UserID] = struct{}{}
		ids = append(ids, r.UserID)
	}

	emails := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return emails, nil
	}

	cursor, err := database.UserCollection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		emails[u.ID] = u.Email
	}
	return emails, nil
}
