package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const activitiesCollection = "activities"

type ActivityRepository struct {
	collection *mongo.Collection
}

type activityDoc struct {
	ID            string         `bson:"id"`
	UserID        string         `bson:"user_id"`
	Title         string         `bson:"title"`
	Description   *string        `bson:"description"`
	ActivityType  string         `bson:"activity_type"`
	StartDatetime time.Time      `bson:"start_datetime"`
	EndDatetime   time.Time      `bson:"end_datetime"`
	Location      *string        `bson:"location"`
	Recurrence    *recurrenceDoc `bson:"recurrence"`
	Color         string         `bson:"color"`
	CreatedAt     time.Time      `bson:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at"`
}

// recurrenceDoc is stored verbatim; nothing reads it back for expansion.
type recurrenceDoc struct {
	Frequency  string  `bson:"frequency"`
	Interval   int     `bson:"interval"`
	DaysOfWeek []int   `bson:"days_of_week"`
	EndDate    *string `bson:"end_date"`
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)

func NewActivityRepository(database *mongo.Database) *ActivityRepository {
	return &ActivityRepository{collection: database.Collection(activitiesCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, activity domain.Activity) error {
	_, err := r.collection.InsertOne(ctx, newActivityDoc(activity))
	return err
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]domain.Activity, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "start_datetime", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	return decodeActivities(ctx, cursor)
}

func (r *ActivityRepository) ListStartingBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Activity, error) {
	query := bson.M{
		"user_id":        userID,
		"start_datetime": bson.M{"$gte": start, "$lte": end},
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	return decodeActivities(ctx, cursor)
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (domain.Activity, error) {
	var doc activityDoc
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	if err != nil {
		return domain.Activity{}, err
	}
	return doc.toDomain(), nil
}

func (r *ActivityRepository) Update(ctx context.Context, id string, patch domain.ActivityPatch) error {
	set := bson.M{"updated_at": patch.UpdatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.ActivityType != nil {
		set["activity_type"] = string(*patch.ActivityType)
	}
	if patch.StartDatetime != nil {
		set["start_datetime"] = *patch.StartDatetime
	}
	if patch.EndDatetime != nil {
		set["end_datetime"] = *patch.EndDatetime
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Recurrence != nil {
		set["recurrence"] = newRecurrenceDoc(patch.Recurrence)
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *ActivityRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

func decodeActivities(ctx context.Context, cursor *mongo.Cursor) ([]domain.Activity, error) {
	var docs []activityDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(docs))
	for _, doc := range docs {
		activities = append(activities, doc.toDomain())
	}
	return activities, nil
}

func newActivityDoc(activity domain.Activity) activityDoc {
	return activityDoc{
		ID:            activity.ID,
		UserID:        activity.UserID,
		Title:         activity.Title,
		Description:   activity.Description,
		ActivityType:  string(activity.ActivityType),
		StartDatetime: activity.StartDatetime,
		EndDatetime:   activity.EndDatetime,
		Location:      activity.Location,
		Recurrence:    newRecurrenceDoc(activity.Recurrence),
		Color:         activity.Color,
		CreatedAt:     activity.CreatedAt,
		UpdatedAt:     activity.UpdatedAt,
	}
}

func newRecurrenceDoc(recurrence *domain.RecurrencePattern) *recurrenceDoc {
	if recurrence == nil {
		return nil
	}
	return &recurrenceDoc{
		Frequency:  string(recurrence.Frequency),
		Interval:   recurrence.Interval,
		DaysOfWeek: recurrence.DaysOfWeek,
		EndDate:    recurrence.EndDate,
	}
}

func (d activityDoc) toDomain() domain.Activity {
	activity := domain.Activity{
		ID:            d.ID,
		UserID:        d.UserID,
		Title:         d.Title,
		Description:   d.Description,
		ActivityType:  domain.ActivityType(d.ActivityType),
		StartDatetime: d.StartDatetime,
		EndDatetime:   d.EndDatetime,
		Location:      d.Location,
		Color:         d.Color,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}

	if d.Recurrence != nil {
		activity.Recurrence = &domain.RecurrencePattern{
			Frequency:  domain.RecurrenceFrequency(d.Recurrence.Frequency),
			Interval:   d.Recurrence.Interval,
			DaysOfWeek: d.Recurrence.DaysOfWeek,
			EndDate:    d.Recurrence.EndDate,
		}
	}

	return activity
}
