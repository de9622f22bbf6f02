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

const tasksCollection = "tasks"

type TaskRepository struct {
	collection *mongo.Collection
}

type taskDoc struct {
	ID                string     `bson:"id"`
	UserID            string     `bson:"user_id"`
	Title             string     `bson:"title"`
	Description       *string    `bson:"description"`
	Subject           string     `bson:"subject"`
	TaskType          string     `bson:"task_type"`
	Priority          string     `bson:"priority"`
	DueDate           time.Time  `bson:"due_date"`
	DueTime           *string    `bson:"due_time"`
	EstimatedDuration *int       `bson:"estimated_duration"`
	Completed         bool       `bson:"completed"`
	CompletedAt       *time.Time `bson:"completed_at"`
	Color             string     `bson:"color"`
	CreatedAt         time.Time  `bson:"created_at"`
	UpdatedAt         time.Time  `bson:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: database.Collection(tasksCollection)}
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) error {
	_, err := r.collection.InsertOne(ctx, newTaskDoc(task))
	return err
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	query := bson.M{"user_id": userID}
	if filter.Completed != nil {
		query["completed"] = *filter.Completed
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	return decodeTasks(ctx, cursor)
}

func (r *TaskRepository) ListDueBetween(ctx context.Context, userID string, start, end time.Time) ([]domain.Task, error) {
	query := bson.M{
		"user_id":  userID,
		"due_date": bson.M{"$gte": start, "$lte": end},
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	return decodeTasks(ctx, cursor)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (domain.Task, error) {
	var doc taskDoc
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	if err != nil {
		return domain.Task{}, err
	}
	return doc.toDomain(), nil
}

// Update applies the patch as a single $set so the completed/completed_at
// pair can never be split by a concurrent writer.
func (r *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	set := bson.M{"updated_at": patch.UpdatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Subject != nil {
		set["subject"] = *patch.Subject
	}
	if patch.TaskType != nil {
		set["task_type"] = string(*patch.TaskType)
	}
	if patch.Priority != nil {
		set["priority"] = string(*patch.Priority)
	}
	if patch.DueDate != nil {
		set["due_date"] = *patch.DueDate
	}
	if patch.DueTime != nil {
		set["due_time"] = *patch.DueTime
	}
	if patch.EstimatedDuration != nil {
		set["estimated_duration"] = *patch.EstimatedDuration
	}
	if patch.Completed != nil {
		set["completed"] = *patch.Completed
	}
	if patch.CompletedAtSet {
		set["completed_at"] = patch.CompletedAt
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *TaskRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID})
}

func (r *TaskRepository) CountCompleted(ctx context.Context, userID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"user_id": userID, "completed": true})
}

func (r *TaskRepository) CountOverdue(ctx context.Context, userID string, now time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"user_id":   userID,
		"completed": false,
		"due_date":  bson.M{"$lt": now},
	})
}

func (r *TaskRepository) CountUpcoming(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"user_id":   userID,
		"completed": false,
		"due_date":  bson.M{"$gte": from, "$lte": to},
	})
}

func decodeTasks(ctx context.Context, cursor *mongo.Cursor) ([]domain.Task, error) {
	var docs []taskDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, doc.toDomain())
	}
	return tasks, nil
}

func newTaskDoc(task domain.Task) taskDoc {
	return taskDoc{
		ID:                task.ID,
		UserID:            task.UserID,
		Title:             task.Title,
		Description:       task.Description,
		Subject:           task.Subject,
		TaskType:          string(task.TaskType),
		Priority:          string(task.Priority),
		DueDate:           task.DueDate,
		DueTime:           task.DueTime,
		EstimatedDuration: task.EstimatedDuration,
		Completed:         task.Completed,
		CompletedAt:       task.CompletedAt,
		Color:             task.Color,
		CreatedAt:         task.CreatedAt,
		UpdatedAt:         task.UpdatedAt,
	}
}

func (d taskDoc) toDomain() domain.Task {
	return domain.Task{
		ID:                d.ID,
		UserID:            d.UserID,
		Title:             d.Title,
		Description:       d.Description,
		Subject:           d.Subject,
		TaskType:          domain.TaskType(d.TaskType),
		Priority:          domain.Priority(d.Priority),
		DueDate:           d.DueDate,
		DueTime:           d.DueTime,
		EstimatedDuration: d.EstimatedDuration,
		Completed:         d.Completed,
		CompletedAt:       d.CompletedAt,
		Color:             d.Color,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
