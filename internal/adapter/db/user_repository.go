package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"studyplanner/internal/core/domain"
	"studyplanner/internal/core/ports"
)

const usersCollection = "users"

type UserRepository struct {
	collection *mongo.Collection
}

// userDoc is the stored shape. Documents are keyed by the string `id`
// field, not mongo's native _id.
type userDoc struct {
	ID          string    `bson:"id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	YearLevel   int       `bson:"year_level"`
	Theme       string    `bson:"theme"`
	DefaultView string    `bson:"default_view"`
	Subjects    []string  `bson:"subjects"`
	CreatedAt   time.Time `bson:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{collection: database.Collection(usersCollection)}
}

func (r *UserRepository) Insert(ctx context.Context, user domain.User) error {
	_, err := r.collection.InsertOne(ctx, newUserDoc(user))
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var doc userDoc
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.User{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}
	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, input domain.UpdateUserInput) error {
	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Email != nil {
		set["email"] = *input.Email
	}
	if input.YearLevel != nil {
		set["year_level"] = *input.YearLevel
	}
	if input.Theme != nil {
		set["theme"] = string(*input.Theme)
	}
	if input.DefaultView != nil {
		set["default_view"] = string(*input.DefaultView)
	}
	if input.Subjects != nil {
		set["subjects"] = input.Subjects
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func newUserDoc(user domain.User) userDoc {
	return userDoc{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		YearLevel:   user.YearLevel,
		Theme:       string(user.Theme),
		DefaultView: string(user.DefaultView),
		Subjects:    user.Subjects,
		CreatedAt:   user.CreatedAt,
	}
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		YearLevel:   d.YearLevel,
		Theme:       domain.Theme(d.Theme),
		DefaultView: domain.ViewType(d.DefaultView),
		Subjects:    d.Subjects,
		CreatedAt:   d.CreatedAt,
	}
}
