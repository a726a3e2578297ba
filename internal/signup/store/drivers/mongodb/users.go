package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/signup/internal/signup/domain"
	"github.com/aussiebroadwan/signup/internal/signup/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Email         string    `bson:"email"`
	ProfilePic    string    `bson:"profilePic"`
	UploadedFiles []string  `bson:"uploadedFiles"`
	CreatedAt     time.Time `bson:"createdAt"`
}

type usersRepo struct {
	coll *mongo.Collection
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	files := u.Attachments
	if files == nil {
		files = []string{}
	}

	_, err := r.coll.InsertOne(ctx, userDocument{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		ProfilePic:    u.ProfilePicture,
		UploadedFiles: files,
		CreatedAt:     u.CreatedAt.UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %v", store.ErrAlreadyExists, err)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, len(docs))
	for i, d := range docs {
		files := d.UploadedFiles
		if files == nil {
			files = []string{}
		}
		users[i] = domain.User{
			ID:             d.ID,
			Name:           d.Name,
			Email:          d.Email,
			ProfilePicture: d.ProfilePic,
			Attachments:    files,
			CreatedAt:      d.CreatedAt,
		}
	}
	return users, nil
}
