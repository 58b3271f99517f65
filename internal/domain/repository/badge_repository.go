package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"badgecv_api/internal/common"
	"badgecv_api/internal/domain/model"
)

type BadgeRepository interface {
	Create(ctx context.Context, badge *model.Badge) error
	FindByID(ctx context.Context, id string) (*model.Badge, error)
	FindByUserID(ctx context.Context, userID string, limit int64) ([]model.Badge, error)
	// IncrementViews bumps the badge's view counter by one (store-side
	// atomic) and returns the updated record.
	IncrementViews(ctx context.Context, id string) (*model.Badge, error)
}

type mongoBadgeRepository struct {
	collection *mongo.Collection
}

func NewMongoBadgeRepository(db *mongo.Database) BadgeRepository {
	return &mongoBadgeRepository{collection: db.Collection("badges")}
}

func (r *mongoBadgeRepository) Create(ctx context.Context, badge *model.Badge) error {
	if _, err := r.collection.InsertOne(ctx, badge); err != nil {
		return fmt.Errorf("mongoBadgeRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoBadgeRepository) FindByID(ctx context.Context, id string) (*model.Badge, error) {
	badge := &model.Badge{}
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(badge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoBadgeRepository.FindByID: %w", err)
	}
	return badge, nil
}

func (r *mongoBadgeRepository) FindByUserID(ctx context.Context, userID string, limit int64) ([]model.Badge, error) {
	// Store natural order; callers must not rely on a creation-order
	// guarantee.
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("mongoBadgeRepository.FindByUserID: %w", err)
	}

	badges := []model.Badge{}
	if err := cursor.All(ctx, &badges); err != nil {
		return nil, fmt.Errorf("mongoBadgeRepository.FindByUserID: decoding: %w", err)
	}
	return badges, nil
}

func (r *mongoBadgeRepository) IncrementViews(ctx context.Context, id string) (*model.Badge, error) {
	badge := &model.Badge{}
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(badge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("mongoBadgeRepository.IncrementViews: %w", err)
	}
	return badge, nil
}
