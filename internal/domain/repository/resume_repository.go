package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"badgecv_api/internal/domain/model"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	FindByUserID(ctx context.Context, userID string, limit int64) ([]model.Resume, error)
}

type mongoResumeRepository struct {
	collection *mongo.Collection
}

func NewMongoResumeRepository(db *mongo.Database) ResumeRepository {
	return &mongoResumeRepository{collection: db.Collection("resumes")}
}

func (r *mongoResumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	if _, err := r.collection.InsertOne(ctx, resume); err != nil {
		return fmt.Errorf("mongoResumeRepository.Create: %w", err)
	}
	return nil
}

func (r *mongoResumeRepository) FindByUserID(ctx context.Context, userID string, limit int64) ([]model.Resume, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("mongoResumeRepository.FindByUserID: %w", err)
	}

	resumes := []model.Resume{}
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, fmt.Errorf("mongoResumeRepository.FindByUserID: decoding: %w", err)
	}
	return resumes, nil
}
