package userRepo

import (
	"context"

	"tripwise/database"
	"tripwise/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository is the identity store consumed by the user service and the
// auth middleware.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type mongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo returns a UserRepository backed by MongoDB.
func NewMongoUserRepo() UserRepository {
	db := database.MongoClient.Database("tripwise")
	return &mongoUserRepo{
		coll: db.Collection("users"),
	}
}
