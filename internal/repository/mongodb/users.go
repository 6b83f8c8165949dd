package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
	"github.com/cyclehub/inventoryman/internal/domain/models"
)

// FindUserByUsername looks up a staff account.
func (r *Repository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.Collection(usersCollection).FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: user %s", apperror.ErrNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find user: %v", apperror.ErrPersistence, err)
	}
	return &user, nil
}

// InsertUser stores a new staff account. The unique index on username turns
// races on the same name into ErrDuplicate.
func (r *Repository) InsertUser(ctx context.Context, user models.User) error {
	if _, err := r.db.Collection(usersCollection).InsertOne(ctx, user); err != nil {
		return wrapWriteErr("insert user", err)
	}
	return nil
}
