package repository

import (
	"context"
	"errors"
	"time"

	"portfolioapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("users")
}

func (r *MongoUserRepo) CreateUser(user *models.AppUser) error {
	ctx := context.Background()

	existing, err := r.GetUserByUsername(user.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("username already exists")
	}

	if user.PasswordHash == "" {
		return errors.New("password hash cannot be empty")
	}
	if user.Role == "" {
		user.Role = "admin"
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id, err := nextDocumentID(ctx, r.collection())
	if err != nil {
		return err
	}
	user.ID = id

	_, err = r.collection().InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByUsername(username string) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.collection().FindOne(context.Background(), bson.M{"username": username}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) GetUserByID(id int64) (*models.AppUser, error) {
	user := &models.AppUser{}
	err := r.collection().FindOne(context.Background(), bson.M{"_id": id}).Decode(user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (r *MongoUserRepo) UpdatePassword(id int64, passwordHash string) error {
	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id}, bson.M{"$set": bson.M{"password_hash": passwordHash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
