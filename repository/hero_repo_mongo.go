package repository

import (
	"context"

	"portfolioapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoHeroRepo struct {
	DB *mongo.Client
}

func NewMongoHeroRepo(db *mongo.Client) *MongoHeroRepo {
	return &MongoHeroRepo{DB: db}
}

func (r *MongoHeroRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("hero")
}

func (r *MongoHeroRepo) GetHero() (*models.HeroProfile, error) {
	hero := &models.HeroProfile{}
	err := r.collection().FindOne(context.Background(), bson.M{"_id": models.HeroID}).Decode(hero)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hero, nil
}

func (r *MongoHeroRepo) SaveHero(hero *models.HeroProfile) error {
	hero.ID = models.HeroID
	_, err := r.collection().ReplaceOne(context.Background(),
		bson.M{"_id": hero.ID}, hero, options.Replace().SetUpsert(true))
	return err
}
