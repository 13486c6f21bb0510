package repository

import (
	"context"
	"time"

	"portfolioapi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoDatabase = "portfolio"

type MongoArticleRepo struct {
	DB *mongo.Client
}

func NewMongoArticleRepo(db *mongo.Client) *MongoArticleRepo {
	r := &MongoArticleRepo{DB: db}
	// Unique slug index so the check-then-write race degrades to a driver
	// error instead of a duplicate document, matching the Postgres schema.
	_, _ = r.collection().Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return r
}

func (r *MongoArticleRepo) collection() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("articles")
}

// nextDocumentID allocates a numeric id by reading the current maximum.
// Concurrent inserts can race here, same as the slug pre-check; the unique
// index on _id rejects the loser.
func nextDocumentID(ctx context.Context, coll *mongo.Collection) (int64, error) {
	var doc struct {
		ID int64 `bson:"_id"`
	}
	opts := options.FindOne().SetSort(bson.M{"_id": -1})
	err := coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 1, nil
		}
		return 0, err
	}
	return doc.ID + 1, nil
}

func (r *MongoArticleRepo) GetArticles(filter ArticleFilter) ([]*models.Article, error) {
	ctx := context.Background()

	query := bson.M{}
	if filter.PublishedOnly {
		query["published"] = true
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find()
	if filter.SortByID {
		opts.SetSort(bson.M{"_id": -1})
	} else {
		opts.SetSort(bson.M{"created_at": -1})
	}
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
	}
	if filter.Offset > 0 {
		opts.SetSkip(int64(filter.Offset))
	}

	cursor, err := r.collection().Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var articles []*models.Article
	for cursor.Next(ctx) {
		article := &models.Article{}
		if err := cursor.Decode(article); err != nil {
			return nil, err
		}
		if article.Tags == nil {
			article.Tags = []string{}
		}
		articles = append(articles, article)
	}
	return articles, cursor.Err()
}

func (r *MongoArticleRepo) getOne(query bson.M) (*models.Article, error) {
	article := &models.Article{}
	err := r.collection().FindOne(context.Background(), query).Decode(article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	return article, nil
}

func (r *MongoArticleRepo) GetArticleByID(id int64) (*models.Article, error) {
	return r.getOne(bson.M{"_id": id})
}

func (r *MongoArticleRepo) GetArticleBySlug(slug string) (*models.Article, error) {
	return r.getOne(bson.M{"slug": slug})
}

func (r *MongoArticleRepo) CreateArticle(article *models.Article) error {
	ctx := context.Background()

	if _, err := r.GetArticleBySlug(article.Slug); err == nil {
		return ErrDuplicateSlug
	} else if err != ErrNotFound {
		return err
	}

	id, err := nextDocumentID(ctx, r.collection())
	if err != nil {
		return err
	}
	article.ID = id

	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	article.Views = 0
	if article.Tags == nil {
		article.Tags = []string{}
	}

	_, err = r.collection().InsertOne(ctx, article)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSlug
	}
	return err
}

func (r *MongoArticleRepo) UpdateArticle(article *models.Article) error {
	// A moved slug must not land on another article.
	if existing, err := r.GetArticleBySlug(article.Slug); err == nil {
		if existing.ID != article.ID {
			return ErrDuplicateSlug
		}
	} else if err != ErrNotFound {
		return err
	}

	article.UpdatedAt = time.Now().UTC()
	if article.Tags == nil {
		article.Tags = []string{}
	}

	res, err := r.collection().ReplaceOne(context.Background(),
		bson.M{"_id": article.ID}, article)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoArticleRepo) DeleteArticle(id int64) error {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoArticleRepo) IncrementViews(id int64) error {
	_, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}

func (r *MongoArticleRepo) GetCategories() ([]string, error) {
	ctx := context.Background()
	values, err := r.collection().Distinct(ctx, "category", bson.M{"category": bson.M{"$ne": ""}})
	if err != nil {
		return nil, err
	}

	categories := []string{}
	for _, v := range values {
		if s, ok := v.(string); ok {
			categories = append(categories, s)
		}
	}
	return categories, nil
}

func (r *MongoArticleRepo) GetTags() ([]string, error) {
	ctx := context.Background()
	values, err := r.collection().Distinct(ctx, "tags", bson.M{})
	if err != nil {
		return nil, err
	}

	tags := []string{}
	for _, v := range values {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags, nil
}
