package repository

import "portfolioapi/models"

// ArticleFilter narrows GetArticles. Zero values mean "no filter".
type ArticleFilter struct {
	Category      string
	Limit         int
	Offset        int
	PublishedOnly bool
	SortByID      bool // admin listing orders by id desc instead of created_at desc
}

// ArticleRepository defines the interface for article operations
type ArticleRepository interface {
	GetArticles(filter ArticleFilter) ([]*models.Article, error)
	GetArticleByID(id int64) (*models.Article, error)
	GetArticleBySlug(slug string) (*models.Article, error)
	CreateArticle(article *models.Article) error
	UpdateArticle(article *models.Article) error
	DeleteArticle(id int64) error
	IncrementViews(id int64) error
	GetCategories() ([]string, error)
	GetTags() ([]string, error)
}
