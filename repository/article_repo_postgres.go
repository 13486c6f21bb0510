package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"portfolioapi/models"

	"github.com/lib/pq"
)

type PostgresArticleRepo struct {
	DB *sql.DB
}

func NewPostgresArticleRepo(db *sql.DB) *PostgresArticleRepo {
	return &PostgresArticleRepo{DB: db}
}

const articleColumns = `id, title, slug, summary, content, category, tags, cover_image, published, views, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (*models.Article, error) {
	article := &models.Article{}
	var tagsJSON []byte

	err := row.Scan(&article.ID, &article.Title, &article.Slug, &article.Summary,
		&article.Content, &article.Category, &tagsJSON, &article.CoverImage,
		&article.Published, &article.Views, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		return nil, err
	}

	article.Tags = []string{}
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &article.Tags); err != nil {
			return nil, err
		}
	}
	return article, nil
}

// GetArticles lists articles matching the filter. Public callers pass
// PublishedOnly; the admin listing passes SortByID for id-descending order.
func (r *PostgresArticleRepo) GetArticles(filter ArticleFilter) ([]*models.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles`
	var conditions []string
	var args []any

	if filter.PublishedOnly {
		conditions = append(conditions, "published = TRUE")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	if filter.SortByID {
		query += " ORDER BY id DESC"
	} else {
		query += " ORDER BY created_at DESC"
	}
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

func (r *PostgresArticleRepo) GetArticleByID(id int64) (*models.Article, error) {
	row := r.DB.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return article, err
}

func (r *PostgresArticleRepo) GetArticleBySlug(slug string) (*models.Article, error) {
	row := r.DB.QueryRow(`SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return article, err
}

// CreateArticle inserts a new article. The slug check below races with
// concurrent inserts; the unique index on slug catches the loser, which
// surfaces as ErrDuplicateSlug either way.
func (r *PostgresArticleRepo) CreateArticle(article *models.Article) error {
	if _, err := r.GetArticleBySlug(article.Slug); err == nil {
		return ErrDuplicateSlug
	} else if err != ErrNotFound {
		return err
	}

	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now
	article.Views = 0
	if article.Tags == nil {
		article.Tags = []string{}
	}

	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return err
	}

	err = r.DB.QueryRow(`
		INSERT INTO articles (title, slug, summary, content, category, tags, cover_image, published, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`, article.Title, article.Slug, article.Summary, article.Content, article.Category,
		tagsJSON, article.CoverImage, article.Published, article.Views,
		article.CreatedAt, article.UpdatedAt).Scan(&article.ID)

	if isUniqueViolation(err) {
		return ErrDuplicateSlug
	}
	return err
}

// UpdateArticle overwrites the stored row with the given article state.
func (r *PostgresArticleRepo) UpdateArticle(article *models.Article) error {
	article.UpdatedAt = time.Now().UTC()
	if article.Tags == nil {
		article.Tags = []string{}
	}

	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return err
	}

	res, err := r.DB.Exec(`
		UPDATE articles
		SET title=$1, slug=$2, summary=$3, content=$4, category=$5, tags=$6,
			cover_image=$7, published=$8, updated_at=$9
		WHERE id=$10
	`, article.Title, article.Slug, article.Summary, article.Content, article.Category,
		tagsJSON, article.CoverImage, article.Published, article.UpdatedAt, article.ID)
	if isUniqueViolation(err) {
		return ErrDuplicateSlug
	}
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresArticleRepo) DeleteArticle(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter. Last-write-wins under concurrent
// reads is acceptable for this workload.
func (r *PostgresArticleRepo) IncrementViews(id int64) error {
	_, err := r.DB.Exec(`UPDATE articles SET views = views + 1 WHERE id = $1`, id)
	return err
}

func (r *PostgresArticleRepo) GetCategories() ([]string, error) {
	rows, err := r.DB.Query(`SELECT DISTINCT category FROM articles WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetTags returns the deduplicated union of every article's tag array.
// Tags live in a JSONB column, so the merge happens here rather than in SQL.
func (r *PostgresArticleRepo) GetTags() ([]string, error) {
	rows, err := r.DB.Query(`SELECT tags FROM articles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seen := make(map[string]bool)
	tags := []string{}
	for rows.Next() {
		var tagsJSON []byte
		if err := rows.Scan(&tagsJSON); err != nil {
			return nil, err
		}
		var rowTags []string
		if len(tagsJSON) > 0 {
			if err := json.Unmarshal(tagsJSON, &rowTags); err != nil {
				return nil, err
			}
		}
		for _, t := range rowTags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags, rows.Err()
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
