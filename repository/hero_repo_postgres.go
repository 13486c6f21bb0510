package repository

import (
	"database/sql"

	"portfolioapi/models"
)

type PostgresHeroRepo struct {
	DB *sql.DB
}

func NewPostgresHeroRepo(db *sql.DB) *PostgresHeroRepo {
	return &PostgresHeroRepo{DB: db}
}

func (r *PostgresHeroRepo) GetHero() (*models.HeroProfile, error) {
	hero := &models.HeroProfile{}
	err := r.DB.QueryRow(`
		SELECT id, name, title, description, phone, email, location, profile_image, resume_url
		FROM hero WHERE id = $1
	`, models.HeroID).Scan(&hero.ID, &hero.Name, &hero.Title, &hero.Description,
		&hero.Phone, &hero.Email, &hero.Location, &hero.ProfileImage, &hero.ResumeURL)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hero, nil
}

// SaveHero upserts the singleton row under the fixed id.
func (r *PostgresHeroRepo) SaveHero(hero *models.HeroProfile) error {
	hero.ID = models.HeroID
	_, err := r.DB.Exec(`
		INSERT INTO hero (id, name, title, description, phone, email, location, profile_image, resume_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE
		SET name=$2, title=$3, description=$4, phone=$5, email=$6, location=$7,
			profile_image=$8, resume_url=$9
	`, hero.ID, hero.Name, hero.Title, hero.Description, hero.Phone, hero.Email,
		hero.Location, hero.ProfileImage, hero.ResumeURL)
	return err
}
