package repository

import "portfolioapi/models"

// HeroRepository manages the single hero profile record.
type HeroRepository interface {
	GetHero() (*models.HeroProfile, error)
	SaveHero(hero *models.HeroProfile) error
}
