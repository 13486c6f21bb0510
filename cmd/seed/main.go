// Command seed bootstraps the admin account and the default hero profile.
// Run once after migrations:
//
//	ADMIN_USERNAME=admin ADMIN_PASSWORD=... go run ./cmd/seed
package main

import (
	"log"
	"os"

	"portfolioapi/config"
	"portfolioapi/db"
	"portfolioapi/db/mongo"
	"portfolioapi/db/postgres"
	"portfolioapi/models"
	"portfolioapi/repository"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.LoadConfig()

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	var database db.DB
	var userRepo repository.UserRepository
	var heroRepo repository.HeroRepository

	switch cfg.DBType {
	case "postgres":
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			log.Fatalf("could not connect to postgres: %v", err)
		}
		database = pg

		userRepo = repository.NewPostgresUserRepo(pg.Conn)
		heroRepo = repository.NewPostgresHeroRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			log.Fatalf("could not connect to mongo: %v", err)
		}
		database = mg

		userRepo = repository.NewMongoUserRepo(mg.Client)
		heroRepo = repository.NewMongoHeroRepo(mg.Client)

	default:
		log.Fatalf("DB_TYPE %q not supported", cfg.DBType)
	}
	defer database.Disconnect()

	existing, err := userRepo.GetUserByUsername(username)
	if err != nil {
		log.Fatalf("could not look up admin user: %v", err)
	}
	if existing != nil {
		log.Printf("admin user %q already exists, skipping", username)
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("could not hash admin password: %v", err)
		}
		user := &models.AppUser{
			Username:     username,
			PasswordHash: string(hashed),
			Role:         "admin",
		}
		if err := userRepo.CreateUser(user); err != nil {
			log.Fatalf("could not create admin user: %v", err)
		}
		log.Printf("created admin user %q (id %d)", user.Username, user.ID)
	}

	if _, err := heroRepo.GetHero(); err == repository.ErrNotFound {
		if err := heroRepo.SaveHero(&models.HeroProfile{ID: models.HeroID}); err != nil {
			log.Fatalf("could not create hero profile: %v", err)
		}
		log.Println("created empty hero profile")
	} else if err != nil {
		log.Fatalf("could not look up hero profile: %v", err)
	} else {
		log.Println("hero profile already exists, skipping")
	}
}
