package main

import (
	"fmt"
	"net/http"

	"portfolioapi/config"
	"portfolioapi/db"
	"portfolioapi/db/mongo"
	"portfolioapi/db/postgres"
	"portfolioapi/handlers"
	"portfolioapi/repository"
	"portfolioapi/routes"
	"portfolioapi/utils"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()

	var database db.DB
	var articleRepo repository.ArticleRepository
	var heroRepo repository.HeroRepository
	var userRepo repository.UserRepository

	switch cfg.DBType {
	case "postgres":
		// Migrations only apply to the Postgres backend
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		database = pg

		articleRepo = repository.NewPostgresArticleRepo(pg.Conn)
		heroRepo = repository.NewPostgresHeroRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case "mongo":
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		database = mg

		articleRepo = repository.NewMongoArticleRepo(mg.Client)
		heroRepo = repository.NewMongoHeroRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}
	defer database.Disconnect()

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo, JWTSecret: cfg.JWTSecret}
	articleHandler := &handlers.ArticleHandler{Repo: articleRepo, Upload: utils.UploadToR2}
	heroHandler := &handlers.HeroHandler{Repo: heroRepo, Upload: utils.UploadToR2}

	routes.SetupRoutes(cfg.JWTSecret, userHandler, articleHandler, heroHandler)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
