package main

import (
	"net/http"

	"mjtoys/config"
	"mjtoys/db"
	"mjtoys/db/mongo"
	"mjtoys/db/postgres"
	"mjtoys/handlers"
	"mjtoys/repository"
	"mjtoys/routes"
	"mjtoys/utils"
)

func main() {
	// Load config from .env or config file
	cfg := config.LoadConfig()
	logg := config.GetLogger()

	var documentRepo repository.DocumentRepository
	var settingsRepo repository.SettingsRepository
	var fieldEditRepo repository.FieldEditRepository
	var userRepo repository.UserRepository

	switch db.DBType(cfg.DBType) {
	case db.Postgres:
		// Run migrations (Postgres only)
		db.RunMigrations()

		pg := postgres.NewPostgresDB(cfg.PostgresURL)
		if err := pg.Connect(); err != nil {
			panic(err)
		}
		defer pg.Disconnect()

		documentRepo = repository.NewPostgresDocumentRepo(pg.Conn)
		settingsRepo = repository.NewPostgresSettingsRepo(pg.Conn)
		fieldEditRepo = repository.NewPostgresFieldEditRepo(pg.Conn)
		userRepo = repository.NewPostgresUserRepo(pg.Conn)

	case db.Mongo:
		mg := mongo.NewMongoDB(cfg.MongoURL)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		documentRepo = repository.NewMongoDocumentRepo(mg.Client)
		settingsRepo = repository.NewMongoSettingsRepo(mg.Client)
		fieldEditRepo = repository.NewMongoFieldEditRepo(mg.Client)
		userRepo = repository.NewMongoUserRepo(mg.Client)

	default:
		panic("DB_TYPE not supported")
	}

	// Handlers
	userHandler := &handlers.UserHandler{Repo: userRepo}
	excelHandler := &handlers.ExcelHandler{}
	documentHandler := &handlers.DocumentHandler{Docs: documentRepo, Settings: settingsRepo}
	fieldEditHandler := &handlers.FieldEditHandler{Repo: fieldEditRepo}
	settingsHandler := &handlers.SettingsHandler{Repo: settingsRepo, Upload: utils.UploadLogo, Delete: utils.DeleteFromStorage}
	pdfHandler := &handlers.PDFHandler{Rasterize: utils.HTMLToPDF}

	routes.SetupRoutes(userHandler, excelHandler, documentHandler, fieldEditHandler, settingsHandler, pdfHandler)

	port := cfg.Port
	logg.Infof("Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
