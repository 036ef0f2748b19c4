package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/joho/godotenv"
	"github.com/meilisearch/meilisearch-go"
	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
	"github.com/seodius/KappaRecruit/internal/services"
	"github.com/seodius/KappaRecruit/internal/storage"
	"github.com/seodius/KappaRecruit/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitContext() (*appcontext.Context, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Warn("No .env file found, using environment variables")
	}

	logger, err := InitLogger()
	if err != nil {
		return nil, err
	}

	if err := InitAuth(); err != nil {
		return nil, err
	}

	db, err := InitDB()
	if err != nil {
		return nil, err
	}

	store, err := InitStore()
	if err != nil {
		return nil, err
	}

	meilisearchClient, err := InitMeilisearch()
	if err != nil {
		return nil, err
	}

	var oauth2Config *oauth2.Config
	if os.Getenv("GOOGLE_CLIENT_ID") != "" {
		oauth2Config = &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}

	ctx := &appcontext.Context{
		DB:     db,
		Logger: logger,

		Store:  store,
		Mailer: InitMailer(),

		OAuth2Config:      oauth2Config,
		MeilisearchClient: meilisearchClient,
	}

	return ctx, nil
}

// InitAuth wires the JWT signing key and token lifetime from the
// environment. SECRET_KEY is mandatory.
func InitAuth() error {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return fmt.Errorf("SECRET_KEY environment variable is not set")
	}

	ttl := 30 * time.Minute
	if raw := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid ACCESS_TOKEN_EXPIRE_MINUTES: %w", err)
		}
		ttl = time.Duration(minutes) * time.Minute
	}

	return utils.InitJWT(secret, os.Getenv("ALGORITHM"), ttl)
}

func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for every entity. Shared with the
// test database setup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Company{},
		&entity.Role{},
		&entity.User{},
		&entity.Department{},
		&entity.Contact{},
		&entity.Job{},
		&entity.JobStatusEvent{},
		&entity.Candidate{},
		&entity.Resume{},
		&entity.Application{},
		&entity.ApplicationStatusEvent{},
		&entity.Interview{},
		&entity.Interviewer{},
		&entity.Evaluation{},
	)
}

func InitLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// InitStore picks GCS when a bucket is configured, local disk otherwise.
func InitStore() (storage.Store, error) {
	if bucket := os.Getenv("GCS_BUCKET_NAME"); bucket != "" {
		client, err := gcs.NewClient(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return storage.NewGCSStore(client, bucket), nil
	}

	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return storage.NewLocalStore(dir)
}

func InitMailer() services.Mailer {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return services.NoopMailer{}
	}
	return &services.SendgridMailer{
		APIKey:    apiKey,
		FromName:  os.Getenv("MAIL_FROM_NAME"),
		FromEmail: os.Getenv("MAIL_FROM_EMAIL"),
		LoginURL:  os.Getenv("FRONTEND_URL"),
	}
}

// InitMeilisearch is optional: search endpoints report unavailable when no
// host is configured.
func InitMeilisearch() (*meilisearch.Client, error) {
	host := os.Getenv("MEILISEARCH_HOST")
	if host == "" {
		return nil, nil
	}

	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   host,
		APIKey: os.Getenv("MEILISEARCH_API_KEY"),
	})

	_, err := client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        utils.SearchIndex,
		PrimaryKey: "id",
	})
	if err != nil && !strings.Contains(err.Error(), "already exists") {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	task, err := client.Index(utils.SearchIndex).UpdateFilterableAttributes(&[]string{
		"company_id",
		"type",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update filterable attributes: %w", err)
	}
	if _, err := client.WaitForTask(task.TaskUID); err != nil {
		return nil, fmt.Errorf("failed to wait for filterable attributes update: %w", err)
	}

	task, err = client.Index(utils.SearchIndex).UpdateSearchableAttributes(&[]string{
		"name",
		"email",
		"job_title",
		"department",
		"employment_type",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update searchable attributes: %w", err)
	}
	if _, err := client.WaitForTask(task.TaskUID); err != nil {
		return nil, fmt.Errorf("failed to wait for searchable attributes update: %w", err)
	}

	return client, nil
}
