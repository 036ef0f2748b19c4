package appcontext

import (
	"github.com/meilisearch/meilisearch-go"
	"github.com/seodius/KappaRecruit/internal/services"
	"github.com/seodius/KappaRecruit/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

type Context struct {
	DB     *gorm.DB
	Logger *zap.Logger

	Store  storage.Store
	Mailer services.Mailer

	OAuth2Config      *oauth2.Config
	MeilisearchClient *meilisearch.Client
}
