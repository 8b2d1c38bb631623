package engine

import (
	"database/sql"

	"studysaga/internal/buff"
	"studysaga/internal/storage"
)

type Service struct {
	db       *sql.DB
	settings *storage.SettingsRepo
	sessions *storage.SessionRepo
	catalog  *buff.Catalog
}

func NewService(db *sql.DB, catalog *buff.Catalog) *Service {
	return &Service{
		db:       db,
		settings: storage.NewSettingsRepo(db),
		sessions: storage.NewSessionRepo(db),
		catalog:  catalog,
	}
}

func (s *Service) SettingsRepo() *storage.SettingsRepo { return s.settings }
func (s *Service) SessionRepo() *storage.SessionRepo   { return s.sessions }
func (s *Service) Catalog() *buff.Catalog              { return s.catalog }
