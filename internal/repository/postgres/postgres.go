package postgres

import (
	"database/sql"

	"hrassets-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AssetRepository
	repository.RequestRepository
	repository.PackageRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		AssetRepository:        NewAssetRepository(db),
		RequestRepository:      NewRequestRepository(db),
		PackageRepository:      NewPackageRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
