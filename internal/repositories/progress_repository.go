package repositories

import (
	"github.com/skillshare-platform/backend/internal/models"
	"gorm.io/gorm"
)

// ProgressRepository defines the interface for progress update operations
type ProgressRepository interface {
	CreateUpdate(update *models.ProgressUpdate) error
	GetUpdateByID(id uint) (*models.ProgressUpdate, error)
	SaveUpdate(update *models.ProgressUpdate) error
	DeleteUpdate(update *models.ProgressUpdate) error
	ListPublic() ([]models.ProgressUpdate, error)
	ListForViewer(viewerID uint) ([]models.ProgressUpdate, error)
}

// PostgresProgressRepository implements ProgressRepository for PostgreSQL
type PostgresProgressRepository struct {
	db *gorm.DB
}

// NewPostgresProgressRepository creates a new PostgresProgressRepository
func NewPostgresProgressRepository(db *gorm.DB) *PostgresProgressRepository {
	return &PostgresProgressRepository{db: db}
}

func (r *PostgresProgressRepository) CreateUpdate(update *models.ProgressUpdate) error {
	return r.db.Create(update).Error
}

func (r *PostgresProgressRepository) GetUpdateByID(id uint) (*models.ProgressUpdate, error) {
	var update models.ProgressUpdate
	if err := r.db.First(&update, id).Error; err != nil {
		return nil, err
	}
	return &update, nil
}

func (r *PostgresProgressRepository) SaveUpdate(update *models.ProgressUpdate) error {
	return r.db.Save(update).Error
}

func (r *PostgresProgressRepository) DeleteUpdate(update *models.ProgressUpdate) error {
	return r.db.Delete(update).Error
}

// ListPublic returns updates visible to anonymous viewers.
func (r *PostgresProgressRepository) ListPublic() ([]models.ProgressUpdate, error) {
	var updates []models.ProgressUpdate
	err := r.db.Where("visibility = ?", models.VisibilityPublic).
		Order("created_at DESC").Find(&updates).Error
	return updates, err
}

// ListForViewer returns the candidate set for an authenticated viewer:
// everything the viewer owns plus everything that is not private. FRIENDS
// items in the result still need the visibility filter applied.
func (r *PostgresProgressRepository) ListForViewer(viewerID uint) ([]models.ProgressUpdate, error) {
	var updates []models.ProgressUpdate
	err := r.db.Where("user_id = ? OR visibility <> ?", viewerID, models.VisibilityPrivate).
		Order("created_at DESC").Find(&updates).Error
	return updates, err
}
