package repositories

import (
	"github.com/skillshare-platform/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow graph operations. The
// relation is stored twice, as follows (who I follow) and fans (who follows
// me), so that either direction is a membership test without a join. Every
// mutation writes both tables inside one transaction so the pair can never
// go asymmetric under partial failure.
type FollowRepository interface {
	CreateEdge(followerID, followeeID uint) error
	DeleteEdge(followerID, followeeID uint) error
	IsFollowing(followerID, followeeID uint) (bool, error)
	GetFollowers(userID uint) ([]models.User, error)
	GetFollowing(userID uint) ([]models.User, error)
	GetFollowerIDs(userID uint) ([]uint, error)
	GetFollowingIDs(userID uint) ([]uint, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

// NewPostgresFollowRepository creates a new PostgresFollowRepository
func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// CreateEdge inserts the follow and its fan mirror atomically.
func (r *PostgresFollowRepository) CreateEdge(followerID, followeeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&models.Follow{FollowerID: followerID, FolloweeID: followeeID}).Error; err != nil {
			return err
		}
		return tx.Create(&models.Fan{UserID: followeeID, FanID: followerID}).Error
	})
}

// DeleteEdge removes the follow and its fan mirror atomically. Deleting an
// absent edge is not an error.
func (r *PostgresFollowRepository) DeleteEdge(followerID, followeeID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ? AND fan_id = ?", followeeID, followerID).
			Delete(&models.Fan{}).Error
	})
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresFollowRepository) GetFollowers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Fan{}).Select("fan_id").Where("user_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowing(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("id IN (?)",
		r.db.Model(&models.Follow{}).Select("followee_id").Where("follower_id = ?", userID),
	).Find(&users).Error
	return users, err
}

func (r *PostgresFollowRepository) GetFollowerIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Fan{}).Where("user_id = ?", userID).Pluck("fan_id", &ids).Error
	return ids, err
}

func (r *PostgresFollowRepository) GetFollowingIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Pluck("followee_id", &ids).Error
	return ids, err
}
