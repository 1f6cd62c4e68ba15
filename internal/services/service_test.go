package services

import (
	"testing"

	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// fixture wires the service layer over an in-memory sqlite database.
type fixture struct {
	db            *gorm.DB
	users         repositories.UserRepository
	follows       repositories.FollowRepository
	progress      repositories.ProgressRepository
	notifications repositories.NotificationRepository

	followSvc       FollowService
	progressSvc     ProgressService
	notificationSvc NotificationService
	userSvc         UserService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Follow{},
		&models.Fan{},
		&models.ProgressUpdate{},
		&models.Notification{},
	))

	log := zap.NewNop().Sugar()
	users := repositories.NewPostgresUserRepository(db)
	follows := repositories.NewPostgresFollowRepository(db)
	progress := repositories.NewPostgresProgressRepository(db)
	notifications := repositories.NewPostgresNotificationRepository(db)
	notifier := NewStoreNotifier(notifications, log)
	filter := NewVisibilityFilter(follows)

	return &fixture{
		db:              db,
		users:           users,
		follows:         follows,
		progress:        progress,
		notifications:   notifications,
		followSvc:       NewFollowService(users, follows, notifier, log),
		progressSvc:     NewProgressService(users, progress, follows, filter, notifier, log),
		notificationSvc: NewNotificationService(notifications, users, log),
		userSvc:         NewUserService(users, follows, NewBcryptHasher(), nil, log),
	}
}

func (f *fixture) seedUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email, Provider: models.ProviderLocal, Active: true}
	require.NoError(t, f.users.CreateUser(user))
	return user
}

func zapNop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func (f *fixture) followCount(t *testing.T) (follows, fans int64) {
	t.Helper()
	require.NoError(t, f.db.Model(&models.Follow{}).Count(&follows).Error)
	require.NoError(t, f.db.Model(&models.Fan{}).Count(&fans).Error)
	return follows, fans
}
