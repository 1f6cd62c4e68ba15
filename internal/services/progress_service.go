package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressService implements visibility-scoped access to progress updates.
// Every operation resolves the caller identity exactly once and never trusts
// a client-supplied owner field.
type ProgressService interface {
	List(viewerEmail string) ([]models.ProgressView, error)
	Create(callerEmail string, req models.CreateProgressRequest) (*models.ProgressView, error)
	Update(id uint, callerEmail string, req models.UpdateProgressRequest) (*models.ProgressView, error)
	Delete(id uint, callerEmail string) error
}

type progressService struct {
	users    repositories.UserRepository
	progress repositories.ProgressRepository
	follows  repositories.FollowRepository
	filter   *VisibilityFilter
	notifier Notifier
	log      *zap.SugaredLogger
}

func NewProgressService(
	users repositories.UserRepository,
	progress repositories.ProgressRepository,
	follows repositories.FollowRepository,
	filter *VisibilityFilter,
	notifier Notifier,
	log *zap.SugaredLogger,
) ProgressService {
	return &progressService{
		users:    users,
		progress: progress,
		follows:  follows,
		filter:   filter,
		notifier: notifier,
		log:      log,
	}
}

// List returns the updates the viewer may see. An empty viewerEmail means an
// anonymous viewer, who only sees public updates.
func (s *progressService) List(viewerEmail string) ([]models.ProgressView, error) {
	var (
		viewerID   *uint
		candidates []models.ProgressUpdate
		err        error
	)
	if viewerEmail == "" {
		candidates, err = s.progress.ListPublic()
	} else {
		var viewer *models.User
		viewer, err = s.resolveCaller(viewerEmail)
		if err != nil {
			return nil, err
		}
		viewerID = &viewer.ID
		candidates, err = s.progress.ListForViewer(viewer.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list progress updates: %w", err)
	}

	visible, err := s.filter.Visible(candidates, viewerID)
	if err != nil {
		return nil, err
	}
	return s.project(visible)
}

func (s *progressService) Create(callerEmail string, req models.CreateProgressRequest) (*models.ProgressView, error) {
	caller, err := s.resolveCaller(callerEmail)
	if err != nil {
		return nil, err
	}
	if err := validateRequired(req.Title, req.Topic); err != nil {
		return nil, err
	}

	now := time.Now()
	update := &models.ProgressUpdate{
		UserID:      caller.ID,
		Title:       req.Title,
		Topic:       req.Topic,
		Description: req.Description,
		Status:      models.ProgressStatus(req.Status),
		SkillLevel:  models.SkillLevel(req.SkillLevel),
		Visibility:  visibilityOrDefault(req.Visibility),
		Tags:        req.Tags,
		Attachments: req.Attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.progress.CreateUpdate(update); err != nil {
		return nil, fmt.Errorf("create progress update: %w", err)
	}
	s.log.Infow("progress update created", "id", update.ID, "user_id", caller.ID, "visibility", update.Visibility)

	if update.Visibility != models.VisibilityPrivate {
		s.notifyFollowers(caller, update.Title)
	}

	view := toView(update, caller.Name)
	return &view, nil
}

func (s *progressService) Update(id uint, callerEmail string, req models.UpdateProgressRequest) (*models.ProgressView, error) {
	caller, err := s.resolveCaller(callerEmail)
	if err != nil {
		return nil, err
	}
	update, err := s.getUpdate(id)
	if err != nil {
		return nil, err
	}
	if err := AssertOwner(update.UserID, caller.ID); err != nil {
		return nil, err
	}
	if err := validateRequired(req.Title, req.Topic); err != nil {
		return nil, err
	}

	update.Title = req.Title
	update.Topic = req.Topic
	update.Description = req.Description
	update.Status = models.ProgressStatus(req.Status)
	update.SkillLevel = models.SkillLevel(req.SkillLevel)
	update.Visibility = visibilityOrDefault(req.Visibility)
	update.Tags = req.Tags
	update.Attachments = req.Attachments
	update.UpdatedAt = time.Now()

	if err := s.progress.SaveUpdate(update); err != nil {
		return nil, fmt.Errorf("save progress update %d: %w", id, err)
	}
	s.log.Infow("progress update modified", "id", id, "user_id", caller.ID)

	view := toView(update, caller.Name)
	return &view, nil
}

func (s *progressService) Delete(id uint, callerEmail string) error {
	caller, err := s.resolveCaller(callerEmail)
	if err != nil {
		return err
	}
	update, err := s.getUpdate(id)
	if err != nil {
		return err
	}
	if update.UserID == 0 {
		return fmt.Errorf("%w: progress update %d", ErrOwnerlessResource, id)
	}
	if err := AssertOwner(update.UserID, caller.ID); err != nil {
		return err
	}
	if err := s.progress.DeleteUpdate(update); err != nil {
		return fmt.Errorf("delete progress update %d: %w", id, err)
	}
	s.log.Infow("progress update deleted", "id", id, "user_id", caller.ID)
	return nil
}

func (s *progressService) resolveCaller(email string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no account for %s", ErrNotFound, email)
		}
		return nil, fmt.Errorf("resolve caller: %w", err)
	}
	return user, nil
}

func (s *progressService) getUpdate(id uint) (*models.ProgressUpdate, error) {
	update, err := s.progress.GetUpdateByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: progress update %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("load progress update %d: %w", id, err)
	}
	return update, nil
}

func (s *progressService) notifyFollowers(owner *models.User, title string) {
	followerIDs, err := s.follows.GetFollowerIDs(owner.ID)
	if err != nil {
		s.log.Warnw("skipping follower notifications", "user_id", owner.ID, "error", err)
		return
	}
	for _, id := range followerIDs {
		s.notifier.Notify(id, owner.Name+" shared a progress update: "+title)
	}
}

// project maps updates to views carrying the owner's display name. Owner
// names are fetched in one query and joined in memory.
func (s *progressService) project(updates []models.ProgressUpdate) ([]models.ProgressView, error) {
	ownerIDs := make([]uint, 0, len(updates))
	seen := make(map[uint]bool, len(updates))
	for _, u := range updates {
		if !seen[u.UserID] {
			seen[u.UserID] = true
			ownerIDs = append(ownerIDs, u.UserID)
		}
	}
	owners, err := s.users.GetUsersByIDs(ownerIDs)
	if err != nil {
		return nil, fmt.Errorf("load owners: %w", err)
	}
	names := make(map[uint]string, len(owners))
	for _, o := range owners {
		names[o.ID] = o.Name
	}

	views := make([]models.ProgressView, len(updates))
	for i := range updates {
		views[i] = toView(&updates[i], names[updates[i].UserID])
	}
	return views, nil
}

func toView(u *models.ProgressUpdate, ownerName string) models.ProgressView {
	return models.ProgressView{
		ID:          u.ID,
		Title:       u.Title,
		Topic:       u.Topic,
		Description: u.Description,
		Status:      u.Status,
		SkillLevel:  u.SkillLevel,
		Visibility:  u.Visibility,
		Tags:        u.Tags,
		Attachments: u.Attachments,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		UserName:    ownerName,
	}
}

func validateRequired(title, topic string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title cannot be empty", ErrValidation)
	}
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("%w: topic cannot be empty", ErrValidation)
	}
	return nil
}

func visibilityOrDefault(v string) models.Visibility {
	if v == "" {
		return models.VisibilityPublic
	}
	return models.Visibility(v)
}
