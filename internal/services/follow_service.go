package services

import (
	"errors"
	"fmt"

	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FollowService manages the social follow graph.
type FollowService interface {
	Follow(actorID, targetID uint) error
	Unfollow(actorID, targetID uint) error
	IsFollowing(callerEmail string, subjectID, targetID uint) (bool, error)
	ListFollowers(subjectID uint, viewerEmail string) ([]models.UserSummary, error)
	ListFollowing(subjectID uint, viewerEmail string) ([]models.UserSummary, error)
}

type followService struct {
	users    repositories.UserRepository
	follows  repositories.FollowRepository
	notifier Notifier
	log      *zap.SugaredLogger
}

func NewFollowService(
	users repositories.UserRepository,
	follows repositories.FollowRepository,
	notifier Notifier,
	log *zap.SugaredLogger,
) FollowService {
	return &followService{users: users, follows: follows, notifier: notifier, log: log}
}

// Follow adds the actor→target edge. Idempotent: following someone already
// followed is a no-op and emits no second notification.
func (s *followService) Follow(actorID, targetID uint) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	actor, err := s.users.GetUserByID(actorID)
	if err != nil {
		return userLookupError(actorID, err)
	}
	target, err := s.users.GetUserByID(targetID)
	if err != nil {
		return userLookupError(targetID, err)
	}

	following, err := s.follows.IsFollowing(actorID, targetID)
	if err != nil {
		return fmt.Errorf("check follow edge: %w", err)
	}
	if following {
		return nil
	}

	if err := s.follows.CreateEdge(actorID, targetID); err != nil {
		return fmt.Errorf("create follow edge: %w", err)
	}
	s.log.Infow("follow created", "actor_id", actorID, "target_id", targetID)

	s.notifier.Notify(target.ID, actor.Name+" started following you")
	return nil
}

// Unfollow removes the actor→target edge in both directions. Removing an
// absent edge is a no-op, not an error.
func (s *followService) Unfollow(actorID, targetID uint) error {
	if err := s.follows.DeleteEdge(actorID, targetID); err != nil {
		return fmt.Errorf("delete follow edge: %w", err)
	}
	s.log.Infow("follow removed", "actor_id", actorID, "target_id", targetID)
	return nil
}

// IsFollowing reports whether subject follows target. A caller may only
// query their own relationships, so the resolved caller must be the subject.
func (s *followService) IsFollowing(callerEmail string, subjectID, targetID uint) (bool, error) {
	caller, err := s.users.GetUserByEmail(callerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: no account for %s", ErrNotFound, callerEmail)
		}
		return false, fmt.Errorf("resolve caller: %w", err)
	}
	if caller.ID != subjectID {
		return false, ErrUnauthorized
	}
	return s.follows.IsFollowing(subjectID, targetID)
}

func (s *followService) ListFollowers(subjectID uint, viewerEmail string) ([]models.UserSummary, error) {
	users, err := s.listEnd(subjectID, s.follows.GetFollowers)
	if err != nil {
		return nil, err
	}
	return s.summarize(users, viewerEmail)
}

func (s *followService) ListFollowing(subjectID uint, viewerEmail string) ([]models.UserSummary, error) {
	users, err := s.listEnd(subjectID, s.follows.GetFollowing)
	if err != nil {
		return nil, err
	}
	return s.summarize(users, viewerEmail)
}

func (s *followService) listEnd(subjectID uint, fetch func(uint) ([]models.User, error)) ([]models.User, error) {
	if _, err := s.users.GetUserByID(subjectID); err != nil {
		return nil, userLookupError(subjectID, err)
	}
	return fetch(subjectID)
}

// summarize projects users to summaries, annotating each entry with whether
// the viewer follows it when a viewer is present. An unresolvable viewer is
// treated as anonymous, matching list reads being open to everyone.
func (s *followService) summarize(users []models.User, viewerEmail string) ([]models.UserSummary, error) {
	var viewerFollowing map[uint]bool
	if viewerEmail != "" {
		if viewer, err := s.users.GetUserByEmail(viewerEmail); err == nil {
			ids, err := s.follows.GetFollowingIDs(viewer.ID)
			if err != nil {
				return nil, fmt.Errorf("load viewer following: %w", err)
			}
			viewerFollowing = make(map[uint]bool, len(ids))
			for _, id := range ids {
				viewerFollowing[id] = true
			}
		}
	}

	summaries := make([]models.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = u.ToSummary()
		if viewerFollowing != nil {
			isFollowing := viewerFollowing[u.ID]
			summaries[i].IsFollowing = &isFollowing
		}
	}
	return summaries, nil
}

func userLookupError(id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return fmt.Errorf("load user %d: %w", id, err)
}
