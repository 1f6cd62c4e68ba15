package services

import (
	"fmt"

	"github.com/skillshare-platform/backend/internal/models"
	"github.com/skillshare-platform/backend/internal/repositories"
)

// VisibilityFilter decides which progress updates a viewer may see.
//
// PUBLIC items are visible to everyone, PRIVATE items only to their owner,
// and FRIENDS items to the owner and to viewers who mutually follow the
// owner. "Friends" is the symmetric closure of the follow graph, not a
// one-directional follow.
type VisibilityFilter struct {
	follows repositories.FollowRepository
}

func NewVisibilityFilter(follows repositories.FollowRepository) *VisibilityFilter {
	return &VisibilityFilter{follows: follows}
}

// Visible returns the subset of items the viewer may see. A nil viewerID
// means an anonymous viewer, for whom only PUBLIC items pass. The viewer's
// friend set is fetched once up front; the filtering itself is a pure
// predicate over the fetched items.
func (f *VisibilityFilter) Visible(items []models.ProgressUpdate, viewerID *uint) ([]models.ProgressUpdate, error) {
	if viewerID == nil {
		visible := make([]models.ProgressUpdate, 0, len(items))
		for _, item := range items {
			if item.Visibility == models.VisibilityPublic {
				visible = append(visible, item)
			}
		}
		return visible, nil
	}

	friends, err := f.friendSet(*viewerID)
	if err != nil {
		return nil, fmt.Errorf("load friend set: %w", err)
	}

	visible := make([]models.ProgressUpdate, 0, len(items))
	for _, item := range items {
		if visibleTo(item, *viewerID, friends) {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

func visibleTo(item models.ProgressUpdate, viewerID uint, friends map[uint]bool) bool {
	if item.UserID == viewerID {
		return true
	}
	switch item.Visibility {
	case models.VisibilityPublic:
		return true
	case models.VisibilityFriends:
		return friends[item.UserID]
	default:
		return false
	}
}

// friendSet is the intersection of who the viewer follows and who follows
// the viewer back.
func (f *VisibilityFilter) friendSet(viewerID uint) (map[uint]bool, error) {
	followingIDs, err := f.follows.GetFollowingIDs(viewerID)
	if err != nil {
		return nil, err
	}
	followerIDs, err := f.follows.GetFollowerIDs(viewerID)
	if err != nil {
		return nil, err
	}

	followsBack := make(map[uint]bool, len(followerIDs))
	for _, id := range followerIDs {
		followsBack[id] = true
	}
	friends := make(map[uint]bool)
	for _, id := range followingIDs {
		if followsBack[id] {
			friends[id] = true
		}
	}
	return friends, nil
}
