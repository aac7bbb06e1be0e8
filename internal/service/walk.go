package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dogwalk/dogwalk-go/internal/model"
	"github.com/dogwalk/dogwalk-go/internal/repository"
)

var ErrWalkNotFound = errors.New("walk not found")

// WalkRepository is the persistence surface the walk service needs.
type WalkRepository interface {
	Create(ctx context.Context, walk *model.Walk) error
	GetByID(ctx context.Context, id int64) (*model.Walk, error)
	List(ctx context.Context) ([]model.Walk, error)
	ListByWalker(ctx context.Context, walkerID int64) ([]model.Walk, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Walk, error)
	Update(ctx context.Context, walk *model.Walk) error
}

// WalkService handles the walk lifecycle and display projections.
type WalkService struct {
	repo WalkRepository
}

// NewWalkService creates a new WalkService.
func NewWalkService(repo WalkRepository) *WalkService {
	return &WalkService{repo: repo}
}

// Schedule creates a new walk. The status is always forced to Scheduled
// regardless of the request. The persisted row is read back to pick up the
// generated ID and the joined dog and walker names; a missing read-back is a
// persistence inconsistency and propagates as an error.
func (s *WalkService) Schedule(ctx context.Context, req model.ScheduleWalkRequest) (model.WalkResponse, error) {
	walk := &model.Walk{
		StartTime: req.StartTime,
		Duration:  time.Duration(req.DurationMinutes) * time.Minute,
		Status:    model.WalkScheduled,
		DogID:     req.DogID,
		WalkerID:  req.WalkerID,
	}

	if err := s.repo.Create(ctx, walk); err != nil {
		return model.WalkResponse{}, err
	}

	full, err := s.repo.GetByID(ctx, walk.ID)
	if err != nil {
		return model.WalkResponse{}, fmt.Errorf("walk not found after creation: %w", err)
	}

	return walkResponse(full), nil
}

// Complete marks a walk Completed. There is no transition guard: any existing
// walk can be moved to Completed regardless of its current status.
func (s *WalkService) Complete(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, model.WalkCompleted)
}

// Cancel marks a walk Canceled. Same lack of a transition guard as Complete.
func (s *WalkService) Cancel(ctx context.Context, id int64) error {
	return s.setStatus(ctx, id, model.WalkCanceled)
}

func (s *WalkService) setStatus(ctx context.Context, id int64, status model.WalkStatus) error {
	walk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWalkNotFound) {
			return ErrWalkNotFound
		}
		return err
	}

	walk.Status = status
	return s.repo.Update(ctx, walk)
}

// Get returns the display projection of a single walk.
func (s *WalkService) Get(ctx context.Context, id int64) (model.WalkResponse, error) {
	walk, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWalkNotFound) {
			return model.WalkResponse{}, ErrWalkNotFound
		}
		return model.WalkResponse{}, err
	}
	return walkResponse(walk), nil
}

// List returns display projections for all walks.
func (s *WalkService) List(ctx context.Context) ([]model.WalkResponse, error) {
	walks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return walksResponse(walks), nil
}

// ListByWalker returns display projections for all walks assigned to a walker.
func (s *WalkService) ListByWalker(ctx context.Context, walkerID int64) ([]model.WalkResponse, error) {
	walks, err := s.repo.ListByWalker(ctx, walkerID)
	if err != nil {
		return nil, err
	}
	return walksResponse(walks), nil
}

// ListByOwner returns display projections for all walks whose dog belongs to
// the given owner.
func (s *WalkService) ListByOwner(ctx context.Context, ownerID int64) ([]model.WalkResponse, error) {
	walks, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return walksResponse(walks), nil
}

func walkResponse(w *model.Walk) model.WalkResponse {
	return model.WalkResponse{
		ID:              w.ID,
		StartTime:       w.StartTime,
		DurationMinutes: int64(w.Duration / time.Minute),
		Status:          w.Status,
		DogName:         orUnknown(w.DogName),
		WalkerName:      orUnknown(w.WalkerName),
	}
}

func walksResponse(walks []model.Walk) []model.WalkResponse {
	result := make([]model.WalkResponse, len(walks))
	for i := range walks {
		result[i] = walkResponse(&walks[i])
	}
	return result
}

func orUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
