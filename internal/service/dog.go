package service

import (
	"context"
	"errors"

	"github.com/dogwalk/dogwalk-go/internal/model"
	"github.com/dogwalk/dogwalk-go/internal/repository"
)

var (
	ErrDogNameRequired = errors.New("name is required")
	ErrDogSizeRequired = errors.New("size is required")
	ErrDogNotFound     = errors.New("dog not found")
	// ErrDogForbidden covers both a missing dog and an ownership mismatch on
	// mutation, so callers cannot probe which dogs exist.
	ErrDogForbidden = errors.New("dog does not belong to caller")
)

// DogRepository is the persistence surface the dog service needs.
type DogRepository interface {
	Create(ctx context.Context, dog *model.Dog) error
	GetByID(ctx context.Context, id int64) (*model.Dog, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]model.Dog, error)
	Update(ctx context.Context, dog *model.Dog) error
	Delete(ctx context.Context, id int64) error
}

// DogService handles dog CRUD with per-owner authorization.
type DogService struct {
	repo DogRepository
}

// NewDogService creates a new DogService.
func NewDogService(repo DogRepository) *DogService {
	return &DogService{repo: repo}
}

// List returns all dogs owned by the given owner. No dogs is an empty slice,
// not an error.
func (s *DogService) List(ctx context.Context, ownerID int64) ([]model.Dog, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Get returns a dog by ID. Any authenticated caller may read any dog.
func (s *DogService) Get(ctx context.Context, id int64) (*model.Dog, error) {
	dog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}
	return dog, nil
}

// Create persists a new dog for ownerID. The owner always comes from the
// authenticated caller, never from the request body.
func (s *DogService) Create(ctx context.Context, req model.CreateDogRequest, ownerID int64) (*model.Dog, error) {
	if req.Name == "" {
		return nil, ErrDogNameRequired
	}
	if req.Size == "" {
		return nil, ErrDogSizeRequired
	}

	dog := &model.Dog{
		Name:         req.Name,
		Breed:        req.Breed,
		Age:          req.Age,
		Size:         req.Size,
		SpecialNeeds: req.SpecialNeeds,
		OwnerID:      ownerID,
	}

	if err := s.repo.Create(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

// Update applies the non-nil fields of req to the dog and persists it in a
// single write. Only the dog's owner may update it.
func (s *DogService) Update(ctx context.Context, id int64, req model.UpdateDogRequest, ownerID int64) (*model.Dog, error) {
	dog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, ErrDogForbidden
		}
		return nil, err
	}
	if dog.OwnerID != ownerID {
		return nil, ErrDogForbidden
	}

	if req.Name != nil {
		dog.Name = *req.Name
	}
	if req.Breed != nil {
		dog.Breed = *req.Breed
	}
	if req.Age != nil {
		dog.Age = *req.Age
	}
	if req.Size != nil {
		dog.Size = *req.Size
	}
	if req.SpecialNeeds != nil {
		dog.SpecialNeeds = *req.SpecialNeeds
	}

	if err := s.repo.Update(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

// Delete removes a dog. Only the dog's owner may delete it.
func (s *DogService) Delete(ctx context.Context, id int64, ownerID int64) error {
	dog, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return ErrDogForbidden
		}
		return err
	}
	if dog.OwnerID != ownerID {
		return ErrDogForbidden
	}

	return s.repo.Delete(ctx, id)
}
