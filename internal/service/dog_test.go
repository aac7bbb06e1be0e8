package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/dogwalk/dogwalk-go/internal/model"
	"github.com/dogwalk/dogwalk-go/internal/repository"
)

// -------------------------
// In-memory dog repo
// -------------------------

type fakeDogRepo struct {
	byID   map[int64]model.Dog
	nextID int64
}

func newFakeDogRepo() *fakeDogRepo {
	return &fakeDogRepo{byID: map[int64]model.Dog{}}
}

func (r *fakeDogRepo) Create(ctx context.Context, dog *model.Dog) error {
	r.nextID++
	dog.ID = r.nextID
	r.byID[dog.ID] = *dog
	return nil
}

func (r *fakeDogRepo) GetByID(ctx context.Context, id int64) (*model.Dog, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrDogNotFound
	}
	return &d, nil
}

func (r *fakeDogRepo) ListByOwner(ctx context.Context, ownerID int64) ([]model.Dog, error) {
	var out []model.Dog
	for _, d := range r.byID {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeDogRepo) Update(ctx context.Context, dog *model.Dog) error {
	if _, ok := r.byID[dog.ID]; !ok {
		return repository.ErrDogNotFound
	}
	r.byID[dog.ID] = *dog
	return nil
}

func (r *fakeDogRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return repository.ErrDogNotFound
	}
	delete(r.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

// -------------------------
// Tests
// -------------------------

func TestDogCreate_SetsOwnerServerSide(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	dog, err := svc.Create(context.Background(), model.CreateDogRequest{
		Name: "Rex",
		Age:  3,
		Size: "Medium",
	}, 1)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if dog.ID == 0 {
		t.Error("Create() expected generated ID")
	}
	if dog.OwnerID != 1 {
		t.Errorf("Create() OwnerID = %d, want 1", dog.OwnerID)
	}
}

func TestDogCreate_MissingName(t *testing.T) {
	svc := NewDogService(newFakeDogRepo())

	_, err := svc.Create(context.Background(), model.CreateDogRequest{Size: "Small"}, 1)
	if !errors.Is(err, ErrDogNameRequired) {
		t.Errorf("Create() expected ErrDogNameRequired, got %v", err)
	}
}

func TestDogCreate_MissingSize(t *testing.T) {
	svc := NewDogService(newFakeDogRepo())

	_, err := svc.Create(context.Background(), model.CreateDogRequest{Name: "Rex"}, 1)
	if !errors.Is(err, ErrDogSizeRequired) {
		t.Errorf("Create() expected ErrDogSizeRequired, got %v", err)
	}
}

func TestDogUpdate_OwnerMismatchForbidden(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	dog, err := svc.Create(context.Background(), model.CreateDogRequest{
		Name: "Rex",
		Age:  3,
		Size: "Medium",
	}, 1)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	_, err = svc.Update(context.Background(), dog.ID, model.UpdateDogRequest{
		Name: strPtr("Rex2"),
	}, 2)
	if !errors.Is(err, ErrDogForbidden) {
		t.Errorf("Update() by wrong owner expected ErrDogForbidden, got %v", err)
	}

	stored, _ := repo.GetByID(context.Background(), dog.ID)
	if stored.Name != "Rex" {
		t.Errorf("stored name = %q, want unchanged %q", stored.Name, "Rex")
	}
}

func TestDogUpdate_MissingDogForbidden(t *testing.T) {
	svc := NewDogService(newFakeDogRepo())

	_, err := svc.Update(context.Background(), 42, model.UpdateDogRequest{
		Name: strPtr("Ghost"),
	}, 1)
	if !errors.Is(err, ErrDogForbidden) {
		t.Errorf("Update() on missing dog expected ErrDogForbidden, got %v", err)
	}
}

func TestDogUpdate_PartialFields(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	dog, err := svc.Create(context.Background(), model.CreateDogRequest{
		Name:         "Buddy",
		Breed:        "Labrador",
		Age:          3,
		Size:         "Large",
		SpecialNeeds: "None known",
	}, 1)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), dog.ID, model.UpdateDogRequest{
		Name: strPtr("Buddy Jr"),
		Age:  intPtr(4),
	}, 1)
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}

	if updated.Name != "Buddy Jr" {
		t.Errorf("Name = %q, want %q", updated.Name, "Buddy Jr")
	}
	if updated.Age != 4 {
		t.Errorf("Age = %d, want 4", updated.Age)
	}
	if updated.Breed != "Labrador" {
		t.Errorf("Breed = %q, want unchanged %q", updated.Breed, "Labrador")
	}
	if updated.Size != "Large" {
		t.Errorf("Size = %q, want unchanged %q", updated.Size, "Large")
	}
	if updated.SpecialNeeds != "None known" {
		t.Errorf("SpecialNeeds = %q, want unchanged %q", updated.SpecialNeeds, "None known")
	}
}

func TestDogUpdate_ExplicitEmptyClearsField(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	dog, err := svc.Create(context.Background(), model.CreateDogRequest{
		Name:  "Max",
		Breed: "Beagle",
		Size:  "Medium",
	}, 1)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), dog.ID, model.UpdateDogRequest{
		Breed: strPtr(""),
	}, 1)
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Breed != "" {
		t.Errorf("Breed = %q, want cleared", updated.Breed)
	}
}

func TestDogDelete_OwnerMismatchForbidden(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	dog, err := svc.Create(context.Background(), model.CreateDogRequest{
		Name: "Rex",
		Size: "Small",
	}, 1)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), dog.ID, 2); !errors.Is(err, ErrDogForbidden) {
		t.Errorf("Delete() by wrong owner expected ErrDogForbidden, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), dog.ID); err != nil {
		t.Error("dog should still exist after forbidden delete")
	}
}

func TestDogDelete_Success(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	dog, err := svc.Create(context.Background(), model.CreateDogRequest{
		Name: "Rex",
		Size: "Small",
	}, 1)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), dog.ID, 1); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), dog.ID); !errors.Is(err, repository.ErrDogNotFound) {
		t.Error("dog should be gone after delete")
	}
}

func TestDogList_EmptyIsNotError(t *testing.T) {
	svc := NewDogService(newFakeDogRepo())

	dogs, err := svc.List(context.Background(), 7)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(dogs) != 0 {
		t.Errorf("List() expected no dogs, got %d", len(dogs))
	}
}

func TestDogList_FiltersByOwner(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	if _, err := svc.Create(context.Background(), model.CreateDogRequest{Name: "A", Size: "Small"}, 1); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if _, err := svc.Create(context.Background(), model.CreateDogRequest{Name: "B", Size: "Small"}, 2); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	dogs, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List() unexpected error: %v", err)
	}
	if len(dogs) != 1 || dogs[0].Name != "A" {
		t.Errorf("List() = %+v, want only owner 1's dog", dogs)
	}
}

func TestDogGet_NoOwnershipCheck(t *testing.T) {
	repo := newFakeDogRepo()
	svc := NewDogService(repo)

	dog, err := svc.Create(context.Background(), model.CreateDogRequest{Name: "Rex", Size: "Small"}, 1)
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	// Get carries no caller identity; reads are open to any authenticated user.
	got, err := svc.Get(context.Background(), dog.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Name != "Rex" {
		t.Errorf("Get() name = %q, want Rex", got.Name)
	}
}

func TestDogGet_NotFound(t *testing.T) {
	svc := NewDogService(newFakeDogRepo())

	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, ErrDogNotFound) {
		t.Errorf("Get() expected ErrDogNotFound, got %v", err)
	}
}
