package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dogwalk/dogwalk-go/internal/model"
)

var ErrDogNotFound = errors.New("dog not found")

// DogRepository handles dog persistence operations.
type DogRepository struct {
	db *sql.DB
}

// NewDogRepository creates a new DogRepository.
func NewDogRepository(db *sql.DB) *DogRepository {
	return &DogRepository{db: db}
}

// Create inserts a new dog and sets the generated ID on the dog struct.
func (r *DogRepository) Create(ctx context.Context, dog *model.Dog) error {
	query := `INSERT INTO dogs (name, breed, age, size, special_needs, owner_id)
		VALUES (?, ?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		dog.Name, nullable(dog.Breed), dog.Age, dog.Size, nullable(dog.SpecialNeeds), dog.OwnerID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	dog.ID = id
	return nil
}

// GetByID retrieves a dog by its ID.
func (r *DogRepository) GetByID(ctx context.Context, id int64) (*model.Dog, error) {
	query := `SELECT id, name, breed, age, size, special_needs, owner_id FROM dogs WHERE id = ?`

	dog := &model.Dog{}
	var breed, specialNeeds sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dog.ID, &dog.Name, &breed, &dog.Age, &dog.Size, &specialNeeds, &dog.OwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}

	dog.Breed = breed.String
	dog.SpecialNeeds = specialNeeds.String
	return dog, nil
}

// ListByOwner retrieves all dogs owned by the given user.
func (r *DogRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Dog, error) {
	query := `SELECT id, name, breed, age, size, special_needs, owner_id
		FROM dogs WHERE owner_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dogs []model.Dog
	for rows.Next() {
		var d model.Dog
		var breed, specialNeeds sql.NullString
		if err := rows.Scan(
			&d.ID, &d.Name, &breed, &d.Age, &d.Size, &specialNeeds, &d.OwnerID,
		); err != nil {
			return nil, err
		}
		d.Breed = breed.String
		d.SpecialNeeds = specialNeeds.String
		dogs = append(dogs, d)
	}

	return dogs, rows.Err()
}

// Update persists every mutable field of an existing dog.
func (r *DogRepository) Update(ctx context.Context, dog *model.Dog) error {
	query := `UPDATE dogs SET name = ?, breed = ?, age = ?, size = ?, special_needs = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		dog.Name, nullable(dog.Breed), dog.Age, dog.Size, nullable(dog.SpecialNeeds), dog.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		// Zero rows is fine when the update was a no-op on identical values;
		// confirm the row still exists before calling it missing.
		if _, err := r.GetByID(ctx, dog.ID); err != nil {
			return err
		}
	}

	return nil
}

// Delete removes a dog row. This is a physical delete.
func (r *DogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dogs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrDogNotFound
	}

	return nil
}

// nullable converts an empty string to a SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
