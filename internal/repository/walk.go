package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dogwalk/dogwalk-go/internal/model"
)

var ErrWalkNotFound = errors.New("walk not found")

// WalkRepository handles walk persistence operations. Read queries join the
// dog and walker rows so projections can carry their names.
type WalkRepository struct {
	db *sql.DB
}

// NewWalkRepository creates a new WalkRepository.
func NewWalkRepository(db *sql.DB) *WalkRepository {
	return &WalkRepository{db: db}
}

const walkSelect = `SELECT w.id, w.start_time, w.duration_minutes, w.status,
		w.dog_id, w.walker_id, d.name, u.name
	FROM walks w
	LEFT JOIN dogs d ON d.id = w.dog_id
	LEFT JOIN users u ON u.id = w.walker_id`

// Create inserts a new walk and sets the generated ID on the walk struct.
func (r *WalkRepository) Create(ctx context.Context, walk *model.Walk) error {
	query := `INSERT INTO walks (start_time, duration_minutes, status, dog_id, walker_id)
		VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		walk.StartTime, int64(walk.Duration/time.Minute), walk.Status, walk.DogID, walk.WalkerID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	walk.ID = id
	return nil
}

// GetByID retrieves a walk by its ID, with dog and walker names joined in.
func (r *WalkRepository) GetByID(ctx context.Context, id int64) (*model.Walk, error) {
	row := r.db.QueryRowContext(ctx, walkSelect+` WHERE w.id = ?`, id)

	walk, err := scanWalk(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWalkNotFound
		}
		return nil, err
	}

	return walk, nil
}

// List retrieves all walks with dog and walker names joined in.
func (r *WalkRepository) List(ctx context.Context) ([]model.Walk, error) {
	return r.queryWalks(ctx, walkSelect+` ORDER BY w.id`)
}

// ListByWalker retrieves all walks assigned to the given walker.
func (r *WalkRepository) ListByWalker(ctx context.Context, walkerID int64) ([]model.Walk, error) {
	return r.queryWalks(ctx, walkSelect+` WHERE w.walker_id = ? ORDER BY w.id`, walkerID)
}

// ListByOwner retrieves all walks whose dog belongs to the given owner.
// The owner is reached indirectly: walk → dog → owner.
func (r *WalkRepository) ListByOwner(ctx context.Context, ownerID int64) ([]model.Walk, error) {
	return r.queryWalks(ctx, walkSelect+` WHERE d.owner_id = ? ORDER BY w.id`, ownerID)
}

// Update persists the mutable fields of an existing walk.
func (r *WalkRepository) Update(ctx context.Context, walk *model.Walk) error {
	query := `UPDATE walks SET start_time = ?, duration_minutes = ?, status = ? WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		walk.StartTime, int64(walk.Duration/time.Minute), walk.Status, walk.ID,
	)
	return err
}

func (r *WalkRepository) queryWalks(ctx context.Context, query string, args ...any) ([]model.Walk, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var walks []model.Walk
	for rows.Next() {
		w, err := scanWalk(rows.Scan)
		if err != nil {
			return nil, err
		}
		walks = append(walks, *w)
	}

	return walks, rows.Err()
}

func scanWalk(scan func(dest ...any) error) (*model.Walk, error) {
	walk := &model.Walk{}
	var minutes int64
	var dogName, walkerName sql.NullString

	err := scan(
		&walk.ID, &walk.StartTime, &minutes, &walk.Status,
		&walk.DogID, &walk.WalkerID, &dogName, &walkerName,
	)
	if err != nil {
		return nil, err
	}

	walk.Duration = time.Duration(minutes) * time.Minute
	walk.DogName = dogName.String
	walk.WalkerName = walkerName.String
	return walk, nil
}
