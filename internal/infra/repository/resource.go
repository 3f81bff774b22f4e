package repository

import (
	"context"
	"time"

	"campus-reassign/internal/domain/resource"
	"campus-reassign/internal/infra"
	"campus-reassign/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	db *pgxpool.Pool
}

func NewResourceRepository(db *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{db: db}
}

const selectResourceSQL = `
SELECT id, name, resource_type, capacity, building, floor, location_text, features
FROM resources
`

func (r *ResourceRepository) GetResource(ctx context.Context, id uuid.UUID) (*resource.Descriptor, error) {
	desc, err := scanDescriptor(r.db.QueryRow(ctx, selectResourceSQL+"WHERE id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource", err)
	}
	return desc, nil
}

// GetCandidates returns active resources of the same type, the original
// excluded. Ordering is fixed so scoring ties resolve deterministically.
func (r *ResourceRepository) GetCandidates(ctx context.Context, typ resource.Type, excludeID uuid.UUID, limit int32) ([]resource.Descriptor, error) {
	rows, err := r.db.Query(ctx,
		selectResourceSQL+"WHERE resource_type = $1 AND id <> $2 AND active ORDER BY name, id LIMIT $3",
		string(typ), excludeID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query candidate resources", err)
	}
	defer rows.Close()

	var result []resource.Descriptor
	for rows.Next() {
		desc, err := scanDescriptor(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate resource", err)
		}
		result = append(result, *desc)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed reading candidate resources", err)
	}
	return result, nil
}

// CheckAvailability reports whether the resource is free of overlapping live
// reservations over [start, end).
func (r *ResourceRepository) CheckAvailability(ctx context.Context, resourceID uuid.UUID, start, end time.Time) (bool, error) {
	var occupied bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE resource_id = $1
			  AND status IN ('CONFIRMED', 'PENDING')
			  AND start_time < $3
			  AND end_time > $2
		)`, resourceID, start, end).Scan(&occupied)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check resource availability", err)
	}
	return !occupied, nil
}

func scanDescriptor(row requestRow) (*resource.Descriptor, error) {
	var (
		id           uuid.UUID
		name, typ    string
		capacity     int
		building     string
		floor        *int
		locationText string
		features     []string
	)
	if err := row.Scan(&id, &name, &typ, &capacity, &building, &floor, &locationText, &features); err != nil {
		return nil, err
	}

	loc := resource.Location{Building: building, FreeText: locationText}
	if floor != nil {
		loc.Floor = *floor
		loc.HasFloor = true
	}

	return &resource.Descriptor{
		ID:       id,
		Name:     name,
		Type:     resource.Type(typ),
		Capacity: capacity,
		Features: resource.NewFeatureSet(features...),
		Location: loc,
	}, nil
}
