package repository

import (
	"context"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra"
	"salon-booking/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CatalogRepository struct {
	db *pgxpool.Pool
}

func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Insert(ctx context.Context, s *catalog.Service) (int64, error) {
	const q = `
		INSERT INTO services (name, description, price, duration_label, icon, is_popular, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q,
		s.Name(), s.Description(), s.PriceYen(), s.DurationLabel(),
		s.Icon(), s.Popular(), s.DisplayOrder(), s.Active(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert service", err)
	}
	return id, nil
}

func (r *CatalogRepository) Update(ctx context.Context, id int64, s *catalog.Service, active bool) error {
	const q = `
		UPDATE services
		SET name = $2, description = $3, price = $4, duration_label = $5,
		    icon = $6, is_popular = $7, display_order = $8, is_active = $9,
		    updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id,
		s.Name(), s.Description(), s.PriceYen(), s.DurationLabel(),
		s.Icon(), s.Popular(), s.DisplayOrder(), active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int64) (*usecase.ServiceView, error) {
	const q = `
		SELECT id, name, description, price, duration_label, icon, is_popular, display_order, is_active, created_at, updated_at
		FROM services
		WHERE id = $1`

	view, err := scanServiceRow(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return view, nil
}

func (r *CatalogRepository) List(ctx context.Context, activeOnly bool) ([]*usecase.ServiceView, error) {
	q := `
		SELECT id, name, description, price, duration_label, icon, is_popular, display_order, is_active, created_at, updated_at
		FROM services`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var result []*usecase.ServiceView
	for rows.Next() {
		view, err := scanServiceRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", err)
	}

	return result, nil
}

func scanServiceRow(row pgx.Row) (*usecase.ServiceView, error) {
	var (
		view        usecase.ServiceView
		description *string
		duration    *string
		icon        *string
	)
	err := row.Scan(&view.ID, &view.Name, &description, &view.PriceYen, &duration,
		&icon, &view.Popular, &view.DisplayOrder, &view.Active, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if description != nil {
		view.Description = *description
	}
	if duration != nil {
		view.DurationLabel = *duration
	}
	if icon != nil {
		view.Icon = *icon
	}
	return &view, nil
}
