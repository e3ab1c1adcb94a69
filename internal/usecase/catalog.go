package usecase

import (
	"context"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
)

type CatalogRepository interface {
	Insert(ctx context.Context, s *catalog.Service) (int64, error)
	Update(ctx context.Context, id int64, s *catalog.Service, active bool) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*ServiceView, error)
	List(ctx context.Context, activeOnly bool) ([]*ServiceView, error)
}

type ServiceInput struct {
	Name          string
	Description   string
	PriceYen      int64
	DurationLabel string
	Icon          string
	Popular       bool
	DisplayOrder  int
	Active        bool
}

type CatalogCommands interface {
	CreateService(ctx context.Context, in ServiceInput) (*ServiceView, error)
	UpdateService(ctx context.Context, id int64, in ServiceInput) error
	DeleteService(ctx context.Context, id int64) error
}

type CatalogQueries interface {
	GetService(ctx context.Context, id int64) (*ServiceView, error)
	ListServices(ctx context.Context) ([]*ServiceView, error)
	ListActiveServices(ctx context.Context) ([]*ServiceView, error)
}

type catalogUseCaseImpl struct {
	repo CatalogRepository
}

func NewCatalogUseCase(repo CatalogRepository) (CatalogCommands, CatalogQueries) {
	u := &catalogUseCaseImpl{repo: repo}
	return u, u
}

func (u *catalogUseCaseImpl) CreateService(ctx context.Context, in ServiceInput) (*ServiceView, error) {
	svc, err := catalog.NewService(in.Name, in.Description, in.PriceYen, in.DurationLabel, in.Icon, in.Popular, in.DisplayOrder)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrServiceValidation)
	}

	id, err := u.repo.Insert(ctx, svc)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}

	view, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}

func (u *catalogUseCaseImpl) UpdateService(ctx context.Context, id int64, in ServiceInput) error {
	svc, err := catalog.NewService(in.Name, in.Description, in.PriceYen, in.DurationLabel, in.Icon, in.Popular, in.DisplayOrder)
	if err != nil {
		return errs.Mark(err, errs.ErrServiceValidation)
	}

	if err := u.repo.Update(ctx, id, svc, in.Active); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrServiceNotFound
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (u *catalogUseCaseImpl) DeleteService(ctx context.Context, id int64) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrServiceNotFound
		}
		return errs.Mark(err, errs.ErrStorageFailure)
	}
	return nil
}

func (u *catalogUseCaseImpl) GetService(ctx context.Context, id int64) (*ServiceView, error) {
	view, err := u.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return view, nil
}

func (u *catalogUseCaseImpl) ListServices(ctx context.Context) ([]*ServiceView, error) {
	views, err := u.repo.List(ctx, false)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}

func (u *catalogUseCaseImpl) ListActiveServices(ctx context.Context) ([]*ServiceView, error) {
	views, err := u.repo.List(ctx, true)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrStorageFailure)
	}
	return views, nil
}
