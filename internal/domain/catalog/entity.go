package catalog

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyServiceName = errors.New("service name must not be empty")
	ErrNegativePrice    = errors.New("service price cannot be negative")
)

// Service is a bookable offering (cut, color, ...). Its lifecycle is
// independent from bookings: a booking stores the service name it was made
// with, so editing or deleting a Service never corrupts past reservations.
type Service struct {
	id            int64
	name          string
	description   string
	priceYen      int64
	durationLabel string
	icon          string
	popular       bool
	displayOrder  int
	active        bool
	createdAt     time.Time
	updatedAt     time.Time
}

func NewService(name, description string, priceYen int64, durationLabel, icon string, popular bool, displayOrder int) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if priceYen < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		name:          name,
		description:   strings.TrimSpace(description),
		priceYen:      priceYen,
		durationLabel: durationLabel,
		icon:          icon,
		popular:       popular,
		displayOrder:  displayOrder,
		active:        true,
	}, nil
}

func Reconstruct(
	id int64,
	name, description string,
	priceYen int64,
	durationLabel, icon string,
	popular bool,
	displayOrder int,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:            id,
		name:          name,
		description:   description,
		priceYen:      priceYen,
		durationLabel: durationLabel,
		icon:          icon,
		popular:       popular,
		displayOrder:  displayOrder,
		active:        active,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (s *Service) ID() int64             { return s.id }
func (s *Service) Name() string          { return s.name }
func (s *Service) Description() string   { return s.description }
func (s *Service) PriceYen() int64       { return s.priceYen }
func (s *Service) DurationLabel() string { return s.durationLabel }
func (s *Service) Icon() string          { return s.icon }
func (s *Service) Popular() bool         { return s.popular }
func (s *Service) DisplayOrder() int     { return s.displayOrder }
func (s *Service) Active() bool          { return s.active }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }
func (s *Service) UpdatedAt() time.Time  { return s.updatedAt }
