package commission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/commissions/internal/repository"
)

// Service handles commission record business logic.
type Service struct {
	repo   Repository
	opts   ServiceOptions
	logger *slog.Logger
}

// NewService creates a new commission service.
func NewService(repo Repository, opts ServiceOptions, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, opts: opts, logger: logger}
}

// Create validates and stores a new commission, returning it with its assigned id.
func (s *Service) Create(ctx context.Context, in Input) (*Commission, error) {
	if err := ValidateInput(in, s.opts.StrictVocabulary); err != nil {
		return nil, err
	}

	c := s.build(0, in)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("%w: creating commission: %w", ErrStorage, err)
	}

	s.logger.Info("commission created", "commission_id", c.ID, "status", c.Status)
	return c, nil
}

// Get returns a commission by id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (*Commission, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, s.mapError(err, "getting commission")
	}
	return c, nil
}

// Update overwrites every field of an existing commission.
// Unknown ids fail with ErrNotFound; nothing is written on validation failure.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Commission, error) {
	if err := ValidateInput(in, s.opts.StrictVocabulary); err != nil {
		return nil, err
	}

	c := s.build(id, in)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, s.mapError(err, "updating commission")
	}

	s.logger.Info("commission updated", "commission_id", id, "status", c.Status)
	return c, nil
}

// Delete removes a commission. Deleting an unknown id is not an error.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: deleting commission: %w", ErrStorage, err)
	}
	s.logger.Info("commission deleted", "commission_id", id)
	return nil
}

// MarkComplete sets the status to Completed and leaves every other field untouched.
func (s *Service) MarkComplete(ctx context.Context, id int64) error {
	if err := s.repo.SetStatus(ctx, id, StatusCompleted); err != nil {
		return s.mapError(err, "marking commission complete")
	}
	s.logger.Info("commission completed", "commission_id", id)
	return nil
}

func (s *Service) build(id int64, in Input) *Commission {
	c := &Commission{
		ID:       id,
		Client:   in.Client,
		Title:    in.Title,
		Type:     in.Type,
		Deadline: in.Deadline,
		Status:   in.Status,
		Notes:    in.Notes,
	}
	if in.Price != nil {
		c.Price = *in.Price
	}
	if s.opts.StrictVocabulary && c.Status == "" {
		c.Status = StatusNotStarted
	}
	return c
}

func (s *Service) mapError(err error, action string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %s: %w", ErrStorage, action, err)
}
