package service

import (
	"context"
	"encoding/csv"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/models"
	"github.com/newsdesk-cms/internal/repository"
)

// subscriberService is the concrete implementation of SubscriberService
type subscriberService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

func newSubscriberService(repos *repository.Repositories, log zerolog.Logger) *subscriberService {
	return &subscriberService{
		repos: repos,
		log:   log.With().Str("service", "subscriber").Logger(),
	}
}

// Subscribe captures an email. Subscribing an already-subscribed email
// succeeds without creating a second row.
func (s *subscriberService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, Invalid("email is required")
	}
	if !strings.Contains(email, "@") {
		return nil, Invalid("email %q is not valid", email)
	}

	subscriber := &models.Subscriber{
		ID:        uuid.New().String(),
		Email:     email,
		CreatedAt: time.Now(),
	}

	stored, created, err := s.repos.Subscriber.Upsert(ctx, subscriber)
	if err != nil {
		return nil, err
	}
	if created {
		s.log.Info().Str("subscriber_id", stored.ID).Msg("Subscriber added")
	}
	return stored, nil
}

// List retrieves all subscribers
func (s *subscriberService) List(ctx context.Context) ([]*models.Subscriber, error) {
	return s.repos.Subscriber.List(ctx)
}

// Delete removes a subscriber
func (s *subscriberService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repos.Subscriber.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.log.Info().Str("subscriber_id", id).Msg("Subscriber deleted")
	return nil
}

// ExportCSV streams all subscribers as CSV: header email,createdAt,
// timestamps in ISO-8601
func (s *subscriberService) ExportCSV(ctx context.Context, w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"email", "createdAt"}); err != nil {
		return err
	}

	err := s.repos.Subscriber.StreamAll(ctx, func(sub *models.Subscriber) error {
		return writer.Write([]string{sub.Email, sub.CreatedAt.Format(time.RFC3339)})
	})
	if err != nil {
		return err
	}

	writer.Flush()
	return writer.Error()
}
