package audit

import (
	"context"
	"time"
)

type Service interface {
	LogMutation(ctx context.Context, entry Entry) error
	QueryEntries(ctx context.Context, from, to time.Time, actorID, entity string) ([]Entry, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogMutation(ctx context.Context, entry Entry) error {
	return s.repo.LogMutation(ctx, entry)
}

func (s *service) QueryEntries(ctx context.Context, from, to time.Time, actorID, entity string) ([]Entry, error) {
	return s.repo.QueryEntries(ctx, from, to, actorID, entity)
}
