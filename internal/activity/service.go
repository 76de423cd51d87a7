package activity

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

type eventAdder interface {
	Add(ctx context.Context, event Event) error
}

// Service writes activity log events. Recording is best effort,
// a failed write never fails the request that triggered it.
type Service struct {
	repo eventAdder
}

func NewService(repo eventAdder) *Service {
	return &Service{repo: repo}
}

// RecordAsync stores the event in a detached goroutine. The caller request
// context is deliberately not used, the write should survive the request.
func (s *Service) RecordAsync(userID int, kind, details string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.repo.Add(ctx, Event{
			UserID:    userID,
			Kind:      kind,
			Details:   details,
			Timestamp: time.Now(),
		}); err != nil {
			log.Errorf("record activity [%s] for user %d: %s", kind, userID, err)
		}
	}()
}
