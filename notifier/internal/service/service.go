package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/napat-dev/lending-service/pkg/auth"
	"github.com/napat-dev/lending-service/pkg/kafka"
)

// Service keeps per-recipient unread counters. State is process-wide and
// cleared on read; borrowers are keyed by username while lenders and staff
// share one counter per role, since any of them may action the event.
type Service struct {
	log *zap.Logger

	mu     sync.Mutex
	unread map[string]int
}

func NewService(log *zap.Logger) *Service {
	return &Service{
		log:    log,
		unread: make(map[string]int),
	}
}

// Record routes a lending event to its recipient's unread counter.
func (s *Service) Record(_ context.Context, event kafka.LendingEvent) error {
	var recipient string
	switch event.Type {
	case kafka.EventRequestCreated:
		recipient = auth.RoleLender
	case kafka.EventReturnRequested:
		recipient = auth.RoleStaff
	case kafka.EventRequestApproved, kafka.EventRequestRejected, kafka.EventReturnConfirmed:
		recipient = event.Borrower
	default:
		s.log.Warn("unknown event type", zap.String("type", event.Type))
		return nil
	}

	s.mu.Lock()
	s.unread[recipient]++
	s.mu.Unlock()
	return nil
}

// ReadAndClear returns the recipient's unread count and resets it.
func (s *Service) ReadAndClear(recipient string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.unread[recipient]
	delete(s.unread, recipient)
	return n
}
