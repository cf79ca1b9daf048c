package goals

import (
	"time"

	"github.com/google/uuid"
)

func (s *Service) SetClock(now func() time.Time, newID func() uuid.UUID) {
	s.now = now
	s.newID = newID
}
