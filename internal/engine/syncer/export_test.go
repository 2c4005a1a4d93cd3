package syncer

import "time"

// SetClock replaces the syncer's time source.
func (s *Syncer) SetClock(now func() time.Time) {
	s.now = now
}
