package task

import "time"

// safetyInterval is how often the purge re-checks the day marker after the
// first midnight fires. Timers can be delayed or dropped while the host
// sleeps; a stale task list after wake is the failure this guards against.
const safetyInterval = time.Hour

// Start launches the rollover scheduler: a timer armed for the next local
// midnight plus an hourly safety ticker. Call Stop when the store is done.
func (s *Store) Start() {
	go s.run()
}

// Stop cancels the rollover scheduler. Safe to call more than once.
func (s *Store) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) run() {
	timer := time.NewTimer(untilNextMidnight(s.clock.Now()))
	defer timer.Stop()
	safety := time.NewTicker(safetyInterval)
	defer safety.Stop()

	for {
		select {
		case <-timer.C:
			s.RolloverIfNeeded()
			timer.Reset(untilNextMidnight(s.clock.Now()))
		case <-safety.C:
			s.RolloverIfNeeded()
		case <-s.stop:
			return
		}
	}
}

// RolloverIfNeeded purges stale tasks when the calendar day has moved past
// the stored cleanup marker. No-op otherwise.
func (s *Store) RolloverIfNeeded() bool {
	today := s.clock.Now().Format(dayLayout)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cleanupDay == today {
		return false
	}
	s.purgeLocked(today)
	return true
}

// untilNextMidnight returns the duration to the next local midnight, with a
// small floor so a timer armed exactly at 00:00 cannot spin.
func untilNextMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	d := next.Sub(now)
	if d < time.Second {
		d = time.Second
	}
	return d
}
