package service

import "time"

// SetClock подменяет часы в тестах внешнего пакета service_test
func (l *Ledger) SetClock(now func() time.Time) { l.now = now }

func (s *Sightings) SetClock(now func() time.Time) { s.now = now }

func (s *Sweeper) SetClock(now func() time.Time) { s.now = now }
