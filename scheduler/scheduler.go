package scheduler

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/color-game/palette-api/models"
	"github.com/color-game/palette-api/palette"
)

// Scheduler keeps the palette of the day in memory and rolls it over at midnight
type Scheduler struct {
	now func() time.Time

	mu      sync.RWMutex
	current models.DailyPalette
	ready   bool

	timer    *time.Timer
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		now:  time.Now,
		done: make(chan struct{}),
	}
}

// Start generates today's palette, then regenerates at midnight every day
func (s *Scheduler) Start() {
	s.GenerateDailyPalette()

	now := s.now()
	nextMidnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	durationUntilMidnight := nextMidnight.Sub(now)

	log.Printf("Scheduler started. Next daily palette generation in %v", durationUntilMidnight)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = time.AfterFunc(durationUntilMidnight, func() {
		s.GenerateDailyPalette()

		s.mu.Lock()
		select {
		case <-s.done:
			s.mu.Unlock()
			return
		default:
		}
		// After first run, schedule to run every 24 hours
		s.ticker = time.NewTicker(24 * time.Hour)
		ticker := s.ticker
		s.mu.Unlock()

		go func() {
			for {
				select {
				case <-ticker.C:
					s.GenerateDailyPalette()
				case <-s.done:
					return
				}
			}
		}()
	})
}

// Stop stops the scheduler; calling it more than once is harmless
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if s.timer != nil {
			s.timer.Stop()
		}
		if s.ticker != nil {
			s.ticker.Stop()
		}
		close(s.done)
		s.mu.Unlock()
		log.Println("Scheduler stopped")
	})
}

// GenerateDailyPalette computes and stores the palette for the current date
func (s *Scheduler) GenerateDailyPalette() models.DailyPalette {
	now := s.now()
	today := normalizeDate(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready && s.current.Date.Equal(today) {
		log.Printf("Daily palette already exists for %s: %s", today.Format("2006-01-02"), s.current.Params.BaseColor)
		return s.current
	}

	s.current = models.DailyPalette{
		Date:        today,
		Params:      PaletteForDate(today),
		GeneratedAt: now,
	}
	s.ready = true

	log.Printf("Successfully generated daily palette: %s (%s) for %s",
		s.current.Params.BaseColor, s.current.Params.BaseColor.RGBString(),
		today.Format("2006-01-02"))

	return s.current
}

// Today returns the current palette, regenerating it if the date rolled over since
// the last tick.
func (s *Scheduler) Today() (models.DailyPalette, error) {
	today := normalizeDate(s.now())

	s.mu.RLock()
	current, ready := s.current, s.ready
	s.mu.RUnlock()

	if ready && current.Date.Equal(today) {
		return current, nil
	}
	return s.GenerateDailyPalette(), nil
}

// PaletteForDate derives the day's parameters from the calendar date alone, so every
// instance of the service agrees on it without shared storage.
func PaletteForDate(date time.Time) palette.Params {
	seed := int64(date.Year()*10000 + int(date.Month())*100 + date.Day())
	rng := rand.New(rand.NewSource(seed))
	return palette.DefaultParams(palette.RandomBaseColor(rng, palette.DefaultBaseColor))
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
