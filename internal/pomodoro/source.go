package pomodoro

import "time"

// TickSource delivers the one-per-interval ticks that drive a Timer.
type TickSource interface {
	Ticks() <-chan time.Time
	Stop()
}

type tickerSource struct {
	ticker *time.Ticker
}

// NewTickerSource returns a wall-clock source backed by time.Ticker.
func NewTickerSource(interval time.Duration) TickSource {
	if interval <= 0 {
		interval = time.Second
	}
	return &tickerSource{ticker: time.NewTicker(interval)}
}

func (s *tickerSource) Ticks() <-chan time.Time {
	return s.ticker.C
}

func (s *tickerSource) Stop() {
	s.ticker.Stop()
}
