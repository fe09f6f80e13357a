package report

import (
	"sync"
	"time"
)

// Averager maintains a running average for a metric.
type Averager struct {
	mu    sync.RWMutex
	sum   float64
	count int64
}

func (a *Averager) Add(value float64) {
	if value == 0 {
		return // Ignore zero values
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sum += value
	a.count++
}

func (a *Averager) AddDuration(value time.Duration) {
	if value == 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sum += float64(value)
	a.count++
}

func (a *Averager) Average() float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.count == 0 {
		return 0
	}
	return a.sum / float64(a.count)
}

func (a *Averager) Count() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.count
}

func (a *Averager) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sum = 0
	a.count = 0
}
