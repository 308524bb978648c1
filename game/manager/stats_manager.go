package manager

import (
	"sync"
	"time"
)

// RoundRecord describes one finished round.
type RoundRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Length    int       `json:"length"`
	Cause     string    `json:"cause"`
}

// Duration is how long the round lasted.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager keeps finished rounds in memory for the lifetime of the process.
// It is safe to share between sessions.
type StatsManager struct {
	mutex   sync.RWMutex
	records []RoundRecord
	maxKept int
}

// NewStatsManager keeps at most maxKept records, oldest dropped first.
// Zero or negative keeps everything.
func NewStatsManager(maxKept int) *StatsManager {
	return &StatsManager{
		records: make([]RoundRecord, 0),
		maxKept: maxKept,
	}
}

func (sm *StatsManager) AddRound(rec RoundRecord) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.records = append(sm.records, rec)
	if sm.maxKept > 0 && len(sm.records) > sm.maxKept {
		sm.records = sm.records[len(sm.records)-sm.maxKept:]
	}
}

// Records returns a copy of the kept rounds, oldest first.
func (sm *StatsManager) Records() []RoundRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	out := make([]RoundRecord, len(sm.records))
	copy(out, sm.records)
	return out
}

func (sm *StatsManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.records)
}

func (sm *StatsManager) BestScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	best := 0
	for _, r := range sm.records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

func (sm *StatsManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.records {
		total += r.Score
	}
	return float64(total) / float64(len(sm.records))
}

func (sm *StatsManager) AverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.records {
		total += r.Duration()
	}
	return total / time.Duration(len(sm.records))
}
