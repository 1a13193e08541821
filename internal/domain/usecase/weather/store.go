package weather

import (
	"sync"
	"time"

	"dashboard-api/internal/domain/entity"
	"dashboard-api/internal/domain/model"
)

// Store holds the latest normalized weather document together with the
// refresh pipeline state. Readers always get a deep copy; a failed refresh
// never clears previously loaded data.
type Store struct {
	mutex       sync.RWMutex
	data        *entity.WeatherData
	status      model.WeatherStatus
	generation  uint64
	subscribers map[int]chan model.WeatherSnapshot
	nextSubID   int
}

// NewStore creates an empty store reporting the given attempt ceiling.
func NewStore(maxAttempts int) *Store {
	return &Store{
		status:      model.WeatherStatus{MaxAttempts: maxAttempts},
		subscribers: make(map[int]chan model.WeatherSnapshot),
	}
}

// Snapshot returns a cloned view of the current data and status.
func (s *Store) Snapshot() model.WeatherSnapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() model.WeatherSnapshot {
	return model.WeatherSnapshot{
		Data:   s.data.Clone(),
		Status: s.status,
	}
}

// Seed installs cached data without bumping the generation, so the first real
// refresh still wins. It is a no-op once any data is present.
func (s *Store) Seed(data *entity.WeatherData, source string) bool {
	if data == nil {
		return false
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.data != nil {
		return false
	}
	s.data = data.Clone()
	s.status.HasData = true
	s.status.Source = source
	s.notifyLocked()
	return true
}

// BeginRefresh marks the pipeline loading and returns the generation token
// the refresh must present to commit its outcome.
func (s *Store) BeginRefresh(source string) uint64 {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.generation++
	s.status.Loading = true
	s.status.Attempt = 0
	s.status.LastError = ""
	s.status.Source = source
	s.notifyLocked()
	return s.generation
}

// SetAttempt records attempt telemetry. Stale generations are ignored.
func (s *Store) SetAttempt(generation uint64, attempt int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if generation != s.generation {
		return
	}
	s.status.Attempt = attempt
	s.notifyLocked()
}

// CommitSuccess installs the fetched data. It reports false, leaving the
// store untouched, when a newer refresh has superseded this generation.
func (s *Store) CommitSuccess(generation uint64, data *entity.WeatherData) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if generation != s.generation {
		return false
	}

	s.data = data.Clone()
	s.status.Loading = false
	s.status.HasData = true
	s.status.LastError = ""
	s.status.LastSuccess = time.Now().UTC().Format(time.RFC3339)
	s.notifyLocked()
	return true
}

// CommitFailure records the error while keeping any previously loaded data.
// It reports false when a newer refresh has superseded this generation.
func (s *Store) CommitFailure(generation uint64, err error) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if generation != s.generation {
		return false
	}

	s.status.Loading = false
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.notifyLocked()
	return true
}

// Subscribe registers a change listener. Slow listeners miss intermediate
// snapshots instead of blocking the store.
func (s *Store) Subscribe() (int, <-chan model.WeatherSnapshot) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan model.WeatherSnapshot, 1)
	s.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a listener and closes its channel.
func (s *Store) Unsubscribe(id int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		delete(s.subscribers, id)
		close(ch)
	}
}

func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	for _, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Drop the stale snapshot so the fresh one can be delivered.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
