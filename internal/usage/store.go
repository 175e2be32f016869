package usage

import (
	"context"
	"sort"
	"sync"
)

// Store is the gate's view of durable usage state: per-(day, email) counters
// plus the externally managed pro allow-list. Emails are canonical
// (trimmed, lowercased) before they reach a store.
type Store interface {
	// Count returns the recorded generations for the email on the given
	// ISO day. Unknown pairs count as zero.
	Count(ctx context.Context, day, email string) (int, error)
	// Increment adds one generation to the (day, email) counter.
	Increment(ctx context.Context, day, email string) error
	// IsPro reports allow-list membership.
	IsPro(ctx context.Context, email string) (bool, error)
}

// AdminStore adds the operator surface: allow-list mutation for the proctl
// tool and read-only dumps for the admin API and CSV export. The HTTP API
// itself never writes the allow-list.
type AdminStore interface {
	Store
	ProEmails(ctx context.Context) ([]string, error)
	AddPro(ctx context.Context, email string) error
	RemovePro(ctx context.Context, email string) error
	// UsageForDay returns the full email->count mapping for one day.
	UsageForDay(ctx context.Context, day string) (map[string]int, error)
}

// MemoryStore keeps everything in process memory. Used by tests and as the
// zero-config dev backend.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]map[string]int // day -> email -> count
	pro    map[string]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts: make(map[string]map[string]int),
		pro:    make(map[string]struct{}),
	}
}

func (s *MemoryStore) Count(_ context.Context, day, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[day][email], nil
}

func (s *MemoryStore) Increment(_ context.Context, day, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counts[day] == nil {
		s.counts[day] = make(map[string]int)
	}
	s.counts[day][email]++
	return nil
}

func (s *MemoryStore) IsPro(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pro[email]
	return ok, nil
}

func (s *MemoryStore) ProEmails(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.pro))
	for e := range s.pro {
		out = append(out, e)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryStore) AddPro(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pro[email] = struct{}{}
	return nil
}

func (s *MemoryStore) RemovePro(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pro, email)
	return nil
}

func (s *MemoryStore) UsageForDay(_ context.Context, day string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.counts[day]))
	for e, n := range s.counts[day] {
		out[e] = n
	}
	return out, nil
}
