package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

const (
	usageFileName = "usage_log.json"
	proFileName   = "pro_users.json"
)

// JSONFileStore persists usage the way the legacy tool did: one JSON file
// with the full day->email->count mapping, rewritten after every increment,
// and a separate pro_users.json allow-list. Malformed or missing files read
// as empty. The read-modify-write cycle is guarded in-process only; the
// accepted lost-update risk across processes is unchanged.
type JSONFileStore struct {
	mu  sync.Mutex
	dir string
}

func NewJSONFileStore(dir string) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure store dir: %w", err)
	}
	return &JSONFileStore{dir: dir}, nil
}

func (s *JSONFileStore) usagePath() string { return filepath.Join(s.dir, usageFileName) }
func (s *JSONFileStore) proPath() string   { return filepath.Join(s.dir, proFileName) }

func (s *JSONFileStore) Count(_ context.Context, day, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadUsage()[day][email], nil
}

func (s *JSONFileStore) Increment(_ context.Context, day, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	usage := s.loadUsage()
	if usage[day] == nil {
		usage[day] = make(map[string]int)
	}
	usage[day][email]++
	return s.writeJSON(s.usagePath(), usage)
}

func (s *JSONFileStore) IsPro(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.loadPro()[email]
	return ok, nil
}

func (s *JSONFileStore) ProEmails(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.loadPro()
	out := make([]string, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Strings(out)
	return out, nil
}

func (s *JSONFileStore) AddPro(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.loadPro()
	set[email] = struct{}{}
	return s.writePro(set)
}

func (s *JSONFileStore) RemovePro(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.loadPro()
	delete(set, email)
	return s.writePro(set)
}

func (s *JSONFileStore) UsageForDay(_ context.Context, day string) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int)
	for e, n := range s.loadUsage()[day] {
		out[e] = n
	}
	return out, nil
}

func (s *JSONFileStore) loadUsage() map[string]map[string]int {
	usage := make(map[string]map[string]int)
	b, err := os.ReadFile(s.usagePath())
	if err != nil {
		return usage
	}
	if err := json.Unmarshal(b, &usage); err != nil {
		return make(map[string]map[string]int)
	}
	return usage
}

// loadPro accepts the three legacy file shapes:
// {"emails": ["a@b.com"]}, {"a@b.com": true}, or ["a@b.com"].
func (s *JSONFileStore) loadPro() map[string]struct{} {
	set := make(map[string]struct{})

	b, err := os.ReadFile(s.proPath())
	if err != nil {
		return set
	}

	var list struct {
		Emails []string `json:"emails"`
	}
	if err := json.Unmarshal(b, &list); err == nil && list.Emails != nil {
		for _, e := range list.Emails {
			addCanonical(set, e)
		}
		return set
	}

	var flags map[string]any
	if err := json.Unmarshal(b, &flags); err == nil {
		for e, v := range flags {
			if v == true || v == float64(1) {
				addCanonical(set, e)
			}
		}
		return set
	}

	var flat []string
	if err := json.Unmarshal(b, &flat); err == nil {
		for _, e := range flat {
			addCanonical(set, e)
		}
	}
	return set
}

func addCanonical(set map[string]struct{}, email string) {
	if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
		set[email] = struct{}{}
	}
}

func (s *JSONFileStore) writePro(set map[string]struct{}) error {
	emails := make([]string, 0, len(set))
	for e := range set {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return s.writeJSON(s.proPath(), map[string][]string{"emails": emails})
}

func (s *JSONFileStore) writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
