package member

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrMemberNotFound is returned when no member matches the lookup key.
	ErrMemberNotFound = errors.New("member not found")
	// ErrDuplicateMemberID is returned when saving a member whose ID number
	// is already taken by another record.
	ErrDuplicateMemberID = errors.New("member ID number already taken")
)

// Store defines the persistence operations the portal core needs.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Member, error)
	GetByMemberIDNumber(ctx context.Context, number string) (*Member, error)
	// HighestMemberID returns the lexicographically highest ID number with
	// the given prefix, or "" when none exists.
	HighestMemberID(ctx context.Context, prefix string) (string, error)
	Save(ctx context.Context, m *Member) error
}

// MemoryStore is a mutex-guarded in-memory Store used in tests and when no
// database is configured.
type MemoryStore struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*Member
	byIDNum map[string]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:    make(map[uuid.UUID]*Member),
		byIDNum: make(map[string]uuid.UUID),
	}
}

func (s *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.byID[id]
	if !ok {
		return nil, ErrMemberNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *MemoryStore) GetByMemberIDNumber(_ context.Context, number string) (*Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byIDNum[number]
	if !ok {
		return nil, ErrMemberNotFound
	}
	cp := *s.byID[id]
	return &cp, nil
}

func (s *MemoryStore) HighestMemberID(_ context.Context, prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []string
	for num := range s.byIDNum {
		if strings.HasPrefix(num, prefix) {
			matches = append(matches, num)
		}
	}
	if len(matches) == 0 {
		return "", nil
	}
	sort.Strings(matches)
	return matches[len(matches)-1], nil
}

func (s *MemoryStore) Save(_ context.Context, m *Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.MemberIDNumber != "" {
		if owner, ok := s.byIDNum[m.MemberIDNumber]; ok && owner != m.ID {
			return ErrDuplicateMemberID
		}
	}
	if prev, ok := s.byID[m.ID]; ok && prev.MemberIDNumber != "" && prev.MemberIDNumber != m.MemberIDNumber {
		delete(s.byIDNum, prev.MemberIDNumber)
	}
	cp := *m
	s.byID[m.ID] = &cp
	if m.MemberIDNumber != "" {
		s.byIDNum[m.MemberIDNumber] = m.ID
	}
	return nil
}
