package member

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Member ID numbers look like DC-2024-0042: year-scoped, zero-padded,
// assigned once and never changed.

const idNumberPrefix = "DC"

// FormatMemberID builds the canonical ID number for a year and sequence.
func FormatMemberID(year, seq int) string {
	return fmt.Sprintf("%s-%d-%04d", idNumberPrefix, year, seq)
}

// YearPrefix returns the shared prefix of all ID numbers issued in a year.
func YearPrefix(year int) string {
	return fmt.Sprintf("%s-%d-", idNumberPrefix, year)
}

// sequenceOf extracts the numeric tail of an ID number. A malformed tail
// reports ok=false so allocation restarts from 1, matching how the portal
// always treated unparseable legacy numbers.
func sequenceOf(idNumber string) (int, bool) {
	i := strings.LastIndex(idNumber, "-")
	if i < 0 || i == len(idNumber)-1 {
		return 0, false
	}
	n, err := strconv.Atoi(idNumber[i+1:])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Allocator assigns an ID number to a member that lacks one.
type Allocator interface {
	Assign(ctx context.Context, m *Member) error
}

// StoreAllocator allocates ID numbers with a read-then-write against a Store.
// Uniqueness is enforced by the store (unique index); on a duplicate the
// allocation is retried with a fresh read, bounded by maxAssignRetries.
type StoreAllocator struct {
	Store Store
}

const maxAssignRetries = 5

func (a StoreAllocator) Assign(ctx context.Context, m *Member) error {
	if m.MemberIDNumber != "" {
		return nil
	}
	year := m.CreatedAt.Year()
	if m.CreatedAt.IsZero() {
		year = time.Now().UTC().Year()
	}
	prefix := YearPrefix(year)

	for attempt := 0; attempt < maxAssignRetries; attempt++ {
		highest, err := a.Store.HighestMemberID(ctx, prefix)
		if err != nil {
			return fmt.Errorf("reading highest member ID: %w", err)
		}
		next := 1
		if highest != "" {
			if seq, ok := sequenceOf(highest); ok {
				next = seq + 1
			}
		}
		m.MemberIDNumber = FormatMemberID(year, next)
		err = a.Store.Save(ctx, m)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrDuplicateMemberID) {
			m.MemberIDNumber = ""
			continue
		}
		m.MemberIDNumber = ""
		return fmt.Errorf("saving member ID: %w", err)
	}
	return fmt.Errorf("assigning member ID for %s: gave up after %d conflicts", prefix, maxAssignRetries)
}
