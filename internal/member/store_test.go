package member

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	m := &Member{FullName: "Jane Wanjiru Otieno", MemberIDNumber: "DC-2024-0001", Status: StatusStudent}
	require.NoError(t, store.Save(ctx, m))
	require.NotEqual(t, uuid.Nil, m.ID)

	byID, err := store.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.FullName, byID.FullName)

	byNum, err := store.GetByMemberIDNumber(ctx, "DC-2024-0001")
	require.NoError(t, err)
	assert.Equal(t, m.ID, byNum.ID)
}

func TestMemoryStoreNotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrMemberNotFound)

	_, err = store.GetByMemberIDNumber(ctx, "DC-2024-9999")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestMemoryStoreDuplicateIDNumber(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := &Member{FullName: "First", MemberIDNumber: "DC-2024-0001"}
	require.NoError(t, store.Save(ctx, first))

	second := &Member{FullName: "Second", MemberIDNumber: "DC-2024-0001"}
	err := store.Save(ctx, second)
	assert.ErrorIs(t, err, ErrDuplicateMemberID)

	// Re-saving the owner is fine.
	first.Course = "Computer Science"
	assert.NoError(t, store.Save(ctx, first))
}

func TestMemoryStoreHighestMemberID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	highest, err := store.HighestMemberID(ctx, "DC-2024-")
	require.NoError(t, err)
	assert.Equal(t, "", highest)

	for _, num := range []string{"DC-2024-0002", "DC-2024-0010", "DC-2023-0099", "DC-2024-0001"} {
		require.NoError(t, store.Save(ctx, &Member{FullName: num, MemberIDNumber: num}))
	}

	highest, err = store.HighestMemberID(ctx, "DC-2024-")
	require.NoError(t, err)
	assert.Equal(t, "DC-2024-0010", highest)
}
