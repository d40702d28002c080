package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormStore is the postgres-backed Store. The unique index on
// member_id_number is what makes concurrent ID allocation safe: the
// allocator retries when a Save trips it.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.AutoMigrate(&Member{}); err != nil {
		return nil, fmt.Errorf("migrating members table: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*Member, error) {
	var m Member
	err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) GetByMemberIDNumber(ctx context.Context, number string) (*Member, error) {
	var m Member
	err := s.db.WithContext(ctx).First(&m, "member_id_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) HighestMemberID(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	err := s.db.WithContext(ctx).
		Model(&Member{}).
		Where("member_id_number LIKE ?", prefix+"%").
		Order("member_id_number DESC").
		Limit(1).
		Pluck("member_id_number", &numbers).Error
	if err != nil {
		return "", err
	}
	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}

func (s *GormStore) Save(ctx context.Context, m *Member) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	err := s.db.WithContext(ctx).Save(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateMemberID
	}
	return err
}
