// Package store persists lifetime progression between fights. Fight-scope
// counters never touch the database; only the lifetime buckets and card
// play history survive a process restart.
package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ValleyOfWalls/cardclash/internal/combat"
)

// Profile is one persistent player identity, keyed by name.
type Profile struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LifetimeCounter is one counter value for a profile.
type LifetimeCounter struct {
	ProfileID string `gorm:"primaryKey"`
	Kind      int    `gorm:"primaryKey"`
	Value     int
}

// CardPlay is the lifetime play count of one card for a profile.
type CardPlay struct {
	ProfileID string `gorm:"primaryKey"`
	CardName  string `gorm:"primaryKey"`
	Count     int
}

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// OpenAndMigrate opens the SQLite database at the given path and keeps the
// schema updated via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Profile{}, &LifetimeCounter{}, &CardPlay{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// EnsureProfile returns the profile for the given name, creating it if
// this is the first time the name has been seen.
func (s *Store) EnsureProfile(name string) (*Profile, error) {
	var p Profile
	err := s.db.Where("name = ?", name).First(&p).Error
	if err == nil {
		return &p, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	p = Profile{ID: uuid.New().String(), Name: name}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadLifetime reads a profile's persisted counters and card play history
// into the shape the tracker seeds from.
func (s *Store) LoadLifetime(profileID string) (map[combat.CounterKind]int, map[string]int, error) {
	var counters []LifetimeCounter
	if err := s.db.Where("profile_id = ?", profileID).Find(&counters).Error; err != nil {
		return nil, nil, err
	}
	kinds := make(map[combat.CounterKind]int, len(counters))
	for _, c := range counters {
		kinds[combat.CounterKind(c.Kind)] = c.Value
	}

	var plays []CardPlay
	if err := s.db.Where("profile_id = ?", profileID).Find(&plays).Error; err != nil {
		return nil, nil, err
	}
	cards := make(map[string]int, len(plays))
	for _, p := range plays {
		cards[p.CardName] = p.Count
	}
	return kinds, cards, nil
}

// SaveLifetime writes a tracker's lifetime snapshot back to the database.
// Lifetime values only grow, so a plain upsert is safe even if an earlier
// save partially completed.
func (s *Store) SaveLifetime(profileID string, trk *combat.EntityTracker) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for kind, value := range trk.LifetimeSnapshot() {
			row := LifetimeCounter{ProfileID: profileID, Kind: int(kind), Value: value}
			if err := tx.Save(&row).Error; err != nil {
				return fmt.Errorf("save counter %s: %w", kind, err)
			}
		}
		for name, count := range trk.LifetimeCardPlays() {
			row := CardPlay{ProfileID: profileID, CardName: name, Count: count}
			if err := tx.Save(&row).Error; err != nil {
				return fmt.Errorf("save card plays %q: %w", name, err)
			}
		}
		return nil
	})
}

// SeedTracker loads a named profile's lifetime history into the given
// tracker entity, creating the profile on first use. Returns the profile
// so the caller can save back under the same ID after the fight.
func (s *Store) SeedTracker(name string, trk *combat.EntityTracker) (*Profile, error) {
	p, err := s.EnsureProfile(name)
	if err != nil {
		return nil, err
	}
	counters, plays, err := s.LoadLifetime(p.ID)
	if err != nil {
		return nil, err
	}
	trk.SeedLifetime(counters, plays)
	return p, nil
}
