// Package profile owns the persisted user health profile.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jwulff/diabeyes-go/internal/bloodsugar"
	"github.com/jwulff/diabeyes-go/internal/domain"
	"github.com/jwulff/diabeyes-go/internal/logger"
	"github.com/jwulff/diabeyes-go/internal/storage"
)

// DefaultKey is the storage key holding the profile record.
const DefaultKey = "diabeyes_user_health_profile"

// Store reads and writes the single health profile record. Every
// operation touches only its one key, and every write replaces the whole
// record.
type Store struct {
	kv  storage.Store
	key string
	now func() time.Time
	log *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithClock overrides the time source used for LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates a profile store over a key-value namespace.
func NewStore(kv storage.Store, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		key: DefaultKey,
		now: func() time.Time { return time.Now().UTC() },
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "profile_store", "key", s.key)
	return s
}

// Key returns the storage key in use.
func (s *Store) Key() string {
	return s.key
}

// Get returns the stored profile, or nil when none has been stored.
func (s *Store) Get(ctx context.Context) (*domain.HealthProfile, error) {
	data, err := s.kv.Get(ctx, s.key)
	if storage.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var p domain.HealthProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &storage.Error{Op: "decode", Key: s.key, Err: err}
	}
	return &p, nil
}

// Update merges the present fields of u over the stored profile (or a new
// default profile), stamps LastUpdated and writes the result.
func (s *Store) Update(ctx context.Context, u domain.ProfileUpdate) (*domain.HealthProfile, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = domain.NewHealthProfile()
	}

	current.Apply(u)
	current.Touch(s.now())

	if err := s.write(ctx, current); err != nil {
		return nil, err
	}
	s.log.Debug("profile updated", "profile_id", current.ID)
	return current, nil
}

// Save validates and writes the full profile. Invalid profiles return a
// *domain.ValidationError and nothing is written.
func (s *Store) Save(ctx context.Context, p *domain.HealthProfile) (*domain.HealthProfile, error) {
	if p == nil {
		return nil, fmt.Errorf("save profile: nil profile")
	}
	if err := p.Validate(); err != nil {
		s.log.Warn("profile rejected", "error", err)
		return nil, err
	}

	saved := p.Clone()
	if saved.ID == "" {
		saved.ID = domain.NewProfileID()
	}
	saved.Touch(s.now())

	if err := s.write(ctx, saved); err != nil {
		return nil, err
	}
	s.log.Info("profile saved", "profile_id", saved.ID)
	return saved, nil
}

// Reset deletes the stored profile and returns a new default profile with a
// fresh id. The returned profile is not persisted.
func (s *Store) Reset(ctx context.Context) (*domain.HealthProfile, error) {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return nil, err
	}
	s.log.Info("profile reset")
	return domain.NewHealthProfile(), nil
}

// Exists reports whether a profile record is stored.
func (s *Store) Exists(ctx context.Context) (bool, error) {
	return s.kv.Exists(ctx, s.key)
}

// GlucoseLevel returns the last-known reading on the stored profile. ok is
// false when there is no profile or no reading.
func (s *Store) GlucoseLevel(ctx context.Context) (level float64, ok bool, err error) {
	p, err := s.Get(ctx)
	if err != nil || p == nil || p.GlucoseLevel == "" {
		return 0, false, err
	}
	level, err = bloodsugar.ParseReading(p.GlucoseLevel)
	if err != nil {
		return 0, false, err
	}
	return level, true, nil
}

// RecordGlucose stores a validated reading as the profile's last-known level.
func (s *Store) RecordGlucose(ctx context.Context, level float64) (*domain.HealthProfile, error) {
	if err := bloodsugar.ValidateReading(level); err != nil {
		return nil, err
	}
	formatted := bloodsugar.FormatReading(level)
	return s.Update(ctx, domain.ProfileUpdate{GlucoseLevel: &formatted})
}

func (s *Store) write(ctx context.Context, p *domain.HealthProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return &storage.Error{Op: "encode", Key: s.key, Err: err}
	}
	return s.kv.Put(ctx, s.key, data)
}
