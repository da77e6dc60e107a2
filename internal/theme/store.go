// Package theme owns the light/dark flag and the palette derived from it.
package theme

import (
	"context"
	"strings"

	"github.com/servicecordiale/cordiale/internal/logging"
)

// PreferenceKey is the storage key of the persisted mode.
const PreferenceKey = "theme"

// Persisted mode values.
const (
	ModeDark  = "dark"
	ModeLight = "light"
)

// PreferenceStore is the best-effort key-value storage behind the store.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Reader is the read-only view handed to presentation code.
type Reader interface {
	IsDark() bool
	Palette() Palette
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for storage failures and mode changes.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store holds the current mode. It is owned by one event loop and is not
// safe for concurrent use.
type Store struct {
	prefs       PreferenceStore
	detector    Detector
	log         *logging.Logger
	dark        bool
	subscribers []func(dark bool)
}

var _ Reader = (*Store)(nil)

// New creates a store in light mode. Call Initialize to resolve the
// starting mode. prefs and detector may be nil.
func New(prefs PreferenceStore, detector Detector, opts ...Option) *Store {
	s := &Store{prefs: prefs, detector: detector}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseMode interprets a persisted value. ok is false for anything other
// than ModeDark or ModeLight.
func ParseMode(v string) (dark bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case ModeDark:
		return true, true
	case ModeLight:
		return false, true
	}
	return false, false
}

// ModeString is the persisted value for a mode.
func ModeString(dark bool) string {
	if dark {
		return ModeDark
	}
	return ModeLight
}

// Initialize resolves the starting mode: the persisted preference when it is
// present and valid, otherwise the detector. It never fails.
func (s *Store) Initialize(ctx context.Context) bool {
	s.dark = s.resolve(ctx)
	s.log.WithFields(map[string]any{"mode": ModeString(s.dark)}).Debug("theme initialized")
	s.notify()
	return s.dark
}

func (s *Store) resolve(ctx context.Context) bool {
	if s.prefs != nil {
		v, found, err := s.prefs.Get(ctx, PreferenceKey)
		switch {
		case err != nil:
			s.log.WithFields(map[string]any{"key": PreferenceKey, "error": err.Error()}).Warn("read theme preference failed")
		case found:
			if dark, ok := ParseMode(v); ok {
				return dark
			}
			s.log.WithFields(map[string]any{"key": PreferenceKey, "value": v}).Warn("ignoring unrecognized theme preference")
		}
	}
	if s.detector == nil {
		return false
	}
	return s.detector.PrefersDark()
}

// IsDark reports the current mode.
func (s *Store) IsDark() bool {
	return s.dark
}

// Palette derives the palette for the current mode.
func (s *Store) Palette() Palette {
	return DerivePalette(s.dark)
}

// Toggle flips the mode, persists it and notifies subscribers. It returns
// the new mode.
func (s *Store) Toggle(ctx context.Context) bool {
	s.Set(ctx, !s.dark)
	return s.dark
}

// Set assigns the mode with the same side effects as Toggle.
func (s *Store) Set(ctx context.Context, dark bool) {
	s.dark = dark
	s.persist(ctx)
	s.notify()
}

// Subscribe registers fn to run after every mode change, and once during
// Initialize.
func (s *Store) Subscribe(fn func(dark bool)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) persist(ctx context.Context) {
	if s.prefs == nil {
		return
	}
	mode := ModeString(s.dark)
	if err := s.prefs.Set(ctx, PreferenceKey, mode); err != nil {
		s.log.WithFields(map[string]any{"key": PreferenceKey, "mode": mode}).Error(err, "persist theme preference")
		return
	}
	s.log.WithFields(map[string]any{"mode": mode}).Info("theme changed")
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn(s.dark)
	}
}
