package prefs

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	prefsObject   = "prefs"
	prefsProperty = "ui"
)

// Prefs are the UI choices remembered between runs.
type Prefs struct {
	PanelExpanded bool   `yaml:"panelExpanded"`
	LastSource    string `yaml:"lastSource"`
}

// Store loads and saves Prefs through gdata. A nil manager keeps them in
// memory only.
type Store struct {
	gdataManager *gdata.Manager
	prefs        Prefs
}

// Open creates a gdata manager for appName. On failure it logs a warning and
// returns nil, which NewStore treats as in-memory mode.
func Open(appName string) *gdata.Manager {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Prefs] Warning: persistent storage unavailable: %v", err)
		return nil
	}
	return m
}

// NewStore creates a store and loads any saved prefs. A load failure is
// logged and the zero Prefs are used.
func NewStore(gdataManager *gdata.Manager) *Store {
	s := &Store{gdataManager: gdataManager}
	if err := s.Load(); err != nil {
		log.Printf("[Prefs] Warning: failed to load prefs: %v (using defaults)", err)
	}
	return s
}

// Load reads the saved prefs, if any.
func (s *Store) Load() error {
	s.prefs = Prefs{}
	if s.gdataManager == nil {
		return nil
	}
	if !s.gdataManager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := s.gdataManager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load prefs: %w", err)
	}
	var loaded Prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal prefs: %w", err)
	}
	s.prefs = loaded
	return nil
}

// Save writes the current prefs. In memory-only mode it does nothing.
func (s *Store) Save() error {
	if s.gdataManager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal prefs: %w", err)
	}
	if err := s.gdataManager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save prefs: %w", err)
	}
	return nil
}

// Get returns a copy of the current prefs.
func (s *Store) Get() Prefs { return s.prefs }

// SetPanelExpanded records the panel state and saves it.
func (s *Store) SetPanelExpanded(expanded bool) {
	s.prefs.PanelExpanded = expanded
	s.saveOrWarn()
}

// SetLastSource records the last explicitly chosen track and saves it.
func (s *Store) SetLastSource(path string) {
	s.prefs.LastSource = path
	s.saveOrWarn()
}

func (s *Store) saveOrWarn() {
	if err := s.Save(); err != nil {
		log.Printf("[Prefs] Warning: %v", err)
	}
}
