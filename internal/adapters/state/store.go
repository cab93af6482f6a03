// Package state persists how each platform-specific requirement was applied.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/platdep/internal/core/domain"
	"go.trai.ch/zerr"
)

// platformState is the on-disk shape of one platform's records, keyed by requirement.
type platformState struct {
	Platform domain.Platform                 `json:"platform"`
	Records  map[string]domain.AppliedRecord `json:"records"`
}

// Store implements ports.StateStore with one file per platform under the
// project's state directory.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store. The project root is passed to every call.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the record of requirement as last applied on platform.
// Returns nil, nil if the requirement has never been applied there.
func (s *Store) Get(root string, platform domain.Platform, requirement string) (*domain.AppliedRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(root, platform)
	if err != nil {
		return nil, err
	}
	record, ok := st.Records[requirement]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// Put stores the record under its requirement, replacing the previous one
// applied on the same platform.
func (s *Store) Put(root string, record domain.AppliedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(root, record.Platform)
	if err != nil {
		return err
	}
	st.Records[record.Requirement] = record
	return s.save(root, st)
}

// Prune drops the records of platform whose requirement is not in keep.
// The file is only rewritten when something was dropped.
func (s *Store) Prune(root string, platform domain.Platform, keep []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.load(root, platform)
	if err != nil {
		return nil, err
	}

	var dropped []string
	for name := range st.Records {
		if !slices.Contains(keep, name) {
			dropped = append(dropped, name)
		}
	}
	if len(dropped) == 0 {
		return nil, nil
	}

	slices.Sort(dropped)
	for _, name := range dropped {
		delete(st.Records, name)
	}
	return dropped, s.save(root, st)
}

// load must be called with mu held. A missing file yields an empty state.
func (s *Store) load(root string, platform domain.Platform) (platformState, error) {
	st := platformState{Platform: platform, Records: make(map[string]domain.AppliedRecord)}

	path := s.path(root, platform)
	//nolint:gosec // Path is constructed from the project root and platform
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return st, nil
		}
		return st, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", path)
	}

	if err := json.Unmarshal(data, &st); err != nil {
		return st, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", path)
	}
	if st.Records == nil {
		st.Records = make(map[string]domain.AppliedRecord)
	}
	return st, nil
}

// save must be called with mu held.
func (s *Store) save(root string, st platformState) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	path := s.path(root, st.Platform)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from the project root and platform
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", path)
	}
	return nil
}

// path returns the state file of platform, e.g. .platdep/state/linux-x64.json.
func (s *Store) path(root string, platform domain.Platform) string {
	return filepath.Join(domain.StatePath(root), string(platform.OS)+"-"+string(platform.Arch)+".json")
}
