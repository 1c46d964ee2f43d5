package store

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/jmylchreest/tourkit/internal/core"
	"github.com/jmylchreest/tourkit/internal/model"
)

// SidebarState is the filter sidebar state persisted between CLI runs.
type SidebarState struct {
	Filters   model.FilterState     `json:"filters"`
	Expanded  core.ExpandedSections `json:"expanded"`
	Mode      model.Mode            `json:"mode,omitempty"`
	UpdatedAt int64                 `json:"updated_at,omitempty"`

	// Version for compatibility
	SchemaVersion int `json:"schema_version"`
}

const (
	// CurrentSchemaVersion is the current version of the state schema.
	CurrentSchemaVersion = 1
)

// stateFileMutex protects concurrent access to the state file.
var stateFileMutex sync.RWMutex

// DefaultSidebarState returns the state of a freshly opened sidebar.
func DefaultSidebarState() *SidebarState {
	return &SidebarState{
		Filters:       core.Default(),
		Expanded:      core.DefaultExpandedSections(),
		Mode:          model.ModeLight,
		SchemaVersion: CurrentSchemaVersion,
	}
}

// LoadSidebarState loads the sidebar state from path.
// If the file doesn't exist or is corrupt, returns the default state.
func LoadSidebarState(path string) (*SidebarState, error) {
	stateFileMutex.RLock()
	defer stateFileMutex.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSidebarState(), nil
		}
		return nil, err
	}

	state := DefaultSidebarState()
	if err := json.Unmarshal(data, state); err != nil {
		return DefaultSidebarState(), nil
	}

	if state.SchemaVersion == 0 {
		state.SchemaVersion = CurrentSchemaVersion
	}
	if !state.Filters.RangesValid() {
		state.Filters = core.SetDuration(state.Filters, state.Filters.Duration[0], state.Filters.Duration[1])
		state.Filters = core.SetPriceRange(state.Filters, state.Filters.PriceRange[0], state.Filters.PriceRange[1])
	}

	return state, nil
}

// SaveSidebarState saves the sidebar state to path.
func SaveSidebarState(path string, state *SidebarState) error {
	stateFileMutex.Lock()
	defer stateFileMutex.Unlock()

	if state.SchemaVersion == 0 {
		state.SchemaVersion = CurrentSchemaVersion
	}
	state.UpdatedAt = time.Now().Unix()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return writeAtomic(path, data, 0600)
}
