package registry

import (
	"fmt"
	"path/filepath"

	"github.com/caffeine-storm/buildinged/base"
	"github.com/caffeine-storm/buildinged/house"
	"github.com/caffeine-storm/buildinged/logging"
	"github.com/caffeine-storm/buildinged/tiles"
)

// Loads every registry from the datadir: tile entries from tiles/<category>
// and furniture from furniture/. Files that fail to parse are logged and
// skipped.
func LoadAllRegistries() error {
	datadir := base.GetDataDir()
	if err := tiles.LoadAllEntriesInDir(filepath.Join(datadir, "tiles")); err != nil {
		return fmt.Errorf("loading tile entries: %w", err)
	}
	failures, err := house.LoadAllFurnitureInDir(filepath.Join(datadir, "furniture"))
	if err != nil {
		return fmt.Errorf("loading furniture: %w", err)
	}
	if failures > 0 {
		logging.Warn("some furniture failed to load", "failures", failures)
	}
	return nil
}
