package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/deckforge/deckforge/pkg/brand"
	"github.com/deckforge/deckforge/pkg/cache"
	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/pipeline"
)

// loadState reads a template state JSON file. An empty path yields the
// hard-coded default state; a file is decoded over the defaults so partial
// documents work.
func loadState(path string) (brand.State, error) {
	state := brand.NewState()
	if path == "" {
		return state, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return brand.State{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read template %s", path)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return brand.State{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse template %s", path)
	}
	if issues := brand.Validate(state); brand.HasErrors(issues) {
		for _, issue := range issues {
			if issue.Severity == brand.SeverityError {
				return brand.State{}, errors.New(errors.ErrCodeValidation, "%s: %s", issue.Field, issue.Message)
			}
		}
	}
	return state, nil
}

// newRunner builds a pipeline runner with the file artifact cache under the
// user cache dir. Cache failures degrade to uncached rendering.
func newRunner(logger *log.Logger) *pipeline.Runner {
	var c cache.Cache
	if dir, err := os.UserCacheDir(); err == nil {
		if fc, err := cache.NewFileCache(filepath.Join(dir, "deckforge")); err == nil {
			c = fc
		} else {
			logger.Debug("artifact cache unavailable", "err", err)
		}
	}
	return pipeline.NewRunner(c, nil, logger)
}

// writeOutput writes artifact bytes to path with 0644 permissions.
func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
