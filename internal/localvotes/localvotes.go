// Package localvotes keeps a client-side shadow of a signed-out user's
// votes, keyed by startup name. It is a non-authoritative, non-durable
// degraded mode: the shadow is never reconciled with server-side vote
// records and is gone if the file is removed.
package localvotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/crackd/api/internal/core/domain"
)

// Cache is a local startupName -> choice mapping persisted as a JSON file.
type Cache struct {
	path  string
	votes map[string]domain.Choice
}

// Open loads the cache at path, starting empty if the file does not exist.
func Open(path string) (*Cache, error) {
	c := &Cache{
		path:  path,
		votes: make(map[string]domain.Choice),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read local votes: %w", err)
	}

	if err := json.Unmarshal(data, &c.votes); err != nil {
		// A corrupt shadow file is not worth failing over; start fresh.
		c.votes = make(map[string]domain.Choice)
	}
	return c, nil
}

// Set records a choice for a startup, overwriting any previous one, and
// persists the file.
func (c *Cache) Set(startupName string, choice domain.Choice) error {
	if _, err := domain.ParseChoice(string(choice)); err != nil {
		return err
	}
	c.votes[startupName] = choice
	return c.flush()
}

// Get returns the shadowed choice for a startup, if any.
func (c *Cache) Get(startupName string) (domain.Choice, bool) {
	choice, ok := c.votes[startupName]
	return choice, ok
}

// All returns a copy of the full mapping.
func (c *Cache) All() map[string]domain.Choice {
	out := make(map[string]domain.Choice, len(c.votes))
	for k, v := range c.votes {
		out[k] = v
	}
	return out
}

func (c *Cache) flush() error {
	data, err := json.MarshalIndent(c.votes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode local votes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed to create local votes dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write local votes: %w", err)
	}
	return nil
}

// DefaultPath places the cache under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "crackd", "votes.json"), nil
}
