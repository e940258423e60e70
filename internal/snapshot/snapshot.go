// Package snapshot exports and imports profiles as a YAML document. Import
// goes through the store's Add path, so it appends one block per profile and
// honors the same duplicate-alias rejection as the add command.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dperrin/hostbook/internal/model"
	"github.com/dperrin/hostbook/internal/profile"
)

type fileModel struct {
	Profiles []model.Profile `yaml:"profiles"`
}

// Export writes every profile in the store to path as YAML.
func Export(store *profile.Store, path string) (int, error) {
	profiles, err := store.List()
	if err != nil {
		return 0, err
	}
	b, err := yaml.Marshal(fileModel{Profiles: profiles})
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return 0, fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return len(profiles), nil
}

// Result summarizes one import run.
type Result struct {
	Added   []string
	Skipped []string
}

// Import adds every profile from the YAML document at path. Profiles whose
// alias already exists are skipped and reported, not treated as errors.
func Import(store *profile.Store, path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read snapshot %s: %w", path, err)
	}
	var fm fileModel
	if err := yaml.Unmarshal(b, &fm); err != nil {
		return Result{}, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	var res Result
	for i, p := range fm.Profiles {
		if strings.TrimSpace(p.Alias) == "" {
			return res, fmt.Errorf("snapshot entry %d missing alias", i)
		}
		err := store.Add(p)
		if errors.Is(err, profile.ErrDuplicateAlias) {
			res.Skipped = append(res.Skipped, p.Alias)
			continue
		}
		if err != nil {
			return res, err
		}
		res.Added = append(res.Added, p.Alias)
	}
	return res, nil
}
