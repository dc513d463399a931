package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"fjacquet/finance-tracker/internal/logging"

	"gopkg.in/yaml.v3"
)

// DefaultCategoriesFile is looked up when no categories file is configured.
const DefaultCategoriesFile = "categories.yaml"

// DefaultCategories is used when no preset file can be found.
var DefaultCategories = []CategoryPreset{
	{Name: "food"},
	{Name: "transport"},
	{Name: "housing"},
	{Name: "utilities"},
	{Name: "health"},
	{Name: "entertainment"},
	{Name: "other"},
}

// CategoryPreset is one entry of the expense category list.
type CategoryPreset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Color       string `yaml:"color,omitempty"`
}

// CategoriesConfig is the canonical layout of the presets file.
type CategoriesConfig struct {
	Categories []CategoryPreset `yaml:"categories"`
}

// CategoryLoader loads the expense category presets.
type CategoryLoader interface {
	LoadCategories() ([]CategoryPreset, error)
}

// CategoryStore loads category presets from YAML.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store reading categoriesFile.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	return &CategoryStore{CategoriesFile: categoriesFile, logger: logging.OrDiscard(logger)}
}

// FindConfigFile looks for filename in the working directory, ./config and
// $HOME/.finance-tracker.
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".finance-tracker", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadCategories reads the presets. A missing file yields DefaultCategories.
func (s *CategoryStore) LoadCategories() ([]CategoryPreset, error) {
	filename := s.CategoriesFile
	if filename == "" {
		filename = DefaultCategoriesFile
	}

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Categories file not found, using defaults",
				logging.F(logging.FieldFile, filename))
			return append([]CategoryPreset(nil), DefaultCategories...), nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	categories, err := parseCategories(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}
	s.logger.Debug("Loaded categories",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(categories)))
	return categories, nil
}

// parseCategories accepts, in order: a "categories:" document, a bare list
// of presets, a bare list of names, or a name -> description map.
func parseCategories(data []byte) ([]CategoryPreset, error) {
	var cfg CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err == nil && len(cfg.Categories) > 0 {
		return cleanPresets(cfg.Categories), nil
	}

	var presets []CategoryPreset
	if err := yaml.Unmarshal(data, &presets); err == nil && len(presets) > 0 {
		return cleanPresets(presets), nil
	}

	var names []string
	if err := yaml.Unmarshal(data, &names); err == nil && len(names) > 0 {
		presets = make([]CategoryPreset, 0, len(names))
		for _, n := range names {
			presets = append(presets, CategoryPreset{Name: n})
		}
		return cleanPresets(presets), nil
	}

	var byName map[string]string
	if err := yaml.Unmarshal(data, &byName); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(byName))
	for k := range byName {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	presets = make([]CategoryPreset, 0, len(keys))
	for _, k := range keys {
		presets = append(presets, CategoryPreset{Name: k, Description: byName[k]})
	}
	return cleanPresets(presets), nil
}

func cleanPresets(in []CategoryPreset) []CategoryPreset {
	out := make([]CategoryPreset, 0, len(in))
	seen := map[string]struct{}{}
	for _, p := range in {
		p.Name = strings.TrimSpace(p.Name)
		key := strings.ToLower(p.Name)
		if p.Name == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Names returns the preset names in order.
func Names(presets []CategoryPreset) []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
