// Package container provides dependency injection for the finance tracker.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/finance-tracker/internal/alert"
	"fjacquet/finance-tracker/internal/config"
	"fjacquet/finance-tracker/internal/logging"
	"fjacquet/finance-tracker/internal/report"
	"fjacquet/finance-tracker/internal/store"
	"fjacquet/finance-tracker/internal/tracker"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	categories *store.CategoryStore
	presets    []store.CategoryPreset
	state      store.StateStore
	reports    *report.Generator
	tracker    *tracker.Tracker
}

type options struct {
	logger logging.Logger
	state  store.StateStore
	alerts []alert.Sink
}

// Option overrides a dependency, mostly for tests.
type Option func(*options)

// WithLogger replaces the logger built from the log configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStateStore replaces the data file named by data.file.
func WithStateStore(s store.StateStore) Option {
	return func(o *options) { o.state = s }
}

// WithAlertSink adds a sink next to the logging one.
func WithAlertSink(sink alert.Sink) Option {
	return func(o *options) { o.alerts = append(o.alerts, sink) }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = config.ConfigureLoggingFromConfig(cfg)
	}

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	presets, err := categoryStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load category presets: %w", err)
	}

	state := o.state
	if state == nil {
		state = store.NewStateFile(cfg.Data.File, logger)
	}

	sinks := alert.Multi{alert.NewLogSink(logger)}
	sinks = append(sinks, o.alerts...)

	t := tracker.New(logger,
		tracker.WithAlertSink(sinks),
		tracker.WithCurrency(cfg.Display.Currency),
		tracker.WithLocale(cfg.Display.Locale),
		tracker.WithCategories(store.Names(presets)),
	)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldFile, cfg.Data.File),
		logging.F("categories_count", len(presets)))

	return &Container{
		logger:     logger,
		config:     cfg,
		categories: categoryStore,
		presets:    presets,
		state:      state,
		reports:    report.NewGenerator(logger, report.ParseDelimiter(cfg.CSV.Delimiter)),
		tracker:    t,
	}, nil
}

// Load imports the persisted state into the tracker. A missing data file
// leaves the tracker empty.
func (c *Container) Load() error {
	data, err := c.state.Load()
	if err != nil {
		return fmt.Errorf("failed to load finance data: %w", err)
	}
	if data == nil {
		return nil
	}
	if err := c.tracker.Import(data); err != nil {
		return fmt.Errorf("failed to load finance data: %w", err)
	}
	return nil
}

// Save exports the tracker state to the state store.
func (c *Container) Save() error {
	data, err := c.tracker.Export()
	if err != nil {
		return err
	}
	if err := c.state.Save(data); err != nil {
		return fmt.Errorf("failed to save finance data: %w", err)
	}
	return nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetTracker returns the application root.
func (c *Container) GetTracker() *tracker.Tracker {
	return c.tracker
}

// GetStateStore returns where the state is persisted.
func (c *Container) GetStateStore() store.StateStore {
	return c.state
}

// GetCategoryStore returns the container's category store instance.
func (c *Container) GetCategoryStore() *store.CategoryStore {
	return c.categories
}

// GetCategories returns the category presets loaded at startup.
func (c *Container) GetCategories() []store.CategoryPreset {
	return append([]store.CategoryPreset(nil), c.presets...)
}

// GetReportGenerator returns the CSV/JSON report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reports
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
