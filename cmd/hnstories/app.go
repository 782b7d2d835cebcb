package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"hnstories/internal/config"
	"hnstories/internal/eventbus"
	"hnstories/internal/hn"
	"hnstories/internal/logging"
	"hnstories/internal/store"
)

// app holds the collaborators shared by the TUI and the list command
type app struct {
	cfg      *config.Config
	logger   *zap.SugaredLogger
	closeLog func()
	bus      eventbus.EventBus
	stopLog  func()
	kv       store.KV
	source   hn.Source
}

// newApp loads the config and opens the logger, bus, store and source.
// A config that cannot be read is reported on errOut and replaced by the
// defaults. On first run the defaults are written to the config path.
func newApp(opts *rootOptions, errOut io.Writer) (*app, error) {
	loader := config.NewConfigService(opts.ConfigPath)
	_, statErr := os.Stat(loader.Path())
	firstRun := errors.Is(statErr, os.ErrNotExist)

	cfg, cfgErr := loader.Load()
	if cfgErr != nil {
		fmt.Fprintf(errOut, "Error loading config, using defaults: %v\n", cfgErr)
		cfg = config.DefaultConfig()
	}

	logger, closeLog, err := logging.NewFileLogger(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(errOut, "Could not open log file: %v\n", err)
		logger, closeLog = zap.NewNop().Sugar(), func() {}
	}
	if cfgErr != nil {
		logger.Warnw("config load failed, using defaults", "path", loader.Path(), "error", cfgErr)
	}

	bus := eventbus.New(logger)
	stopLog := subscribeActivityLog(bus, logger)

	// Flag overrides are applied after the save so they never end up in the file
	if firstRun {
		if err := config.NewConfigServiceWithBus(loader.Path(), bus).Save(cfg); err != nil {
			logger.Warnw("could not write default config", "path", loader.Path(), "error", err)
		}
	}
	if opts.Offline {
		cfg.Source.Kind = config.SourceStatic
	}
	if opts.Store != "" {
		cfg.Store.Backend = opts.Store
	}

	kv, err := store.Open(cfg.StoreOptions(), logger)
	if err != nil {
		stopLog()
		bus.Close()
		closeLog()
		return nil, errors.Wrapf(err, "open %s store", cfg.Store.Backend)
	}

	a := &app{
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		bus:      bus,
		stopLog:  stopLog,
		kv:       kv,
		source:   newSource(cfg, logger),
	}
	return a, nil
}

// activityEvents are written to the log as they happen
var activityEvents = []eventbus.EventType{
	eventbus.EventQueryChanged,
	eventbus.EventFetchStarted,
	eventbus.EventFetchDiscarded,
	eventbus.EventConfigSaved,
}

// subscribeActivityLog logs search activity from the bus. The returned
// func removes the subscriptions.
func subscribeActivityLog(bus eventbus.EventBus, logger *zap.SugaredLogger) func() {
	handler := func(e eventbus.DomainEvent) {
		switch ev := e.(type) {
		case eventbus.QueryChangedEvent:
			logger.Debugw("query changed", "query", ev.Query)
		case eventbus.FetchStartedEvent:
			logger.Infow("search issued", "query", ev.Query, "seq", ev.Seq)
		case eventbus.FetchDiscardedEvent:
			logger.Infow("stale result discarded", "query", ev.Query, "seq", ev.Seq, "latest", ev.Latest)
		case eventbus.ConfigSavedEvent:
			logger.Infow("default config written", "path", ev.Path)
		}
	}

	unsubscribes := make([]func(), 0, len(activityEvents))
	for _, t := range activityEvents {
		unsubscribes = append(unsubscribes, bus.Subscribe(t, handler))
	}
	return func() {
		for _, unsubscribe := range unsubscribes {
			unsubscribe()
		}
	}
}

func newSource(cfg *config.Config, logger *zap.SugaredLogger) hn.Source {
	if cfg.Source.Kind == config.SourceStatic {
		return hn.NewStatic(cfg.Sample, cfg.Source.Latency.Std())
	}
	return hn.NewClient(cfg.ClientConfig(), logger)
}

// Close releases the store, the bus and the log file
func (a *app) Close() {
	if err := a.kv.Close(); err != nil {
		a.logger.Warnw("closing store", "error", err)
	}
	a.stopLog()
	a.bus.Close()
	a.closeLog()
}
