// Package app implements the application layer for relock.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/relock/internal/core/domain"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/relock/internal/engine/lockgen"
	"go.trai.ch/zerr"
)

// runStatus is the outcome of one package directory.
type runStatus int

const (
	// statusWritten means a lockfile was generated and written.
	statusWritten runStatus = iota
	// statusUnchanged means the generated lockfile matched the one on disk.
	statusUnchanged
	// statusSkipped means the directory has no manifest.
	statusSkipped
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	generator    *lockgen.Generator
	store        ports.LockfileStore
	telemetry    ports.Telemetry
	log          ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	generator *lockgen.Generator,
	store ports.LockfileStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		generator:    generator,
		store:        store,
		telemetry:    telemetry,
		log:          log,
	}
}

// SetTelemetry replaces the progress recorder. Used by the CLI to enable
// live progress rendering.
func (a *App) SetTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// Run regenerates lockfiles for the given package directories. When dirs is
// empty the configured package list is used, falling back to the working
// directory. Each directory owns an exclusive build context, so directories
// are processed concurrently; a failure in one directory does not stop the
// others.
func (a *App) Run(ctx context.Context, dirs []string) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if len(dirs) == 0 {
		dirs = cfg.Packages
	}
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	var (
		eg errgroup.Group

		mu                        sync.Mutex
		errs                      error
		written, unchanged, skips int
	)
	eg.SetLimit(parallelism)

	for _, dir := range dirs {
		eg.Go(func() error {
			_, vtx := a.telemetry.Record(ctx, dir)

			status, err := a.generateOne(cfg, dir, vtx)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				vtx.Complete(err)
				errs = errors.Join(errs, zerr.With(err, "dir", dir))
			case status == statusSkipped:
				vtx.Complete(nil)
				skips++
			case status == statusUnchanged:
				vtx.Cached()
				unchanged++
			default:
				vtx.Complete(nil)
				written++
			}
			return nil
		})
	}
	_ = eg.Wait()

	if err := a.telemetry.Close(); err != nil {
		a.log.Warn("failed to close telemetry: " + err.Error())
	}

	if errs != nil {
		return errors.Join(domain.ErrGenerationFailed, errs)
	}

	a.log.Info(fmt.Sprintf("%d lockfile(s) written, %d unchanged, %d skipped", written, unchanged, skips))
	return nil
}

// generateOne runs the full pipeline for one directory: build and classify
// the tree, merge with any prior document, persist.
func (a *App) generateOne(cfg *domain.Config, dir string, vtx ports.Vertex) (runStatus, error) {
	lf, err := a.generator.Generate(dir, cfg.Dev)
	if err != nil {
		return statusSkipped, err
	}
	if lf == nil {
		a.log.Warn("no manifest found, skipping: " + dir)
		return statusSkipped, nil
	}

	prior, err := a.store.Load(dir)
	if err != nil {
		return statusSkipped, err
	}
	merged, err := a.store.Merge(prior, lf)
	if err != nil {
		return statusSkipped, err
	}

	wrote, err := a.store.Save(dir, merged)
	if err != nil {
		return statusSkipped, err
	}
	if !wrote {
		return statusUnchanged, nil
	}
	vtx.Log("lockfile written")
	return statusWritten, nil
}
