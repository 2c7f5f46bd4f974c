package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/conn-castle/topic-manager/internal/apt"
	"github.com/conn-castle/topic-manager/internal/config"
	"github.com/conn-castle/topic-manager/internal/dpkg"
	"github.com/conn-castle/topic-manager/internal/i18n"
	"github.com/conn-castle/topic-manager/internal/manifest"
	"github.com/conn-castle/topic-manager/internal/reconcile"
	"github.com/conn-castle/topic-manager/internal/revert"
	"github.com/conn-castle/topic-manager/internal/sources"
	"github.com/conn-castle/topic-manager/internal/state"
	"github.com/conn-castle/topic-manager/internal/topic"
	"github.com/conn-castle/topic-manager/internal/ui"
)

type manifestSource interface {
	Fetch(ctx context.Context) ([]topic.Manifest, error)
}

type packageManager interface {
	Update(ctx context.Context) error
	Install(ctx context.Context, targets []string) error
}

var (
	lookupEnv         = os.LookupEnv
	newManifestSource = func(cfg *config.Config, arch string) manifestSource {
		return manifest.NewSource(cfg.Manifest.URL, arch, time.Duration(cfg.Manifest.TimeoutSeconds)*time.Second)
	}
	newAptRunner = func(stdout io.Writer, stderr io.Writer) apt.Runner {
		return apt.ExecRunner{Stdout: stdout, Stderr: stderr}
	}
	newUI = func() ui.UI {
		return ui.NewHuhUI()
	}
)

// app bundles the collaborators a command needs, built once per invocation.
type app struct {
	cfg          *config.Config
	log          *slog.Logger
	loc          *i18n.Localizer
	store        *state.Store
	materializer *sources.Materializer
	manifests    manifestSource
	oracle       revert.Oracle
	apt          packageManager
}

func loadApp(cmd *cobra.Command) (*app, error) {
	logger, err := baseLogger(cmd)
	if err != nil {
		return nil, err
	}
	configPath, _ := cmd.Flags().GetString(flagConfig)
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	arch, err := cfg.ResolveArch()
	if err != nil {
		return nil, err
	}
	paths := cfg.Paths()
	logger.Debug("loaded config", "path", configPath, "root", paths.Root, "arch", arch, "manifest", cfg.Manifest.URL)

	store, err := state.NewStore(state.RealSystem{}, paths.StateFile)
	if err != nil {
		return nil, err
	}
	materializer, err := sources.NewMaterializer(sources.RealSystem{}, paths.SourceList, store)
	if err != nil {
		return nil, err
	}
	client, err := apt.New(newAptRunner(cmd.OutOrStdout(), cmd.ErrOrStderr()))
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:          cfg,
		log:          logger,
		loc:          i18n.FromEnv(lookupEnv),
		store:        store,
		materializer: materializer,
		manifests:    newManifestSource(cfg, arch),
		oracle:       dpkg.NewStatusOracle(paths.DpkgStatus),
		apt:          client,
	}, nil
}

// loggedSnapshot reads the snapshot leniently, logging why history was unavailable.
type loggedSnapshot struct {
	*state.Store
	log *slog.Logger
}

func (s loggedSnapshot) ReadOrEmpty() []topic.Previous {
	previous, err := s.Read()
	if err != nil {
		s.log.Debug("topic state unavailable, assuming no enabled topics", "path", s.Path(), "error", err)
		return []topic.Previous{}
	}
	return previous
}

func (a *app) snapshot() loggedSnapshot {
	return loggedSnapshot{Store: a.store, log: a.log}
}

// committer records a commit while the state lock is held.
type committer interface {
	Commit(topics []*topic.Manifest) error
	CommitRetaining(topics []*topic.Manifest, retained []topic.Previous) error
}

// locked runs fn holding the state lock, so the snapshot read by plan and the commit
// replacing it cannot interleave with another run. A dry run writes nothing, takes no
// lock and gets a nil committer.
func (a *app) locked(dryRun bool, fn func(w committer) error) error {
	if dryRun {
		return fn(nil)
	}
	return a.materializer.Locked(func(w *sources.Writer) error {
		return fn(w)
	})
}

// plan is the reconciled view a committing command starts from.
type plan struct {
	listing    []topic.Manifest
	closed     []topic.Manifest
	hasHistory bool
}

// listing fetches the current manifest and merges it with the snapshot for display.
func (a *app) listing(ctx context.Context) ([]topic.Manifest, error) {
	current, err := a.manifests.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	a.log.Debug("fetched topic manifest", "topics", len(current))
	return reconcile.Listing(a.snapshot(), current), nil
}

// plan fetches the current manifest and reconciles it with the snapshot. A missing
// snapshot means nothing was enabled before; any other read failure is returned.
func (a *app) plan(ctx context.Context) (*plan, error) {
	current, err := a.manifests.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	a.log.Debug("fetched topic manifest", "topics", len(current))
	p := &plan{hasHistory: true}
	p.closed, err = reconcile.Closed(a.store, current)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		a.log.Debug("no topic state yet", "path", a.store.Path())
		p.hasHistory = false
	default:
		return nil, err
	}
	p.listing = reconcile.Listing(a.snapshot(), current)
	return p, nil
}

// find returns the listing entry named name.
func (p *plan) find(name string) *topic.Manifest {
	for i := range p.listing {
		if p.listing[i].Name == name {
			return &p.listing[i]
		}
	}
	return nil
}
