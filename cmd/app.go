package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/config"
	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/llm"
	"github.com/mungbws1031/leo-study/internal/pkg/logger"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/store"
	"github.com/mungbws1031/leo-study/internal/ui/components"
)

// appEnv is everything a command needs, built from flags and environment.
type appEnv struct {
	cfg      *config.Config
	log      *logger.Logger
	profiles *profile.Store
	history  *history.Store
	store    *store.Store
}

// loadEnv reads .env, the environment and persistent flags. defaultLevel
// is the log level used when neither LEO_LOG_LEVEL nor -v is given.
func loadEnv(cmd *cobra.Command, defaultLevel string) (*appEnv, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	dataDir, _ := cmd.Flags().GetString("data-dir")
	profilesPath, _ := cmd.Flags().GetString("profiles")
	dbPath, _ := cmd.Flags().GetString("db")
	cfg.Override(dataDir, profilesPath, dbPath)

	level := cfg.Log.Level
	if level == "" {
		switch v, _ := cmd.Flags().GetCount("verbose"); {
		case v >= 2:
			level = "debug"
		case v == 1:
			level = "info"
		default:
			level = defaultLevel
		}
	}
	log, err := logger.NewWithLevel(cfg.Log.Mode, level)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	env := &appEnv{cfg: cfg, log: log}
	env.profiles = profile.Load(cfg.ProfilesPath, profile.Env{
		ChildName:  cfg.Child.Name,
		ChildGrade: cfg.Child.Grade,
	}, log)
	env.history = history.NewStore(cfg.MissionsDir(), log)
	return env, nil
}

func (e *appEnv) close() {
	if e.store != nil {
		e.store.Close()
	}
	e.log.Sync()
}

// openStore opens the audit database once.
func (e *appEnv) openStore() (*store.Store, error) {
	if e.store != nil {
		return e.store, nil
	}
	if err := store.EnsureDir(e.cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	st, err := store.Open(e.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	e.store = st
	return st, nil
}

// provider builds the configured LLM provider with audit logging. The
// returned config carries the per-call timeout.
func (e *appEnv) provider(ctx context.Context) (llm.Provider, llm.Config, error) {
	llmCfg, err := llm.ResolveConfig()
	if err != nil {
		return nil, llm.Config{}, fmt.Errorf("LLM provider not configured: %w", err)
	}
	st, err := e.openStore()
	if err != nil {
		return nil, llm.Config{}, err
	}
	p, err := llm.NewProvider(ctx, llmCfg, st.Events(), e.log)
	if err != nil {
		return nil, llm.Config{}, err
	}
	return p, llmCfg, nil
}

func (e *appEnv) renderer(ctx context.Context) *render.Renderer {
	font := render.LoadFont(ctx, render.FontConfig{Path: e.cfg.Font.Path, URL: e.cfg.Font.URL}, e.log)
	return render.NewRenderer(font)
}

// child resolves --child. With no id it picks the only profile, or asks
// interactively when attached to a terminal.
func (e *appEnv) child(id string) (profile.Child, error) {
	all := e.profiles.All()
	if id != "" {
		if c, ok := e.profiles.Get(id); ok {
			return c, nil
		}
		return profile.Child{}, fmt.Errorf("unknown child %q (known: %s)", id, childIDs(all))
	}
	if len(all) == 1 {
		return all[0], nil
	}
	if !interactive() {
		return profile.Child{}, fmt.Errorf("--child is required (known: %s)", childIDs(all))
	}

	items := make([]components.MenuItem, len(all))
	for i, c := range all {
		items[i] = components.MenuItem{Label: c.Name, Detail: c.Grade}
	}
	i, err := components.Choose("누구의 과제를 만들까요?", items)
	if err != nil {
		return profile.Child{}, err
	}
	return all[i], nil
}

func childIDs(children []profile.Child) string {
	ids := make([]string, len(children))
	for i, c := range children {
		ids[i] = c.ID
	}
	return strings.Join(ids, ", ")
}

// interactive reports whether stdin and stdout are both terminals.
func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// withSpinner runs work behind a spinner on a terminal, or directly
// otherwise.
func withSpinner(label string, work func() error) error {
	if !interactive() {
		return work()
	}
	return components.RunWait(label, work)
}

// withTimeout applies the LLM call deadline.
func withTimeout(ctx context.Context, cfg llm.Config) (context.Context, context.CancelFunc) {
	if cfg.Timeout > 0 {
		return context.WithTimeout(ctx, cfg.Timeout)
	}
	return context.WithCancel(ctx)
}
