package app

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/mindset/internal/coach"
	"github.com/abhisek/mindset/internal/config"
	"github.com/abhisek/mindset/internal/llm"
	"github.com/abhisek/mindset/internal/quotes"
	"github.com/abhisek/mindset/internal/router"
	"github.com/abhisek/mindset/internal/screen"
	"github.com/abhisek/mindset/internal/screens/home"
	"github.com/abhisek/mindset/internal/screens/welcome"
	"github.com/abhisek/mindset/internal/session"
	"github.com/abhisek/mindset/internal/store"
	"github.com/abhisek/mindset/internal/ui/layout"
)

// Options configures a dashboard session.
type Options struct {
	Config *config.Config
	Logger *slog.Logger

	// Provider replaces the provider built from Config.LLM when set.
	Provider llm.Provider
}

// Session owns the resources of one running dashboard.
type Session struct {
	Env   *screen.Env
	store *store.Store
}

// NewSession opens the in-memory journal, builds the session state and
// attaches a coach when an LLM provider is available. A provider that fails
// to initialize is logged and the session continues without a coach.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	id := uuid.NewString()
	st, err := store.OpenMemory(id)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	logger = logger.With("session", id)

	state := session.New(id,
		session.WithRecorder(store.SessionRecorder(st.JournalRepo())),
		session.WithLogger(logger),
	)
	session.MarkStarted(state, string(cfg.Variant))
	logger.Info("session started", "variant", cfg.Variant)

	env := &screen.Env{
		State:           state,
		Variant:         cfg.Variant,
		Quotes:          quotes.New(cfg.QuoteSet(), rand.NewPCG(rand.Uint64(), rand.Uint64())),
		QuoteDelay:      cfg.QuoteDelay,
		ProcessingDelay: cfg.ProcessingDelay,
		Journal:         st.JournalRepo(),
		Events:          st.EventRepo(),
		Logger:          logger,
	}

	if svc := newCoach(ctx, cfg, opts.Provider, st.EventRepo(), logger); svc != nil {
		env.Coach = svc
	}

	return &Session{Env: env, store: st}, nil
}

func newCoach(ctx context.Context, cfg *config.Config, provider llm.Provider, events store.EventRepo, logger *slog.Logger) *coach.Service {
	if !cfg.Coach.Enabled {
		return nil
	}
	if provider == nil {
		llmCfg := cfg.LLM
		if !llmCfg.Discover() {
			logger.Info("coach disabled, no LLM provider configured")
			return nil
		}
		p, err := llm.NewProvider(ctx, llmCfg, events, logger)
		if err != nil {
			logger.Warn("coach disabled", "provider", llmCfg.Provider, "error", err)
			return nil
		}
		provider = p
	}
	return coach.NewService(provider, cfg.Coach)
}

// Close releases the journal. Everything recorded in the session is lost.
func (s *Session) Close() error {
	return s.store.Close()
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	env    *screen.Env
	router *router.Router
	width  int
	height int
}

// newAppModel starts at the welcome screen, which hands over to home once
// onboarding is complete.
func newAppModel(env *screen.Env) AppModel {
	initial := welcome.New(env, func() screen.Screen { return home.New(env) })
	return AppModel{
		env:    env,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, router.Back()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}

	active := m.router.Active()
	chrome := layout.Chrome{
		User:    m.env.State.Profile.Name,
		Variant: string(m.env.Variant),
		Hints:   m.footerHints(active),
	}
	if active != nil {
		chrome.Title = active.Title()
	}

	v.SetContent(layout.Render(chrome, m.width, m.height, m.router.View))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts a session and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	sess, err := NewSession(ctx, opts)
	if err != nil {
		return err
	}
	defer sess.Close()

	p := tea.NewProgram(newAppModel(sess.Env), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	sess.Env.Log().Info("session ended")
	return nil
}
