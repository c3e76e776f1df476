// Package app wires the Studyloop TUI together: the tab panes, the
// onboarding tour orchestration and the collaborators behind them.
package app

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/studyloop/studyloop/internal/bus"
	"github.com/studyloop/studyloop/internal/detect"
	"github.com/studyloop/studyloop/internal/logging"
	"github.com/studyloop/studyloop/internal/recovery"
	"github.com/studyloop/studyloop/internal/screen"
	"github.com/studyloop/studyloop/internal/screens/assistant"
	"github.com/studyloop/studyloop/internal/screens/friends"
	"github.com/studyloop/studyloop/internal/screens/guide"
	"github.com/studyloop/studyloop/internal/screens/tasks"
	"github.com/studyloop/studyloop/internal/screens/trophies"
	"github.com/studyloop/studyloop/internal/screens/wellness"
	"github.com/studyloop/studyloop/internal/store"
	"github.com/studyloop/studyloop/internal/tabs"
	"github.com/studyloop/studyloop/internal/templates"
	"github.com/studyloop/studyloop/internal/tour"
	"github.com/studyloop/studyloop/internal/ui/layout"
)

// Tab positions, in display order.
const (
	TabTasks = iota
	TabAssistant
	TabFriends
	TabWellness
	TabTrophies
)

var tabRegions = []string{"tasks", "assistant", "friends", "wellness", "trophies"}

// DefaultUserID identifies the local profile when none is configured.
const DefaultUserID = "local"

// Options configures a Studyloop run.
type Options struct {
	DBPath     string
	LogPath    string
	PacksDir   string
	UserID     string
	TemplateID string
	Verbose    bool
	NoTour     bool
}

// signalMsg carries a bus signal into the update loop.
type signalMsg struct {
	sig bus.Signal
}

// autoAdvanceMsg fires when a passive step's display time is up.
type autoAdvanceMsg struct {
	step tour.Step
}

// Model is the root Bubble Tea model.
type Model struct {
	tabs   *tabs.Tabs
	guide  guide.Model
	tourOn bool

	mgr    *tour.Manager
	env    *detect.Runtime
	bus    *bus.Bus
	logger *zap.Logger
	userID string

	points  int
	sigCh   chan bus.Signal
	initCmd tea.Cmd
	width   int
	height  int
}

// newModel builds the root model and, unless disabled, puts the tour in
// motion for the user's current step.
func newModel(mgr *tour.Manager, env *detect.Runtime, b *bus.Bus, logger *zap.Logger, opts Options) Model {
	m := Model{
		tabs: tabs.New(
			tasks.New(env, b),
			assistant.New(env, b),
			friends.New(env, b),
			wellness.New(env, b),
			trophies.New(env, b),
		),
		mgr:    mgr,
		env:    env,
		bus:    b,
		logger: logger,
		userID: opts.UserID,
		sigCh:  make(chan bus.Signal, 16),
	}

	env.SetRegion("tabs", true)
	for _, name := range tabRegions {
		env.SetRegion("tabs."+name, true)
	}

	for _, name := range []string{
		tour.SignalResume, tour.SignalStepBlocked, tour.SignalRewardGranted,
	} {
		b.Subscribe(name, func(sig bus.Signal) {
			select {
			case m.sigCh <- sig:
			default:
				logger.Warn("signal dropped", zap.String("signal", sig.Name))
			}
		})
	}

	if !opts.NoTour {
		m.initCmd = m.startCurrentStep()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.tabs.Active().Init(), waitSignal(m.sigCh))
}

// waitSignal delivers the next bus signal as a message.
func waitSignal(ch chan bus.Signal) tea.Cmd {
	return func() tea.Msg {
		return signalMsg{sig: <-ch}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case signalMsg:
		return m.handleSignal(msg.sig)

	case autoAdvanceMsg:
		if m.tourOn && m.guide.Step.ID == msg.step && m.guide.Phase == guide.PhaseShowing {
			return m.advance(msg.step)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.tabs.Update(msg)
}

func (m Model) handleSignal(sig bus.Signal) (tea.Model, tea.Cmd) {
	next := waitSignal(m.sigCh)

	switch sig.Name {
	case tour.SignalResume:
		if m.tourOn {
			m.guide.MarkReady()
		}
	case tour.SignalStepBlocked:
		if m.tourOn {
			m.guide.MarkBlocked(sig.Data["message"])
		}
	case tour.SignalRewardGranted:
		pts, _ := strconv.Atoi(sig.Data["points"])
		m.points += pts
		cmd := m.tabs.UpdateAt(TabTrophies, trophies.GrantedMsg{
			Name: sig.Data["name"],
			Icon: sig.Data["icon"],
		})
		return m, tea.Batch(cmd, next)
	}
	return m, next
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Every keystroke is also a detection event (keyboard shortcuts).
	m.env.FireEvent("key", key)

	if m.tourOn && m.guide.Modal() {
		switch key {
		case "enter":
			return m.advance(m.guide.Step.ID)
		case "s":
			if m.guide.Step.Skippable {
				return m.skipStep(m.guide.Step.ID)
			}
		case "S":
			return m.skipTour()
		case "r":
			return m.restart()
		}
		return m, nil
	}

	if m.tourOn {
		switch key {
		case "ctrl+s":
			if m.guide.Step.Skippable {
				return m.skipStep(m.guide.Step.ID)
			}
			return m, nil
		case "ctrl+e":
			return m.skipTour()
		}
	}

	switch key {
	case "tab":
		return m.selectTab((m.tabs.ActiveIndex() + 1) % m.tabs.Len())
	case "1", "2", "3", "4", "5":
		return m.selectTab(int(key[0] - '1'))
	}

	return m, m.tabs.Update(msg)
}

// selectTab switches panes and announces the change for detection.
func (m Model) selectTab(i int) (tea.Model, tea.Cmd) {
	if i < 0 || i >= m.tabs.Len() {
		return m, nil
	}
	cmd := m.tabs.Select(i)
	m.env.FireEvent("click", "tabs."+tabRegions[i])
	m.bus.Publish(bus.Signal{
		Name: tour.SignalTabChanged,
		Data: map[string]string{"tab": tabRegions[i]},
	})
	return m, cmd
}

func (m Model) advance(from tour.Step) (tea.Model, tea.Cmd) {
	if _, err := m.mgr.Advance(context.Background(), m.userID, from); err != nil {
		m.logger.Warn("advance failed", zap.Error(err))
	}
	cmd := m.startCurrentStep()
	return m, cmd
}

func (m Model) skipStep(step tour.Step) (tea.Model, tea.Cmd) {
	if _, err := m.mgr.SkipStep(context.Background(), m.userID, step); err != nil {
		m.logger.Warn("skip step failed", zap.Error(err))
	}
	cmd := m.startCurrentStep()
	return m, cmd
}

func (m Model) skipTour() (tea.Model, tea.Cmd) {
	if _, err := m.mgr.SkipTutorial(context.Background(), m.userID); err != nil {
		m.logger.Warn("skip tour failed", zap.Error(err))
	}
	m.tourOn = false
	return m, nil
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	if _, err := m.mgr.Restart(context.Background(), m.userID); err != nil {
		m.logger.Warn("restart failed", zap.Error(err))
	}
	cmd := m.startCurrentStep()
	return m, cmd
}

// startCurrentStep syncs the overlay with the persisted position and arms
// detection for interactive steps. Returns the auto-advance timer for
// passive steps.
func (m *Model) startCurrentStep() tea.Cmd {
	ctx := context.Background()

	p, err := m.mgr.Progress(ctx, m.userID)
	if err != nil || p == nil || p.IsCompleted || p.IsSkipped {
		m.tourOn = false
		return nil
	}

	if err := m.mgr.BeginStep(ctx, m.userID); err != nil {
		m.logger.Warn("begin step failed", zap.Error(err))
	}

	// BeginStep may have reset an unknown persisted step.
	p, err = m.mgr.Progress(ctx, m.userID)
	if err != nil || p == nil {
		m.tourOn = false
		return nil
	}

	step := tour.Step(p.CurrentStep)
	sc, ok := m.mgr.StepConfigFor(step)
	if !ok {
		m.tourOn = false
		return nil
	}

	index := 0
	for i, s := range m.mgr.Steps() {
		if s.ID == step {
			index = i
			break
		}
	}

	m.tourOn = true
	m.guide.SetStep(sc, index, len(m.mgr.Steps()))

	if required, satisfied, err := m.mgr.CheckStepActionCompletion(ctx, m.userID); err == nil && required && satisfied {
		m.guide.MarkReady()
	}

	if !sc.Interactive() && sc.AutoAdvance && sc.Duration > 0 {
		id := sc.ID
		return tea.Tick(sc.Duration, func(time.Time) tea.Msg {
			return autoAdvanceMsg{step: id}
		})
	}
	return nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.tabs.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	tasksDone := 0
	if t, ok := m.tabs.At(TabTasks).(tasks.Model); ok {
		tasksDone, _ = t.Stats()
	}
	header := layout.RenderHeader(title, tasksDone, m.points, m.width)

	highlight := -1
	if m.tourOn && m.guide.Step.TargetTab >= 0 {
		highlight = m.guide.Step.TargetTab
	}
	tabBar := layout.RenderTabBar(m.tabs.Titles(), m.tabs.ActiveIndex(), highlight, m.width)

	footer := layout.RenderFooter(m.footerHints(), m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(tabBar) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	var content string
	switch {
	case m.tourOn && m.guide.Modal():
		content = m.guide.Render(m.width, contentHeight)
	case m.tourOn:
		banner := m.guide.Banner(m.width)
		content = banner + "\n" + m.tabs.View(m.width, contentHeight-lipgloss.Height(banner)-1)
	default:
		content = m.tabs.View(m.width, contentHeight)
	}

	v.SetContent(layout.RenderFrame(header, tabBar, content, footer, m.width, m.height))
	return v
}

func (m Model) footerHints() []layout.KeyHint {
	if m.tourOn {
		return append(m.guide.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	hints := []layout.KeyHint{
		{Key: "Tab/1-5", Description: "Switch tab"},
	}
	if p, ok := m.tabs.Active().(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// defaultRewards seeds the trophies granted by tour steps.
func defaultRewards() []store.Reward {
	return []store.Reward{
		{RewardID: "first-loop", Step: string(tour.StepTaskCreation), Name: "First loop", Description: "Captured a task during the tour", Icon: "🌀", Points: 10},
		{RewardID: "curious-mind", Step: string(tour.StepAISuggestions), Name: "Curious mind", Description: "Asked the assistant for help", Icon: "🧠", Points: 5},
		{RewardID: "self-care", Step: string(tour.StepStressRelief), Name: "Self-care", Description: "Logged a mood check-in", Icon: "🌿", Points: 5},
		{RewardID: "tour-complete", Step: string(tour.StepAchievements), Name: "Grand tour", Description: "Finished the whole tour", Icon: "🎓", Points: 20},
	}
}

// Run builds every collaborator and starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.UserID == "" {
		opts.UserID = DefaultUserID
	}

	logPath := opts.LogPath
	if logPath == "" {
		logPath = logging.DefaultLogPath()
	}
	logger, closeLog, err := logging.New(logPath, opts.Verbose)
	if err != nil {
		return err
	}
	defer closeLog()

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return err
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	b := bus.New()
	env := detect.NewRuntime(b)
	handler := recovery.NewHandler(nil, logger)
	det := detect.New(env, handler, logger)

	tm := templates.NewManager(logger)
	if opts.PacksDir != "" {
		if err := tm.LoadDir(opts.PacksDir); err != nil {
			return err
		}
	}
	gen := tm.Generate(opts.UserID, opts.TemplateID, nil)
	if gen == nil {
		return fmt.Errorf("no tour template resolved for %q", opts.TemplateID)
	}

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("event repo: %w", err)
	}
	analytics := tour.NewAnalytics(eventRepo, gen.Config, logger)
	defer analytics.Close()

	ctx := context.Background()
	rewardRepo := st.RewardRepo()
	if err := rewardRepo.Seed(ctx, defaultRewards()); err != nil {
		logger.Warn("reward seed failed", zap.Error(err))
	}

	mgr := tour.NewManager(gen.Steps, gen.Config, tour.Deps{
		Progress:  st.ProgressRepo(),
		Rewards:   rewardRepo,
		Analytics: analytics,
		Errors:    handler,
		Watcher:   det,
		Bus:       b,
		Logger:    logger,
	})

	if !opts.NoTour {
		if _, err := mgr.Initialize(ctx, opts.UserID); err != nil {
			logger.Warn("tour initialize failed", zap.Error(err))
		}
	}

	p := tea.NewProgram(newModel(mgr, env, b, logger, opts))
	_, runErr := p.Run()
	mgr.EndSession(ctx)
	return runErr
}
