package tui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/profilecard/internal/anim"
	"github.com/wexinc/profilecard/internal/logging"
	"github.com/wexinc/profilecard/internal/profile"
	"github.com/wexinc/profilecard/internal/tui/components"
)

// frameInterval paces animation frames at roughly 60 per second.
const frameInterval = time.Second / 60

// LoadState is the view's mount state. It only ever moves forward.
type LoadState int

const (
	// Unloaded is the state before the view has been mounted. Every
	// element sits at its hidden pose.
	Unloaded LoadState = iota
	// Loaded is entered once on mount and never left.
	Loaded
)

// String returns the state name used in logs.
func (s LoadState) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// focus is the control that receives enter and space.
type focus int

const (
	focusNone focus = iota
	focusEdit
	focusFloating
)

// Options configures a ProfileView.
type Options struct {
	// Record is the displayed profile. The view keeps its own copy.
	Record profile.Record
	// Schedule overrides the entrance timing. Nil means anim.DefaultSchedule.
	Schedule *anim.Schedule
	// OnEditProfile runs when the edit button is activated.
	OnEditProfile func()
	// OnCreateAction runs when the floating "+" control is activated.
	OnCreateAction func()
	// Clock returns the current time. Nil means time.Now.
	Clock func() time.Time
	// Logger receives activation and lifecycle events. Nil means the global logger.
	Logger *logging.Logger
}

var viewSeq atomic.Uint64

// ProfileView is the Bubble Tea model for the animated profile card.
type ProfileView struct {
	id       string
	record   profile.Record
	schedule anim.Schedule

	// Components
	avatar    *components.Avatar
	edit      *components.Button
	floating  *components.FloatingButton
	tiles     []*components.StatTile
	statCols  int
	tags      []*components.SkillTag
	shortcuts *components.ShortcutBar
	help      *components.HelpOverlay
	keys      keyMap

	// State
	state    LoadState
	loadedAt time.Time
	focus    focus
	ticking  bool
	quitting bool

	// Window dimensions
	width  int
	height int

	// Control positions from the last render, for mouse hit-testing.
	hits hitMap

	onEdit   func()
	onCreate func()
	clock    func() time.Time
	log      *logging.Logger
}

// New creates a ProfileView in the Unloaded state.
func New(opts Options) *ProfileView {
	record := opts.Record.Clone().Normalize()

	schedule := anim.DefaultSchedule()
	if opts.Schedule != nil {
		schedule = *opts.Schedule
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	id := fmt.Sprintf("view-%d", viewSeq.Add(1))
	logCtx := logging.WithViewID(context.Background(), id)
	logger := logging.FromContext(logCtx)
	if opts.Logger != nil {
		logger = opts.Logger.WithContext(logCtx)
	}

	keys := defaultKeyMap()

	m := &ProfileView{
		id:        id,
		record:    record,
		schedule:  schedule,
		avatar:    components.NewAvatar(record.Initial()),
		edit:      components.NewButton("edit", "Edit Profile"),
		floating:  components.NewFloatingButton("+"),
		shortcuts: components.NewShortcutBar(components.ShortcutsFromBindings(keys.ShortHelp()...)...),
		help:      components.NewHelpOverlay(keys),
		keys:      keys,
		state:     Unloaded,
		onEdit:    opts.OnEditProfile,
		onCreate:  opts.OnCreateAction,
		clock:     clock,
		log:       logger,
	}
	m.shortcuts.SetCentered(true)
	m.layoutLists()
	return m
}

// ID returns the view instance id carried in its log lines.
func (m *ProfileView) ID() string {
	return m.id
}

// Record returns a copy of the displayed profile.
func (m *ProfileView) Record() profile.Record {
	return m.record.Clone()
}

// State returns the current load state.
func (m *ProfileView) State() LoadState {
	return m.state
}

// Loaded reports whether the view has been mounted.
func (m *ProfileView) Loaded() bool {
	return m.state == Loaded
}

// Elapsed returns the time since mount, or zero before it.
func (m *ProfileView) Elapsed() time.Duration {
	if m.state != Loaded {
		return 0
	}
	return m.clock().Sub(m.loadedAt)
}

// Settled reports whether every entrance transition has finished.
func (m *ProfileView) Settled() bool {
	return m.state == Loaded && m.Elapsed() >= m.settle()
}

// PoseOf returns the entrance pose of element e; index selects the stat or
// skill for list items. Pointer feedback is not included.
func (m *ProfileView) PoseOf(e anim.Element, index int) anim.Pose {
	return m.schedule.PoseAt(e, index, m.state == Loaded, m.Elapsed())
}

func (m *ProfileView) settle() time.Duration {
	return m.schedule.Settle(len(m.record.Stats), len(m.record.Skills))
}

// Init is the Bubble Tea initialization function.
func (m *ProfileView) Init() tea.Cmd {
	return func() tea.Msg {
		return MountedMsg{}
	}
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// Update handles messages and updates the model.
func (m *ProfileView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The help overlay captures keys while open, except ctrl+c.
	if km, ok := msg.(tea.KeyMsg); ok && m.help.IsVisible() && km.String() != "ctrl+c" {
		return m, m.help.Update(km)
	}

	switch msg := msg.(type) {
	case MountedMsg:
		return m, m.mount()

	case FrameMsg:
		if m.needsFrames() {
			return m, frameCmd()
		}
		if m.ticking {
			m.log.Debug("animation settled", "elapsed", m.Elapsed())
		}
		m.ticking = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutLists()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case components.HelpClosedMsg:
		return m, nil
	}

	return m, nil
}

// mount performs the one-way Unloaded -> Loaded transition.
func (m *ProfileView) mount() tea.Cmd {
	if m.state == Loaded {
		return nil
	}
	m.state = Loaded
	m.loadedAt = m.clock()
	m.log.Info("profile view mounted",
		"name", m.record.Name,
		"stats", len(m.record.Stats),
		"skills", len(m.record.Skills),
		"settle", m.settle())
	return m.startFrames()
}

func (m *ProfileView) startFrames() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return frameCmd()
}

// needsFrames reports whether something on screen is still moving.
func (m *ProfileView) needsFrames() bool {
	if m.state == Loaded && !m.Settled() {
		return true
	}
	now := m.clock()
	if m.edit.Hovered() && m.edit.HoverFor(now) < anim.FeedbackDuration {
		return true
	}
	return m.floating.Hovered() && m.floating.HoverFor(now) < anim.FeedbackDuration
}

// handleKeyPress handles keyboard input.
func (m *ProfileView) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.log.Debug("quit requested")
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.nextFocus(1))
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.nextFocus(-1))
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		switch m.focus {
		case focusEdit:
			if _, _, activated := m.edit.Update(msg); activated {
				m.activateEdit("keyboard")
			}
		case focusFloating:
			m.activateCreate("keyboard")
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.activateEdit("shortcut")
		return m, nil

	case key.Matches(msg, m.keys.Create):
		m.activateCreate("shortcut")
		return m, nil
	}

	return m, nil
}

// nextFocus cycles between the two controls. From no focus, forward lands
// on the edit button and backward on the floating control.
func (m *ProfileView) nextFocus(dir int) focus {
	switch m.focus {
	case focusEdit:
		return focusFloating
	case focusFloating:
		return focusEdit
	default:
		if dir < 0 {
			return focusFloating
		}
		return focusEdit
	}
}

func (m *ProfileView) setFocus(f focus) {
	m.focus = f
	m.edit.Blur()
	m.floating.Blur()
	switch f {
	case focusEdit:
		m.edit.Focus()
	case focusFloating:
		m.floating.Focus()
	}
}

// handleMouse applies hover and press feedback and activates a control when
// a press is released over it.
func (m *ProfileView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	now := m.clock()
	overEdit := m.hits.edit.contains(msg.X, msg.Y)
	overFloating := m.hits.floating.contains(msg.X, msg.Y)

	m.edit.SetHovered(overEdit, now)
	m.floating.SetHovered(overFloating, now)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			break
		}
		m.edit.SetPressed(overEdit)
		m.floating.SetPressed(overFloating)

	case tea.MouseActionRelease:
		editClicked := overEdit && m.edit.Pressed()
		floatingClicked := overFloating && m.floating.Pressed()
		m.edit.SetPressed(false)
		m.floating.SetPressed(false)
		if editClicked {
			m.activateEdit("mouse")
		}
		if floatingClicked {
			m.activateCreate("mouse")
		}
	}

	if m.needsFrames() {
		return m.startFrames()
	}
	return nil
}

// activateEdit runs the edit hook. It never touches the load state.
func (m *ProfileView) activateEdit(source string) {
	m.log.Debug("edit profile activated", "source", source, "bound", m.onEdit != nil)
	if m.onEdit != nil {
		m.onEdit()
	}
}

// activateCreate runs the create hook. It never touches the load state.
func (m *ProfileView) activateCreate(source string) {
	m.log.Debug("create action activated", "source", source, "bound", m.onCreate != nil)
	if m.onCreate != nil {
		m.onCreate()
	}
}
