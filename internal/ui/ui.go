package ui

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvjustin/golibrespot-java/internal/state"
	"github.com/uvjustin/golibrespot-java/librespot"
)

// Options configure the UI.
type Options struct {
	Context      context.Context
	Client       *librespot.Client
	Store        *state.Store
	RefreshEvery time.Duration
}

type promptMode int

const (
	promptNone promptMode = iota
	promptSearch
	promptLoad
)

const (
	defaultRefresh = time.Second
	commandTimeout = 5 * time.Second
)

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx          context.Context
	client       *librespot.Client
	store        *state.Store
	refreshEvery time.Duration

	width  int
	height int
	ready  bool

	snapshot state.Snapshot

	prompt     promptMode
	input      textinput.Model
	spin       spinner.Model
	lastAction string

	styles styles
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	refreshEvery := opts.RefreshEvery
	if refreshEvery <= 0 {
		refreshEvery = defaultRefresh
	}

	input := textinput.New()
	input.CharLimit = 256

	st := defaultStyles()
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = st.Accent

	return Model{
		ctx:          ctx,
		client:       opts.Client,
		store:        opts.Store,
		refreshEvery: refreshEvery,
		input:        input,
		spin:         spin,
		styles:       st,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.refreshEvery),
		m.spin.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.refreshEvery)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case commandResultMsg:
		m.lastAction = describeResult(msg)
		return m, nil

	case searchResultMsg:
		if msg.err != nil {
			m.lastAction = fmt.Sprintf("search %q failed: %v", msg.query, msg.err)
		} else {
			m.lastAction = fmt.Sprintf("search %q: %d result groups", msg.query, len(msg.body))
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != promptNone {
		return m.handlePromptKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case " ":
		// Toggle based on the last known state; the server's answer is
		// authoritative either way.
		if m.snapshot.PlayerStatus == "playing" {
			return m, m.transportCmd("pause", m.client.PlayerPause)
		}
		return m, m.transportCmd("resume", m.client.PlayerResume)

	case "n":
		return m, m.transportCmd("next", m.client.PlayerNext)

	case "p":
		return m, m.transportCmd("prev", m.client.PlayerPrev)

	case "+", "=":
		return m, m.transportCmd("volume up", m.client.PlayerVolumeUp)

	case "-":
		return m, m.transportCmd("volume down", m.client.PlayerVolumeDown)

	case "m":
		return m, m.transportCmd("mute", func(ctx context.Context) (int, error) {
			return m.client.PlayerSetVolume(ctx, 0)
		})

	case "/":
		m.prompt = promptSearch
		m.input.Placeholder = "search"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "o":
		m.prompt = promptLoad
		m.input.Placeholder = "spotify:track:..."
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		return m, m.refreshCurrentCmd()
	}

	return m, nil
}

// handlePromptKey routes keys while the search or load prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.prompt = promptNone
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.prompt
		m.prompt = promptNone
		m.input.Blur()
		if value == "" {
			return m, nil
		}
		if mode == promptSearch {
			return m, m.searchCmd(value)
		}
		return m, m.loadCmd(value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type commandResultMsg struct {
	label  string
	status int
	err    error
}

type searchResultMsg struct {
	query string
	body  map[string]any
	err   error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// transportCmd runs one write-type player command off the update loop.
func (m Model) transportCmd(label string, call func(context.Context) (int, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		cctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		status, err := call(cctx)
		return commandResultMsg{label: label, status: status, err: err}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx, client := m.ctx, m.client
	return func() tea.Msg {
		cctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		// The client inserts path segments verbatim, so escape here.
		body, err := client.Search(cctx, url.PathEscape(query))
		return searchResultMsg{query: query, body: body, err: err}
	}
}

func (m Model) loadCmd(uri string) tea.Cmd {
	return m.transportCmd("load", func(ctx context.Context) (int, error) {
		return m.client.PlayerLoad(ctx, uri, true)
	})
}

// refreshCurrentCmd re-seeds the store from player/current on demand.
func (m Model) refreshCurrentCmd() tea.Cmd {
	ctx, client, store := m.ctx, m.client, m.store
	return func() tea.Msg {
		cctx, cancel := context.WithTimeout(ctx, commandTimeout)
		defer cancel()
		body, err := client.PlayerCurrent(cctx)
		if err != nil {
			return commandResultMsg{label: "refresh", err: err}
		}
		store.ApplyCurrent(body)
		return snapshotMsg(store.Snapshot())
	}
}

// describeResult summarizes a command outcome for the status line.
func describeResult(msg commandResultMsg) string {
	if msg.err != nil {
		return fmt.Sprintf("%s failed: %v", msg.label, msg.err)
	}
	if reason := softFailureText(msg.status); reason != "" {
		return fmt.Sprintf("%s: %s (%d)", msg.label, reason, msg.status)
	}
	return fmt.Sprintf("%s: ok (%d)", msg.label, msg.status)
}

func softFailureText(status int) string {
	switch status {
	case 204:
		return "no active session"
	case 500:
		return "invalid session"
	case 503:
		return "session is reconnecting"
	}
	return ""
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
