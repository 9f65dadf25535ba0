// Package picker is the terminal rendition of the avatar selection screen.
//
// The model loads candidates once, moves from loading to ready exactly once,
// and ends by navigating either to the login screen or to the root.
package picker

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/louisbranch/avatarpick/internal/avatar"
	"github.com/louisbranch/avatarpick/internal/platform/random"
	"github.com/louisbranch/avatarpick/internal/session"
)

// Navigation targets reported when the model quits.
const (
	RouteLogin = "/login"
	RouteRoot  = "/"
)

const (
	title         = "Pick an Avatar as your profile picture"
	submitLabel   = "Set as Profile Picture"
	randomLabel   = "Select Random Avatar"
	noCandidates  = "No avatars could be loaded."
	notLoggedIn   = "You are not logged in."
	avatarSetText = "Your avatar is set."
)

type state int

const (
	stateLoading state = iota
	stateReady
	stateDone
)

type loadedMsg struct {
	record session.Record
	batch  avatar.Batch
	err    error
}

type submittedMsg struct {
	record session.Record
	err    error
}

// Config wires the model to the core.
type Config struct {
	Service *avatar.Service
	Store   avatar.SessionStore
	Random  random.Source
}

// Model is the bubbletea model for the selection screen.
type Model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	service *avatar.Service
	store   avatar.SessionStore
	random  random.Source

	state      state
	spinner    spinner.Model
	picker     *avatar.Picker
	seeds      []int
	failed     int
	cursor     int
	submitting bool
	notice     string
	noticeErr  bool
	record     session.Record
	route      string
	err        error
}

// New builds a model. Quitting cancels the context passed to the core.
func New(ctx context.Context, cfg Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	rnd := cfg.Random
	if rnd == nil {
		rnd = random.MustNew()
	}
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(accent)))
	return Model{
		ctx:     ctx,
		cancel:  cancel,
		service: cfg.Service,
		store:   cfg.Store,
		random:  rnd,
		spinner: s,
		picker:  avatar.NewPicker(nil),
	}
}

// Init starts the spinner and the candidate load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m Model) load() tea.Cmd {
	ctx, service, store := m.ctx, m.service, m.store
	return func() tea.Msg {
		if service == nil {
			return loadedMsg{err: errors.New("avatar service is not configured")}
		}
		record, batch, err := service.Load(ctx, store)
		return loadedMsg{record: record, batch: batch, err: err}
	}
}

func (m Model) submit() tea.Cmd {
	ctx, service, store := m.ctx, m.service, m.store
	picker := avatar.NewPicker(m.picker.Candidates())
	if selected, ok := m.picker.Selected(); ok {
		_ = picker.Select(selected)
	}
	return func() tea.Msg {
		record, err := service.Submit(ctx, store, picker)
		return submittedMsg{record: record, err: err}
	}
}

// Update handles key presses and load/submit results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case loadedMsg:
		return m.handleLoaded(msg)
	case submittedMsg:
		return m.handleSubmitted(msg)
	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if m.state != stateLoading {
		return m, nil
	}
	if errors.Is(msg.err, avatar.ErrNotLoggedIn) {
		return m.quit(RouteLogin, notLoggedIn, msg.err)
	}
	if msg.err != nil {
		return m.quit("", msg.err.Error(), msg.err)
	}
	m.state = stateReady
	m.record = msg.record
	m.picker = avatar.NewPicker(msg.batch.Candidates)
	m.seeds = msg.batch.Seeds
	m.failed = len(msg.batch.Failures)
	if m.picker.Len() == 0 {
		m.setNotice(noCandidates, true)
	}
	return m, nil
}

func (m Model) handleSubmitted(msg submittedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if errors.Is(msg.err, avatar.ErrNotLoggedIn) {
		return m.quit(RouteLogin, notLoggedIn, msg.err)
	}
	if text, ok := avatar.Notice(msg.err); ok {
		m.setNotice(text, true)
		return m, nil
	}
	m.record = msg.record
	return m.quit(RouteRoot, avatarSetText, nil)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return m.quit("", "", nil)
	}
	if m.state != stateReady || m.submitting {
		return m, nil
	}
	switch key := msg.String(); key {
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < m.picker.Len()-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selectIndex(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.selectIndex(int(key[0] - '1'))
	case "r":
		index, err := m.picker.SelectRandom(m.random)
		if err != nil {
			m.setNotice(noCandidates, true)
			return m, nil
		}
		m.cursor = index
		m.notice = ""
	case "s":
		if _, ok := m.picker.Selected(); !ok {
			m.setNotice(avatar.MessageSelectAvatar, true)
			return m, nil
		}
		m.submitting = true
		m.notice = ""
		return m, m.submit()
	}
	return m, nil
}

func (m *Model) selectIndex(i int) {
	if err := m.picker.Select(i); err != nil {
		return
	}
	m.cursor = i
	m.notice = ""
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m Model) quit(route, notice string, err error) (tea.Model, tea.Cmd) {
	m.state = stateDone
	m.route = route
	m.err = err
	if notice != "" {
		m.setNotice(notice, err != nil)
	}
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// Route returns where the screen navigated on exit, or "" when the user quit.
func (m Model) Route() string { return m.route }

// Record returns the session record after a successful submit.
func (m Model) Record() session.Record { return m.record }

// Err returns the error that ended the screen, if any.
func (m Model) Err() error { return m.err }

// Notice returns the message currently shown to the user.
func (m Model) Notice() string { return m.notice }

// Ready reports whether candidates have been loaded.
func (m Model) Ready() bool { return m.state == stateReady }

// Picker exposes the current selection state.
func (m Model) Picker() *avatar.Picker { return m.picker }

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		fmt.Fprintf(&b, "%s Loading avatars...\n", m.spinner.View())
		return b.String()
	case stateDone:
		if m.notice != "" {
			b.WriteString(m.noticeView())
			b.WriteString("\n")
		}
		return b.String()
	}

	if m.failed > 0 && m.picker.Len() > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("%d of %d avatars could not be loaded.", m.failed, m.failed+m.picker.Len())))
		b.WriteString("\n\n")
	}
	cards := make([]string, 0, m.picker.Len())
	for i := range m.picker.Len() {
		cards = append(cards, m.cardView(i))
	}
	if len(cards) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
		b.WriteString("\n\n")
	}
	if m.submitting {
		b.WriteString("Saving...\n")
	}
	if m.notice != "" {
		b.WriteString(m.noticeView())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("←/→ move • enter select • r %s • s %s • q quit", randomLabel, submitLabel)))
	b.WriteString("\n")
	return b.String()
}

func (m Model) cardView(i int) string {
	label := fmt.Sprintf("Avatar %d", i+1)
	if i < len(m.seeds) {
		label += fmt.Sprintf("\nseed %d", m.seeds[i])
	}
	style := cardStyle
	switch {
	case m.picker.IsSelected(i):
		style = pickedCard
		label += "\n✓"
	case i == m.cursor:
		style = cursorCard
	}
	return style.Render(label)
}

func (m Model) noticeView() string {
	if m.noticeErr {
		return errorToast.Render(m.notice)
	}
	return toastStyle.Render(m.notice)
}
