// ============================================================================
// MCK Infra Lab - Grading Dashboard Terminal Client
// ============================================================================
//
// Package:     dashboard
// Description: Main Bubbletea model for the grading dashboard
// Created:     2026-08-30
// License:     MIT
// ============================================================================

package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/api"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/push"
	"github.com/UnpredictablePrashant/MCK-infra-lab/internal/session"
)

const (
	focusName = iota
	focusURL
)

// Model is the main Bubbletea model for the dashboard.
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	autoScroll bool
	submitting bool

	// Collaborators
	ctx  context.Context
	sess *session.Session
	push *push.Client

	// Components
	viewport  viewport.Model
	spinner   spinner.Model
	nameInput textinput.Model
	urlInput  textinput.Model
	focus     int

	// Submission display state
	statusMsg  string
	statusOK   bool
	lastResult *api.CompareResult
}

// New creates a dashboard model over an existing session and push client.
func New(ctx context.Context, sess *session.Session, pc *push.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 64
	name.Focus()

	url := textinput.New()
	url.Placeholder = "http://your-app.example"
	url.CharLimit = 256

	return Model{
		ctx:        ctx,
		sess:       sess,
		push:       pc,
		spinner:    sp,
		nameInput:  name,
		urlInput:   url,
		autoScroll: true,
	}
}

// Init initializes the model: one refresh of each panel, the per-second
// tick, and the wait for the first push event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		m.refreshStudents,
		m.refreshLeaderboard,
		m.waitForEvent,
		tickCmd(),
		tea.EnterAltScreen,
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForEvent blocks on the push channel and hands the next event to Update.
func (m Model) waitForEvent() tea.Msg {
	ev, ok := <-m.push.Events()
	if !ok {
		return pushChannelGoneMsg{}
	}
	return pushEventMsg{event: ev}
}

func (m Model) refreshStudents() tea.Msg {
	return studentsRefreshedMsg{err: m.sess.RefreshStudents(m.ctx)}
}

func (m Model) refreshLeaderboard() tea.Msg {
	return leaderboardRefreshedMsg{err: m.sess.RefreshLeaderboard(m.ctx)}
}

func (m Model) submit(name, url string) tea.Cmd {
	return func() tea.Msg {
		return submitDoneMsg{outcome: m.sess.Submit(m.ctx, name, url)}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		logHeight := msg.Height - 22
		if logHeight < 5 {
			logHeight = 5
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, logHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = logHeight
		}
		m.updateLogContent()

	case spinner.TickMsg:
		if m.submitting {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tickMsg:
		// The tick drives both countdowns; a sync-check wrap owes a
		// leaderboard refresh, fire-and-forget.
		if m.sess.TickSecond() {
			cmds = append(cmds, m.refreshLeaderboard)
		}
		cmds = append(cmds, tickCmd())

	case pushEventMsg:
		m.sess.HandleEvent(msg.event)
		m.updateLogContent()
		if m.autoScroll {
			m.viewport.GotoBottom()
		}
		cmds = append(cmds, m.waitForEvent)

	case pushChannelGoneMsg:
		// Channel closed on shutdown; nothing left to wait for.

	case submitDoneMsg:
		m.submitting = false
		m.statusMsg = msg.outcome.Status
		m.statusOK = msg.outcome.OK
		m.lastResult = msg.outcome.Result
		if msg.outcome.RefreshDue {
			cmds = append(cmds, m.refreshStudents, m.refreshLeaderboard)
		}

	case studentsRefreshedMsg, leaderboardRefreshedMsg:
		// Snapshots live in the session; failures keep the previous
		// list and were already logged.
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyTab, tea.KeyShiftTab:
		if m.focus == focusName {
			m.focus = focusURL
			m.nameInput.Blur()
			m.urlInput.Focus()
		} else {
			m.focus = focusName
			m.urlInput.Blur()
			m.nameInput.Focus()
		}
		return m, textinput.Blink

	case tea.KeyEnter:
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		m.statusMsg = "Running comparison..."
		m.statusOK = true
		m.lastResult = nil
		return m, tea.Batch(
			m.spinner.Tick,
			m.submit(m.nameInput.Value(), m.urlInput.Value()),
		)

	case tea.KeyCtrlR:
		return m, tea.Batch(m.refreshStudents, m.refreshLeaderboard)

	case tea.KeyCtrlL:
		return m, m.refreshLeaderboard

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		m.autoScroll = false
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		if m.viewport.AtBottom() {
			m.autoScroll = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == focusName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.urlInput, cmd = m.urlInput.Update(msg)
	}
	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTimers())
	b.WriteString("\n")
	b.WriteString(m.renderForm())
	b.WriteString("\n")

	if m.lastResult != nil {
		b.WriteString(m.renderResults())
		b.WriteString("\n")
	}

	b.WriteString(m.renderLists())
	b.WriteString("\n")
	b.WriteString(m.renderLog())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title line with connection state and lab context.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("MCK Infra Lab")

	var conn string
	switch m.push.State() {
	case push.StateOpen:
		conn = ConnOpenStyle.Render("● live")
	case push.StateConnecting:
		conn = ConnConnectingStyle.Render("● connecting")
	default:
		conn = ConnClosedStyle.Render("● offline")
	}

	lab := ""
	if m.sess.Lab() != "" {
		lab = HelpDescStyle.Render("lab: " + m.sess.Lab())
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center, title, "   ", conn, "   ", lab)
	return TitlePanelStyle.Width(m.width - 2).Render(header)
}

// renderTimers renders both countdown lines and the entry text.
func (m Model) renderTimers() string {
	lines := []string{
		TimerStyle.Render(m.sess.SyncCheckLabel()),
		TimerStyle.Render(m.sess.AutoFillLabel()),
		EntryTextStyle.Render("Entry: " + m.sess.AutoFillEntry()),
	}
	content := PanelTitleStyle.Render("Schedule") + "\n" + strings.Join(lines, "\n")
	return PanelStyle.Width(m.width - 2).Render(content)
}

// renderForm renders the submission inputs and the status line.
func (m Model) renderForm() string {
	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Submit your app"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.urlInput.View())

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View() + " " + StatusOKStyle.Render(m.statusMsg))
	} else if m.statusMsg != "" {
		b.WriteString("\n")
		if m.statusOK {
			b.WriteString(StatusOKStyle.Render(m.statusMsg))
		} else {
			b.WriteString(StatusErrorStyle.Render(m.statusMsg))
		}
	}

	return PanelStyle.Width(m.width - 2).Render(b.String())
}

// renderResults renders the per-endpoint comparison breakdown.
func (m Model) renderResults() string {
	r := m.lastResult

	var b strings.Builder
	if r.Status == api.StatusMatch {
		b.WriteString(SummaryMatchStyle.Render(session.SummaryText(r.Status)))
	} else {
		b.WriteString(SummaryMismatchStyle.Render(session.SummaryText(r.Status)))
	}
	b.WriteString("  ")
	b.WriteString(CardMetaStyle.Render(session.ElapsedText(r.ElapsedMS)))

	for _, item := range r.Results {
		b.WriteString("\n")
		b.WriteString(CardTitleStyle.Render(session.CardTitle(item)))
		b.WriteString("\n  ")
		b.WriteString(CardMetaStyle.Render(session.CardText(item)))
	}

	return PanelStyle.Width(m.width - 2).Render(b.String())
}

// renderLists renders the roster and leaderboard side by side.
func (m Model) renderLists() string {
	half := (m.width - 6) / 2

	var students strings.Builder
	students.WriteString(PanelTitleStyle.Render("Student apps"))
	roster := m.sess.Students()
	if len(roster) == 0 {
		students.WriteString("\n" + HelpDescStyle.Render("No student apps registered yet."))
	}
	for _, s := range roster {
		students.WriteString(fmt.Sprintf("\n%s  %s",
			CardTitleStyle.Render(s.Name), CardMetaStyle.Render(s.URL)))
	}

	var board strings.Builder
	board.WriteString(PanelTitleStyle.Render("Leaderboard"))
	entries := m.sess.Leaderboard()
	if len(entries) == 0 {
		board.WriteString("\n" + HelpDescStyle.Render("No leaderboard entries yet."))
	}
	for _, e := range entries {
		board.WriteString(fmt.Sprintf("\n%s  %s",
			CardTitleStyle.Render(session.EntryName(e)), renderSync(e.Sync)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		PanelStyle.Width(half).Render(students.String()),
		PanelStyle.Width(half).Render(board.String()),
	)
}

func renderSync(sync *bool) string {
	label := session.SyncLabel(sync)
	switch {
	case sync == nil:
		return SyncPendingStyle.Render(label)
	case *sync:
		return SyncOnStyle.Render(label)
	default:
		return SyncOffStyle.Render(label)
	}
}

// renderLog renders the operational log viewport with its entry count.
func (m Model) renderLog() string {
	title := PanelTitleStyle.Render("Automation log")
	count := LogCountStyle.Render(fmt.Sprintf("%d entries", m.sess.LogCount()))
	head := title + "  " + count

	return head + "\n" + LogPanelStyle.Width(m.width-2).Render(m.viewport.View())
}

// renderHelpBar renders the help shortcuts bar.
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Tab", "Field"),
		RenderKeyHint("Enter", "Submit"),
		RenderKeyHint("Ctrl+R", "Refresh"),
		RenderKeyHint("Ctrl+L", "Leaderboard"),
		RenderKeyHint("PgUp/PgDn", "Scroll log"),
		RenderKeyHint("Ctrl+C", "Quit"),
	}
	return strings.Join(items, "  ")
}

// updateLogContent rebuilds the viewport from the bounded log.
func (m *Model) updateLogContent() {
	m.viewport.SetContent(strings.Join(m.sess.LogLines(), "\n"))
}

// Run starts the dashboard TUI. The push client's reconnect loop runs
// for the life of the program and is torn down through ctx.
func Run(ctx context.Context, sess *session.Session, pc *push.Client) error {
	go pc.Run(ctx)

	p := tea.NewProgram(New(ctx, sess, pc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
