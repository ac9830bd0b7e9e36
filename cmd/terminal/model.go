package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/code-critic/internal/app"
	"github.com/sevigo/code-critic/internal/core"
)

const asciiLogo = `
╔══════════════════════════════════════════════════════════════════╗
║   ██████╗ ██████╗ ██████╗ ███████╗     ██████╗██████╗ ██╗████████╗██╗ ██████╗   ║
║  ██╔════╝██╔═══██╗██╔══██╗██╔════╝    ██╔════╝██╔══██╗██║╚══██╔══╝██║██╔════╝   ║
║  ██║     ██║   ██║██║  ██║█████╗      ██║     ██████╔╝██║   ██║   ██║██║        ║
║  ██║     ██║   ██║██║  ██║██╔══╝      ██║     ██╔══██╗██║   ██║   ██║██║        ║
║  ╚██████╗╚██████╔╝██████╔╝███████╗    ╚██████╗██║  ██║██║   ██║   ██║╚██████╗   ║
║   ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝     ╚═════╝╚═╝  ╚═╝╚═╝   ╚═╝   ╚═╝ ╚═════╝   ║
║                        AI CODE REVIEW ASSISTANT                                 ║
╚══════════════════════════════════════════════════════════════════╝
`

type model struct {
	styles styles
	app    *app.App

	// UI components
	viewport  viewport.Model
	textarea  textarea.Model
	spinner   spinner.Model
	isLoading bool

	// Session state
	language   core.Language
	langIndex  int
	lastReview string
	statusLine string
	width      int
	height     int
}

func initialModel(theme ThemeName) *model {
	styles := GetTheme(theme)

	ta := textarea.New()
	ta.Placeholder = "Paste code here, then press ctrl+r to review..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(80)
	ta.SetHeight(12)
	ta.ShowLineNumbers = true

	vp := viewport.New(80, 15)
	vp.SetContent(styles.inactive.Render("The review will appear here."))

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	langs := core.Languages()

	return &model{
		styles:     styles,
		textarea:   ta,
		viewport:   vp,
		spinner:    sp,
		isLoading:  true,
		language:   langs[0],
		statusLine: "INITIALIZING...",
	}
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(initializeAppCmd(), m.spinner.Tick)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)
	m.spinner, spCmd = m.spinner.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlL:
			langs := core.Languages()
			m.langIndex = (m.langIndex + 1) % len(langs)
			m.language = langs[m.langIndex]
			return m, nil

		case tea.KeyCtrlR:
			if m.app == nil || m.isLoading {
				return m, nil
			}
			code := strings.TrimSpace(m.textarea.Value())
			if code == "" {
				m.viewport.SetContent(m.styles.error.Render("⚠ Nothing to review. Paste some code first."))
				return m, nil
			}
			m.isLoading = true
			m.statusLine = "REVIEWING..."
			return m, tea.Batch(m.spinner.Tick, runReviewCmd(m.app, m.language, code))

		case tea.KeyCtrlX:
			m.textarea.Reset()
			return m, nil
		}

	case appInitializedMsg:
		m.isLoading = false
		if msg.err != nil {
			fmt.Fprintf(os.Stderr, "ERROR initializing app: %v\n", msg.err)
			m.statusLine = "INITIALIZATION FAILED"
			m.viewport.SetContent(m.styles.error.Render(msg.err.Error()))
			return m, nil
		}
		m.app = msg.app
		m.statusLine = "READY"
		return m, nil

	case reviewCompleteMsg:
		m.isLoading = false
		if msg.result.Failed() {
			m.statusLine = "REVIEW FAILED"
			m.viewport.SetContent(m.styles.error.Render("⚠ " + msg.result.Error))
			m.viewport.GotoTop()
			return m, nil
		}
		m.lastReview = msg.result.Review
		m.statusLine = "REVIEW COMPLETE"
		m.viewport.SetContent(renderMarkdown(m.lastReview, m.viewport.Width))
		m.viewport.GotoTop()
		return m, nil

	case errorMsg:
		m.isLoading = false
		m.statusLine = "ERROR"
		m.viewport.SetContent(m.styles.error.Render("⚠ " + msg.err.Error()))
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(msg.Width - 6)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - m.textarea.Height() - 8
		if m.lastReview != "" {
			m.viewport.SetContent(renderMarkdown(m.lastReview, m.viewport.Width))
		}
	}

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m *model) View() string {
	if m.app == nil && m.isLoading {
		return fmt.Sprintf("\n  %s BOOTING...\n\n", m.spinner.View())
	}

	statusParts := []string{
		"LANG: " + m.styles.language.Render(string(m.language)),
	}
	if m.app != nil && m.app.Cfg != nil {
		statusParts = append(statusParts,
			fmt.Sprintf("🤖 %s (%s)", m.app.Cfg.AI.GeneratorModel, m.app.Cfg.AI.LLMProvider))
	}
	statusParts = append(statusParts, m.statusLine)

	var loadingIndicator string
	if m.isLoading {
		loadingIndicator = " " + m.spinner.View() + " " + m.styles.success.Render("PROCESSING...")
	}

	keys := m.styles.inactive.Render("ctrl+r review │ ctrl+l language │ ctrl+x clear │ esc quit")

	return m.styles.app.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			m.styles.editor.Render(m.textarea.View()),
			m.styles.viewport.Render(m.viewport.View()),
			m.styles.footer.Render(
				lipgloss.JoinHorizontal(lipgloss.Left,
					m.styles.inactive.Render(strings.Join(statusParts, " │ ")),
					loadingIndicator,
				),
			),
			keys,
		),
	)
}
