// Package app is the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/oracle/internal/logging"
	"github.com/abhisek/oracle/internal/oracle"
	"github.com/abhisek/oracle/internal/router"
	"github.com/abhisek/oracle/internal/screen"
	"github.com/abhisek/oracle/internal/screens/picker"
	"github.com/abhisek/oracle/internal/screens/welcome"
	"github.com/abhisek/oracle/internal/store"
	"github.com/abhisek/oracle/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	// Source is the dataset path or URL.
	Source string

	Fetch store.FetchOptions

	// Session receives the dataset. A new one is created when nil.
	Session *oracle.Session

	// SkipSplash opens the picker directly.
	SkipSplash bool
}

// datasetMsg carries the snapshot bytes fetched in the background.
type datasetMsg struct {
	data []byte
	err  error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts    Options
	session *oracle.Session
	router  *router.Router
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome screen. The
// picker is built up front so it observes the session from the start.
func newAppModel(opts Options) AppModel {
	sess := opts.Session
	if sess == nil {
		sess = oracle.New()
	}

	p := picker.New(sess)
	var first screen.Screen = p
	if !opts.SkipSplash {
		first = welcome.New(func() screen.Screen { return p })
	}

	return AppModel{
		opts:    opts,
		session: sess,
		router:  router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.session.Phase() == oracle.PhasePending {
		cmds = append(cmds, fetchDataset(m.opts.Source, m.opts.Fetch))
	}
	return tea.Batch(cmds...)
}

// fetchDataset reads the snapshot off the update loop.
func fetchDataset(source string, opts store.FetchOptions) tea.Cmd {
	return func() tea.Msg {
		data, err := store.Fetch(context.Background(), source, opts)
		return datasetMsg{data: data, err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case datasetMsg:
		if msg.err != nil {
			_ = m.session.DatasetFailed(msg.err)
		} else if err := m.session.DatasetLoaded(msg.data); err != nil {
			logging.Warn("dataset rejected", "err", err)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
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

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	frame := layout.Frame{
		Hints: []layout.KeyHint{
			{Key: "Any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		},
		Width:  m.width,
		Height: m.height,
	}

	active := m.router.Active()
	if active != nil {
		frame.Title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		frame.Status = sp.Status()
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		frame.Hints = hp.KeyHints()
	}

	v.SetContent(frame.Render(m.router.View(m.width, frame.ContentHeight())))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
