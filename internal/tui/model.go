package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/arrange/internal/gesture"
	"github.com/ensigniasec/arrange/internal/scene"
)

// Model is the root Bubble Tea model.
type Model struct {
	dispatcher *gesture.Dispatcher

	// index into the scene's sequences shown in the list panel
	sequence int
	list     list.Model

	width    int
	height   int
	quitting bool

	// ui state
	helpVisible bool
	help        help.Model
	status      string
	statusSeq   int

	// keymap for consistent keybindings
	keys keyMap
}

// NewModel constructs a Model editing s.
func NewModel(s *scene.Scene) Model {
	lst := list.New([]list.Item{}, sequenceDelegate{}, 0, 0)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	lst.SetShowPagination(false)

	m := Model{
		dispatcher: gesture.NewDispatcher(s),
		list:       lst,
		help:       help.New(),
		keys:       newKeyMap(),
	}
	m.resize(0, 0)
	m.syncListItems()
	return m
}

// Scene returns the scene being edited.
func (m Model) Scene() *scene.Scene { return m.dispatcher.Scene() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) layout() layout {
	return newLayout(m.width, m.height, m.Scene().Canvas)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	l := m.layout()
	listWidth := width - l.listX
	if listWidth < minCanvasCols {
		listWidth = minCanvasCols * 2
	}
	m.list.SetSize(listWidth, l.listRows)
	m.help.Width = width
}

// currentSequence returns the sequence shown in the list panel, or nil.
func (m Model) currentSequence() *scene.Sequence {
	s := m.Scene()
	if m.sequence < 0 || m.sequence >= len(s.Sequences) {
		return nil
	}
	return &s.Sequences[m.sequence]
}
