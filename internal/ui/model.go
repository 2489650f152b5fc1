package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/jumpbar/internal/jumpbar"
	"github.com/atomicstack/jumpbar/internal/logging"
	"github.com/atomicstack/jumpbar/internal/source"
	"github.com/atomicstack/jumpbar/internal/theme"
	"github.com/atomicstack/jumpbar/internal/tree"
	"github.com/atomicstack/jumpbar/internal/ui/command"
	uistate "github.com/atomicstack/jumpbar/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// TreeSource publishes reloaded trees.
type TreeSource interface {
	Events() <-chan source.Event
}

// Options configures a Model.
type Options struct {
	// Width and Height pin the viewport; zero follows the terminal.
	Width  int
	Height int
	// InitialWidth and InitialHeight size the viewport until the first
	// WindowSizeMsg.
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
	// TreePath is loaded on Init when no Source is given, and on reload.
	TreePath string
	Source   TreeSource
	// Select is applied once, after the first tree is installed.
	Select tree.Path
	// Delegate receives every jump bar callback after the model.
	Delegate jumpbar.Delegate
}

type selectionStatus struct {
	title string
	icon  tree.Icon
	path  tree.Path
}

// Model implements the Bubble Tea model hosting a jump bar.
type Model struct {
	bar      *jumpbar.Controller
	forward  jumpbar.Delegate
	source   TreeSource
	bus      *command.Bus
	treePath string
	initial  tree.Path

	cursor int
	popup  *uistate.Popup
	menu   *jumpbar.Menu

	status     selectionStatus
	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	keys        keyMap

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds a model with an empty bar. Trees arrive through
// InstallTree, Options.TreePath or Options.Source.
func NewModel(opts Options) *Model {
	m := &Model{
		forward:    opts.Delegate,
		source:     opts.Source,
		bus:        command.New(),
		treePath:   opts.TreePath,
		initial:    opts.Select.Clone(),
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
	}
	m.bar = jumpbar.New(m.newSegment, m)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.bar.Resize(float64(opts.Width))
	} else if opts.InitialWidth > 0 {
		m.width = opts.InitialWidth
		m.bar.Resize(float64(opts.InitialWidth))
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	} else if opts.InitialHeight > 0 {
		m.height = opts.InitialHeight
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.registerHandlers()
	return m
}

func (m *Model) newSegment(depth int) jumpbar.Segment {
	return newBarSegment(depth)
}

// Controller exposes the hosted jump bar.
func (m *Model) Controller() *jumpbar.Controller {
	return m.bar
}

// SetDelegate replaces the delegate that receives forwarded callbacks.
func (m *Model) SetDelegate(d jumpbar.Delegate) {
	m.forward = d
}

// InstallTree replaces the tree on show. An open popup is dismissed first.
// The initial selection from Options is applied on the first install.
func (m *Model) InstallTree(roots []tree.Item) {
	if m.popup != nil {
		m.closePopup(jumpbar.Dismiss)
	}
	m.bar.InstallTree(roots)
	if len(m.bar.SelectedPath()) == 0 {
		m.status = selectionStatus{}
		m.cursor = 0
	}
	if m.initial != nil {
		path := m.initial
		m.initial = nil
		if err := m.bar.Select(path); err != nil {
			m.setError(err)
		}
	}
}

// reinstallTree installs a reloaded tree and keeps the previous selection
// when it still resolves.
func (m *Model) reinstallTree(roots []tree.Item) {
	prev := m.bar.SelectedPath()
	m.InstallTree(roots)
	if len(prev) == 0 || prev.Equal(m.bar.SelectedPath()) {
		return
	}
	if item, err := m.bar.Item(prev); err == nil && tree.Selectable(item) {
		if err := m.bar.Select(prev); err != nil {
			m.setError(err)
		}
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.source != nil {
		cmds = append(cmds, waitForTreeEvent(m.source))
	} else if m.treePath != "" {
		cmds = append(cmds, m.loadTreeCmd("tree:load"))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(command.TreeLoaded{}): m.handleTreeLoadedMsg,
		reflect.TypeOf(treeEventMsg{}):       m.handleTreeEventMsg,
		reflect.TypeOf(treeSourceDoneMsg{}):  m.handleTreeSourceDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) setError(err error) {
	if err == nil {
		return
	}
	m.errMsg = err.Error()
	logging.Error(err)
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// WillOpenMenu is forwarded unchanged.
func (m *Model) WillOpenMenu(path tree.Path, items []tree.Item) {
	if m.forward != nil {
		m.forward.WillOpenMenu(path, items)
	}
}

// DidOpenMenu is forwarded unchanged.
func (m *Model) DidOpenMenu(path tree.Path, items []tree.Item) {
	if m.forward != nil {
		m.forward.DidOpenMenu(path, items)
	}
}

// WillSelect is forwarded unchanged.
func (m *Model) WillSelect(item tree.Item, path tree.Path) {
	if m.forward != nil {
		m.forward.WillSelect(item, path)
	}
}

// DidSelect refreshes the status line and moves the segment cursor to the
// new tail before forwarding.
func (m *Model) DidSelect(item tree.Item, path tree.Path) {
	m.status = selectionStatus{
		title: tree.TitleOf(item),
		icon:  tree.IconOf(item),
		path:  path.Clone(),
	}
	m.cursor = len(path) - 1
	m.errMsg = ""
	if m.forward != nil {
		m.forward.DidSelect(item, path)
	}
}
