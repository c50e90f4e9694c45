package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"rangebar/internal/config"
	"rangebar/internal/dispatch"
	"rangebar/internal/domain"
	"rangebar/internal/eventbus"
	"rangebar/internal/params"
	"rangebar/internal/selection"
	"rangebar/internal/ui/input"
	inputtypes "rangebar/internal/ui/input/types"
	"rangebar/internal/ui/views"
	"rangebar/internal/widget"
)

// Model is the bubbletea host: it owns the bar, the index fields and the
// parameter sliders, and feeds every input through the dispatcher
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	bar        *widget.Bar
	store      *params.Store
	sel        *selection.Machine
	dispatcher *dispatch.Dispatcher

	left        *Label
	right       *Label
	paramLabels map[domain.ParamName]*Label
	// Text typed into an index field that was not committed yet
	drafts map[inputtypes.Mode]string

	width       int
	height      int
	sized       bool
	focus       int
	pressOnBar  bool
	dragErr     error
	status      string
	statusIsErr bool
	inPagerMode bool

	help         help.Model
	editKeys     inputtypes.EditKeyMap
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpOps      *HelpOps
	unsubscribe  []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel builds the bar, the parameter store, the selection and the
// dispatcher from cfg and wires them together
func NewModel(bus eventbus.EventBus, cfg *config.Config) (*Model, error) {
	m := &Model{
		bus:          bus,
		config:       cfg,
		bar:          widget.New(),
		left:         &Label{},
		right:        &Label{},
		paramLabels:  make(map[domain.ParamName]*Label),
		drafts:       make(map[inputtypes.Mode]string),
		help:         help.New(),
		editKeys:     inputtypes.DefaultEditKeyMap(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
	}

	m.store = params.NewStore(m.bar, cfg.InitialParams(), bus)
	for _, name := range domain.ParamNames {
		lbl := &Label{}
		m.paramLabels[name] = lbl
		m.store.Bind(name, lbl)
	}

	m.sel = selection.New(m.store)
	m.store.AttachSelection(m.sel)
	if err := m.sel.SetIndices(cfg.Bar.LeftIndex, cfg.Bar.RightIndex); err != nil {
		log.Printf("ui: ignoring configured selection: %v", err)
	}

	sliders := make(map[domain.ParamName]dispatch.SliderRange, len(domain.ParamNames))
	for _, name := range domain.ParamNames {
		r := cfg.Slider(name)
		sliders[name] = dispatch.SliderRange{Min: r.Min, Max: r.Max, Step: r.Step}
	}
	m.dispatcher = dispatch.New(m.sel, m.store, m.bar, m.bar, m.left, m.right, bus, dispatch.Options{
		ResyncParamsOnRestore: cfg.Restore.ResyncParams,
		Sliders:               sliders,
	})

	if err := m.store.ApplyAll(); err != nil {
		m.dispatcher.Close()
		return nil, fmt.Errorf("apply parameters: %w", err)
	}
	if err := m.dispatcher.Sync(); err != nil {
		m.dispatcher.Close()
		return nil, err
	}

	m.bar.OnDrag(func(l, r int) {
		if err := m.dispatcher.Drag(l, r); err != nil {
			m.dragErr = err
		}
	})

	if bus != nil {
		m.unsubscribe = append(m.unsubscribe, bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			if event, ok := e.(eventbus.ConfigSavedEvent); ok {
				m.status = "Saved " + event.Path
				m.statusIsErr = false
			}
		}))
	}

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Close detaches the model from the selection and the bus
func (m *Model) Close() {
	m.dispatcher.Close()
	for _, unsub := range m.unsubscribe {
		unsub()
	}
	m.unsubscribe = nil
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.SetWidth(views.ContentWidth(msg.Width))
		// Every size change after the first rebuilds the screen from the
		// live widget
		if m.sized {
			m.restore()
		}
		m.sized = true
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.FocusParamAction:
		n := len(domain.ParamNames)
		m.focus = ((m.focus+a.Delta)%n + n) % n

	case inputtypes.StepParamAction:
		return m.reject(m.dispatcher.Step(m.FocusedParam(), a.Delta))

	case inputtypes.UpdateTextAction:
		m.drafts[a.Mode] = a.Text

	case inputtypes.SubmitTextAction:
		leftText, rightText := m.LeftText(), m.RightText()
		if a.Mode == inputtypes.ModeEditLeft {
			leftText = a.Text
		} else {
			rightText = a.Text
		}
		m.clearDrafts()
		return m.reject(m.dispatcher.CommitText(leftText, rightText))

	case inputtypes.CancelTextAction:
		m.clearDrafts()

	case inputtypes.ToggleActiveAction:
		m.bar.SetActivated(!m.bar.Activated())

	case inputtypes.SaveConfigAction:
		m.publishConfig()
		if m.status != "" {
			return clearStatusLater()
		}

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
		return m.fetchHelpPager(renderHelpContent(m.inputHandler.Keys(), m.editKeys))

	case inputtypes.QuitAction:
		if !a.Force && m.config.UISettings.AutosaveOnExit {
			m.publishConfig()
		}
		return tea.Quit
	}

	return nil
}

// handleMouse feeds left-button gestures on the bar to the widget's drag
// decoder. A release only counts when the press landed on the bar.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UISettings.Mouse {
		return nil
	}

	ox, oy := views.BarOrigin()
	x := float64(msg.X - ox)
	onBar := msg.Y >= oy && msg.Y < oy+m.barHeight()

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onBar {
			return nil
		}
		m.pressOnBar = true
		if m.bar.Press(x) {
			m.dispatcher.BeginDrag()
		}

	case tea.MouseActionMotion:
		m.bar.Move(x)

	case tea.MouseActionRelease:
		if !m.pressOnBar {
			return nil
		}
		m.pressOnBar = false
		dragging := m.bar.Dragging()
		m.bar.Release(x)
		if dragging {
			m.dispatcher.EndDrag()
		}
	}

	err := m.dragErr
	m.dragErr = nil
	return m.reject(err)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, fall back to the inline full help
			log.Printf("Help pager failed: %v", msg.err)
			m.help.ShowAll = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.restore()
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusIsErr = false
		return m, nil
	}

	return m, nil
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// restore republishes the live widget's selection to the index fields
func (m *Model) restore() {
	sel := m.dispatcher.Restore()
	log.Printf("ui: restored selection %s", sel)
}

// reject logs a refused input; the status line only shows it when
// show_rejections is set
func (m *Model) reject(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	log.Printf("ui: input rejected: %v", err)
	if !m.config.UISettings.ShowRejections {
		return nil
	}
	m.status = err.Error()
	m.statusIsErr = true
	return clearStatusLater()
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// publishConfig asks for the current parameters and selection to be saved
func (m *Model) publishConfig() {
	if m.bus == nil {
		return
	}
	l, r := m.sel.CurrentIndices()
	m.bus.Publish(eventbus.ConfigChangedEvent{
		Params:  m.store.Snapshot(),
		Indices: domain.Indices{Left: l, Right: r},
	})
}

func (m *Model) clearDrafts() {
	for k := range m.drafts {
		delete(m.drafts, k)
	}
}

func (m *Model) barHeight() int {
	return strings.Count(m.bar.View(), "\n") + 1
}

// FocusedParam returns the parameter the arrow keys adjust
func (m *Model) FocusedParam() domain.ParamName {
	return domain.ParamNames[m.focus]
}

// LeftText returns the left field's draft, or its committed text
func (m *Model) LeftText() string {
	if d, ok := m.drafts[inputtypes.ModeEditLeft]; ok {
		return d
	}
	return m.left.Text()
}

// RightText returns the right field's draft, or its committed text
func (m *Model) RightText() string {
	if d, ok := m.drafts[inputtypes.ModeEditRight]; ok {
		return d
	}
	return m.right.Text()
}

// Activated reports whether the bar accepts drags
func (m *Model) Activated() bool {
	return m.bar.Activated()
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	mode := m.inputHandler.CurrentMode()
	state := views.ViewState{
		Bar:         m.bar.View(),
		BarActive:   m.bar.Activated(),
		Left:        m.field("left", inputtypes.ModeEditLeft, m.LeftText()),
		Right:       m.field("right", inputtypes.ModeEditRight, m.RightText()),
		Status:      m.status,
		StatusIsErr: m.statusIsErr,
	}
	for i, name := range domain.ParamNames {
		state.Params = append(state.Params, views.Param{
			Label:   m.paramLabels[name].Text(),
			Focused: i == m.focus,
		})
	}
	if mode.IsText() {
		state.Help = m.help.View(m.editKeys)
	} else {
		state.Help = m.help.View(m.inputHandler.Keys())
	}

	return m.renderer.Render(state)
}

func (m *Model) field(label string, mode inputtypes.Mode, text string) views.Field {
	f := views.Field{Label: label, Text: text}
	if m.inputHandler.CurrentMode() == mode {
		f.Editing = true
		if ti := m.inputHandler.TextInput(); ti != nil {
			f.Input = ti.View()
		}
	}
	return f
}
