package ui

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/ftahirops/gridmix/engine"
	"github.com/ftahirops/gridmix/model"
)

// API is the analytics backend the dashboard reads.
type API interface {
	EnergyMix(ctx context.Context) (model.EnergyMix, error)
	OptimalWindow(ctx context.Context, hours int) (model.OptimalWindow, error)
}

// Options configures a dashboard Model.
type Options struct {
	// Hours is the initial charging duration; 0 means the default.
	Hours    int
	Location *time.Location
	Logger   zerolog.Logger
	// Now is the clock used for relative times. Defaults to time.Now.
	Now func() time.Time
}

const (
	defaultWidth   = 3*cardStride + 2
	scrollDelay    = 125 * time.Millisecond
	placeholderCnt = 3
)

type mixResultMsg struct {
	seq uint64
	mix model.EnergyMix
	err error
}

type windowResultMsg struct {
	seq   uint64
	hours int
	win   model.OptimalWindow
	err   error
}

type revealTickMsg struct{ gen int }

type scrollToResultMsg struct{ seq uint64 }

// Model is the bubbletea model.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	api    API
	log    zerolog.Logger
	loc    *time.Location
	now    func() time.Time

	width  int
	height int

	// Data
	mix    engine.MixState
	window engine.WindowState
	hours  int
	cards  []card

	// Navigation
	focus     int // focused card, -1 for none
	scroll    int // vertical scroll offset
	scrollX   int // horizontal offset over the card row, in cells
	revealGen int

	spinner spinner.Model
	help    help.Model
}

// NewModel creates the dashboard. The energy mix is requested by Init;
// requests run under ctx and are cancelled on quit.
func NewModel(ctx context.Context, api API, opts Options) Model {
	ctx, cancel := context.WithCancel(ctx)
	hours := opts.Hours
	if hours == 0 {
		hours = model.DefaultChargingHours
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorWhite)

	m := Model{
		ctx:     ctx,
		cancel:  cancel,
		api:     api,
		log:     opts.Logger,
		loc:     loc,
		now:     now,
		mix:     engine.NewMixState(),
		window:  engine.NewWindowState(),
		hours:   model.ClampHours(hours),
		focus:   -1,
		spinner: s,
		help:    help.New(),
	}
	m.mix.Begin()
	return m
}

func (m Model) Init() tea.Cmd {
	return fetchMix(m.ctx, m.api, m.mix.Latest())
}

func fetchMix(ctx context.Context, api API, seq uint64) tea.Cmd {
	return func() tea.Msg {
		mix, err := api.EnergyMix(ctx)
		return mixResultMsg{seq: seq, mix: mix, err: err}
	}
}

// fetchWindow captures hours when the command is built, not when it runs.
func fetchWindow(ctx context.Context, api API, seq uint64, hours int) tea.Cmd {
	return func() tea.Msg {
		win, err := api.OptimalWindow(ctx, hours)
		return windowResultMsg{seq: seq, hours: hours, win: win, err: err}
	}
}

func revealTick(gen int) tea.Cmd {
	return tea.Tick(revealFrame, func(time.Time) tea.Msg { return revealTickMsg{gen: gen} })
}

func scrollToResult(seq uint64) tea.Cmd {
	return tea.Tick(scrollDelay, func(time.Time) tea.Msg { return scrollToResultMsg{seq: seq} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case mixResultMsg:
		return m.applyMix(msg)

	case windowResultMsg:
		return m.applyWindow(msg)

	case revealTickMsg:
		if msg.gen != m.revealGen {
			return m, nil
		}
		opening := false
		for i := range m.cards {
			m.cards[i].advanceReveal()
			if m.cards[i].reveal != Revealed {
				opening = true
			}
		}
		if opening {
			return m, revealTick(m.revealGen)
		}
		return m, nil

	case scrollToResultMsg:
		if msg.seq == m.window.Latest() && m.window.Data != nil {
			m.scroll = m.maxScroll()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.window.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) applyMix(msg mixResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.mix.Fail(msg.seq, msg.err) {
			m.log.Warn().Err(msg.err).Uint64("seq", msg.seq).Msg("energy mix fetch failed")
		}
		return m, nil
	}
	if !m.mix.Resolve(msg.seq, msg.mix) {
		m.log.Debug().Uint64("seq", msg.seq).Msg("stale energy mix response dropped")
		return m, nil
	}
	m.cards = make([]card, 0, len(msg.mix.Days))
	for _, d := range msg.mix.Days {
		m.cards = append(m.cards, newCard(d))
	}
	m.focus = -1
	m.scrollX = 0
	m.revealGen++
	m.log.Info().Int("days", len(m.cards)).Msg("energy mix loaded")
	return m, revealTick(m.revealGen)
}

func (m Model) applyWindow(msg windowResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if m.window.Fail(msg.seq, msg.err) {
			m.log.Warn().Err(msg.err).Int("hours", msg.hours).Msg("optimal window fetch failed")
		}
		return m, nil
	}
	if !m.window.Resolve(msg.seq, msg.win) {
		m.log.Debug().Uint64("seq", msg.seq).Msg("stale optimal window response dropped")
		return m, nil
	}
	m.log.Info().
		Int("hours", msg.hours).
		Time("start", msg.win.StartTime).
		Float64("clean_pct", msg.win.CleanEnergyPercent).
		Msg("optimal window found")
	return m, scrollToResult(msg.seq)
}

// submit requests the window for the current duration. Ignored while a
// request is in flight.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.window.Loading {
		return m, nil
	}
	seq := m.window.Begin()
	m.log.Debug().Int("hours", m.hours).Uint64("seq", seq).Msg("optimal window requested")
	return m, tea.Batch(fetchWindow(m.ctx, m.api, seq, m.hours), m.spinner.Tick)
}

func (m Model) retryMix() (tea.Model, tea.Cmd) {
	seq := m.mix.Begin()
	m.cards = nil
	m.log.Debug().Uint64("seq", seq).Msg("energy mix retry")
	return m, fetchMix(m.ctx, m.api, seq)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.cancel()
		return m, tea.Quit
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, keys.Submit):
		return m.submit()
	case key.Matches(msg, keys.Retry):
		if m.mix.Failed() {
			return m.retryMix()
		}
	case key.Matches(msg, keys.Shorter):
		m.hours = model.ClampHours(m.hours - 1)
	case key.Matches(msg, keys.Longer):
		m.hours = model.ClampHours(m.hours + 1)
	case key.Matches(msg, keys.Duration):
		m.hours = model.ClampHours(int(msg.String()[0] - '0'))
	case key.Matches(msg, keys.Focus):
		m.moveFocus(1)
	case key.Matches(msg, keys.FocusBack):
		m.moveFocus(-1)
	case key.Matches(msg, keys.ClearHover):
		if m.focus >= 0 {
			m.cards[m.focus].hover = ""
			m.focus = -1
		}
	case key.Matches(msg, keys.HoverUp):
		if m.focus >= 0 {
			m.cards[m.focus].moveHover(-1)
		} else {
			m.scrollBy(-1)
		}
	case key.Matches(msg, keys.HoverDown):
		if m.focus >= 0 {
			m.cards[m.focus].moveHover(1)
		} else {
			m.scrollBy(1)
		}
	case key.Matches(msg, keys.PrevCard):
		m.pageCards(-1)
	case key.Matches(msg, keys.NextCard):
		m.pageCards(1)
	case key.Matches(msg, keys.ScrollUp):
		m.scrollBy(-1)
	case key.Matches(msg, keys.ScrollDown):
		m.scrollBy(1)
	case key.Matches(msg, keys.PageUp):
		m.scrollBy(-m.viewportH())
	case key.Matches(msg, keys.PageDown):
		m.scrollBy(m.viewportH())
	}
	return m, nil
}

// moveFocus cycles keyboard focus through the cards and back to none.
func (m *Model) moveFocus(delta int) {
	n := len(m.cards)
	if n == 0 {
		return
	}
	// positions 0..n-1 are cards, n is "no focus"
	pos := m.focus
	if pos < 0 {
		pos = n
	}
	pos = ((pos+delta)%(n+1) + n + 1) % (n + 1)
	if m.focus >= 0 {
		m.cards[m.focus].hover = ""
	}
	if pos == n {
		m.focus = -1
		return
	}
	m.focus = pos
	first, visible, _ := m.carousel()
	switch {
	case pos < first:
		m.scrollX = pos * cardStride
	case pos >= first+visible:
		m.scrollX = (pos - visible + 1) * cardStride
	}
}

func (m *Model) scrollBy(n int) {
	m.scroll += n
	m.clampScroll()
}

func (m *Model) clampScroll() {
	if limit := m.maxScroll(); m.scroll > limit {
		m.scroll = limit
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
	_, _, pages := m.carousel()
	if limit := (pages - 1) * cardStride; m.scrollX > limit {
		m.scrollX = limit
	}
	if m.scrollX < 0 {
		m.scrollX = 0
	}
}

func (m *Model) pageCards(delta int) {
	first, _, _ := m.carousel()
	m.scrollX = (first + delta) * cardStride
	m.clampScroll()
}

// handleMouse routes wheel events to scrolling, a click on the error banner
// to a retry, and motion to hover.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return m, nil
	case tea.MouseButtonWheelLeft:
		m.scrollX -= cardStride / 2
		m.clampScroll()
		return m, nil
	case tea.MouseButtonWheelRight:
		m.scrollX += cardStride / 2
		m.clampScroll()
		return m, nil
	}
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}

	target, name := -1, ""
	y := msg.Y + m.scroll
	for _, r := range m.layout().regions {
		if !r.contains(msg.X, y) {
			continue
		}
		if r.retry {
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && m.mix.Failed() {
				return m.retryMix()
			}
			break
		}
		target = r.card
		if r.chart {
			name, _ = chartHit(m.cards[r.card].donut(), msg.X-r.left, y-r.top)
		} else {
			name = r.source
		}
		break
	}
	for i := range m.cards {
		if i == target {
			m.cards[i].hover = name
		} else if i != m.focus {
			m.cards[i].hover = ""
		}
	}
	return m, nil
}

// ─── LAYOUT ──────────────────────────────────────────────────────────────────

// region is a hoverable or clickable area in unscrolled screen coordinates.
type region struct {
	card      int
	top, left int
	w, h      int
	chart     bool
	source    string
	retry     bool
}

func (r region) contains(x, y int) bool {
	return x >= r.left && x < r.left+r.w && y >= r.top && y < r.top+r.h
}

type screen struct {
	lines     []string
	regions   []region
	skeletons int
	pages     int
	active    int
}

func (m Model) viewWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// carousel returns the first visible card, how many fit, and the number of
// carousel pages. The active page is derived from the horizontal offset.
func (m Model) carousel() (first, visible, pages int) {
	n := len(m.cards)
	if n == 0 {
		n = placeholderCnt
	}
	visible = (m.viewWidth() + len(cardGap)) / cardStride
	if visible < 1 {
		visible = 1
	}
	if visible > n {
		visible = n
	}
	pages = n - visible + 1
	first = int(math.Round(float64(m.scrollX) / float64(cardStride)))
	if first > pages-1 {
		first = pages - 1
	}
	if first < 0 {
		first = 0
	}
	return first, visible, pages
}

func carouselDots(pages, active int) string {
	dots := make([]string, pages)
	for i := range dots {
		if i == active {
			dots[i] = titleStyle.Render("●")
		} else {
			dots[i] = dimStyle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// layout renders the scrollable content and records where the hoverable
// areas landed. View and mouse handling share it.
func (m Model) layout() screen {
	var s screen
	add := func(l ...string) { s.lines = append(s.lines, l...) }

	add(" "+titleStyle.Render("Energy Mix Dashboard"),
		" "+dimStyle.Render("Show energy production for 3 consecutive days."),
		"")

	switch {
	case m.mix.Loading:
		add(" " + warnStyle.Render("Loading data..."))
	case m.mix.Err != "":
		s.regions = append(s.regions, region{
			card: -1, top: len(s.lines), left: 0, w: m.viewWidth(), h: 2, retry: true,
		})
		add(" "+critStyle.Render(m.mix.Err),
			" "+dimStyle.Render("Press r or click here to retry"))
	}

	first, visible, pages := m.carousel()
	s.pages, s.active = pages, first
	var blocks [][]string
	rowTop := len(s.lines)
	if m.mix.Loading || m.mix.Err != "" {
		for i := 0; i < visible; i++ {
			blocks = append(blocks, renderSkeleton())
		}
		s.skeletons = visible
	} else {
		for i := first; i < first+visible && i < len(m.cards); i++ {
			c := m.cards[i]
			blocks = append(blocks, c.render(i == m.focus))
			left := (i-first)*cardStride + boxContentX
			s.regions = append(s.regions, region{
				card: i, top: rowTop + cardChartTop, left: left,
				w: chartCols, h: chartRows, chart: true,
			})
			for j, src := range c.sources {
				s.regions = append(s.regions, region{
					card: i, top: rowTop + cardListTop + j, left: left,
					w: cardInner, h: 1, source: src.Name,
				})
			}
		}
	}
	add(joinColumns(blocks, cardOuter, cardGap)...)
	if pages > 1 {
		add(" " + carouselDots(pages, first))
	}
	add("")

	p := windowPanel{
		state:   m.window,
		hours:   m.hours,
		spinner: m.spinner.View(),
		loc:     m.loc,
		now:     m.now(),
		innerW:  panelInnerW(m.viewWidth()),
	}
	add(p.render()...)
	return s
}

func (m Model) footer() string {
	return " " + m.help.View(keys)
}

func (m Model) viewportH() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - lipgloss.Height(m.footer())
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) maxScroll() int {
	vh := m.viewportH()
	if vh == 0 {
		return 0
	}
	n := len(m.layout().lines)
	if n <= vh {
		return 0
	}
	return n - vh
}

func (m Model) View() string {
	lines := m.layout().lines
	if m.scroll > 0 && m.scroll < len(lines) {
		lines = lines[m.scroll:]
	}
	if vh := m.viewportH(); vh > 0 && len(lines) > vh {
		lines = lines[:vh]
	}
	return strings.Join(lines, "\n") + "\n" + m.footer()
}
