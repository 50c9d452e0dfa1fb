// Package tui provides the Bubble Tea prayer-time board.
package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/sholat/internal/aladhan"
	"github.com/verte-zerg/sholat/internal/clock"
	"github.com/verte-zerg/sholat/internal/model"
	"github.com/verte-zerg/sholat/internal/prayer"
)

var errNoFetcher = errors.New("no data source configured")

const (
	clockInterval = time.Second
	nextInterval  = time.Minute
)

// Fetcher loads the timings for one day.
type Fetcher interface {
	Timings(ctx context.Context, q aladhan.Query) (model.Day, error)
}

// Archive records successfully fetched days.
type Archive interface {
	InsertDay(ctx context.Context, day model.ArchivedDay) (int64, error)
}

// Options configures a Model.
type Options struct {
	Config   model.Config
	Location *time.Location
	Fetcher  Fetcher
	Archive  Archive
	Logger   zerolog.Logger
	Now      func() time.Time
}

type dayFetchedMsg struct {
	gen int
	day model.Day
	err error
}

type dayArchivedMsg struct {
	id  int64
	err error
}

type clockTickMsg time.Time

type nextTickMsg time.Time

// Model implements the Bubble Tea prayer board.
type Model struct {
	config  model.Config
	loc     *time.Location
	fetcher Fetcher
	archive Archive
	log     zerolog.Logger
	now     func() time.Time

	width  int
	height int

	current time.Time

	day      *model.Day
	loading  bool
	errMsg   string
	fetchGen int
	cancel   context.CancelFunc

	next     int
	expanded string
	cursor   int

	spinner spinner.Model
	keys    keyMap
	help    help.Model
}

// NewModel constructs a prayer board model.
func NewModel(opts Options) *Model {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle
	m := &Model{
		config:  opts.Config,
		loc:     loc,
		fetcher: opts.Fetcher,
		archive: opts.Archive,
		log:     opts.Logger,
		now:     now,
		current: now(),
		next:    prayer.NoNext,
		spinner: sp,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.startFetch(), m.spinner.Tick, clockTick(), nextTick())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case dayFetchedMsg:
		return m, m.handleFetched(msg)
	case dayArchivedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("failed to archive day")
		} else {
			m.log.Debug().Int64("id", msg.id).Msg("archived day")
		}
		return m, nil
	case clockTickMsg:
		m.current = time.Time(msg)
		return m, clockTick()
	case nextTickMsg:
		m.recomputeNext()
		return m, nextTick()
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopFetch()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		entries := m.entries()
		if m.cursor >= 0 && m.cursor < len(entries) {
			m.toggle(entries[m.cursor].Name)
		}
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	idx := m.rowAt(msg.Y)
	if idx < 0 {
		return m, nil
	}
	m.cursor = idx
	m.toggle(m.entries()[idx].Name)
	return m, nil
}

// toggle is the single expand/collapse transition shared by keyboard and
// mouse activation.
func (m *Model) toggle(name string) {
	if m.expanded == name {
		m.expanded = ""
		return
	}
	m.expanded = name
}

func (m *Model) moveCursor(delta int) {
	n := len(m.entries())
	if n == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// entries derives the display list from the current day on every call.
func (m *Model) entries() []model.Prayer {
	return prayer.Entries(m.day)
}

func (m *Model) recomputeNext() {
	m.next = prayer.NextIndex(m.entries(), clock.MinuteOfDay(m.now(), m.loc))
}

func (m *Model) startFetch() tea.Cmd {
	m.stopFetch()
	m.fetchGen++
	gen := m.fetchGen
	m.loading = true
	m.errMsg = ""
	if m.fetcher == nil {
		m.loading = false
		m.errMsg = fetchErrorText(errNoFetcher)
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	fetcher := m.fetcher
	q := aladhan.Query{
		City:    m.config.City,
		Country: m.config.Country,
		Method:  m.config.Method,
		Date:    m.now().In(m.loc),
	}
	m.log.Info().Int("gen", gen).Str("city", q.City).Str("country", q.Country).Msg("fetching timings")
	return func() tea.Msg {
		defer cancel()
		day, err := fetcher.Timings(ctx, q)
		return dayFetchedMsg{gen: gen, day: day, err: err}
	}
}

func (m *Model) stopFetch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

func (m *Model) handleFetched(msg dayFetchedMsg) tea.Cmd {
	if msg.gen != m.fetchGen {
		m.log.Debug().Int("gen", msg.gen).Int("current", m.fetchGen).Msg("discarding stale fetch result")
		return nil
	}
	m.cancel = nil
	m.loading = false
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("failed to fetch timings")
		m.errMsg = fetchErrorText(msg.err)
		return nil
	}
	day := msg.day
	m.day = &day
	m.recomputeNext()
	m.log.Info().Str("date", day.Date.Readable).Int("next", m.next).Msg("timings loaded")
	return m.archiveCmd(day)
}

func (m *Model) archiveCmd(day model.Day) tea.Cmd {
	if m.archive == nil {
		return nil
	}
	archive := m.archive
	entry := model.ArchivedDay{
		FetchedAt: m.now(),
		City:      m.config.City,
		Country:   m.config.Country,
		Day:       day,
	}
	return func() tea.Msg {
		id, err := archive.InsertDay(context.Background(), entry)
		return dayArchivedMsg{id: id, err: err}
	}
}

func fetchErrorText(err error) string {
	return "Failed to load prayer times: " + err.Error()
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func nextTick() tea.Cmd {
	return tea.Tick(nextInterval, func(t time.Time) tea.Msg {
		return nextTickMsg(t)
	})
}
