package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
	"github.com/WinandMe/UmaRacingProject-sub000/internal/report"
)

const (
	trackWidth = 60
	eventLog   = 10
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	finishStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	dnfStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	incidentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	duelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

var laneColors = []string{
	"205", "81", "114", "215", "141", "137", "211", "80", "104", "79", "167", "75",
}

type TickMsg time.Time

// Model drives a race live: each frame advances the engine one or
// more logical ticks depending on the playback speed.
type Model struct {
	cfg      race.RaceConfig
	profiles []race.Profile
	params   race.Params
	seed     int64
	dt       float64

	eng     *race.Engine
	last    race.TickResult
	running bool
	speed   int
	log     []string
	err     error
}

func NewModel(cfg race.RaceConfig, profiles []race.Profile, params race.Params, seed int64, dt float64) (Model, error) {
	m := Model{
		cfg:      cfg,
		profiles: profiles,
		params:   params,
		seed:     seed,
		dt:       dt,
		running:  true,
		speed:    1,
	}
	eng, err := race.New(cfg, profiles, params, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Model{}, err
	}
	m.eng = eng
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/20, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+", "=":
			if m.speed < 16 {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "r":
			eng, err := race.New(m.cfg, m.profiles, m.params, rand.New(rand.NewSource(m.seed)))
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.eng = eng
			m.last = race.TickResult{}
			m.log = nil
			m.running = true
		}
	case TickMsg:
		if m.running && !m.eng.Done() {
			for i := 0; i < m.speed && !m.eng.Done(); i++ {
				m.last = m.eng.Step(m.dt)
				m.logEvents(m.last.Events)
			}
		}
		return m, tea.Tick(time.Second/20, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) logEvents(events []race.Event) {
	for _, ev := range events {
		if ev.Kind == race.EventStart || ev.Kind == race.EventOvertake {
			continue
		}
		name := m.profiles[ev.ID].Name
		var line string
		switch ev.Kind {
		case race.EventIncident:
			line = incidentStyle.Render(fmt.Sprintf("[%5.1fs] %s hits trouble: %s", ev.Time, name, ev.Incident))
		case race.EventDuel:
			line = duelStyle.Render(fmt.Sprintf("[%5.1fs] %s kicks off a duel!", ev.Time, name))
		case race.EventDNF:
			line = dnfStyle.Render(fmt.Sprintf("[%5.1fs] %s retires: %s", ev.Time, name, ev.Reason))
		case race.EventFinish:
			line = finishStyle.Render(fmt.Sprintf("[%5.1fs] %s crosses the line", ev.Time, name))
		}
		m.log = append(m.log, line)
		if len(m.log) > eventLog {
			m.log = m.log[1:]
		}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s %.0fm", m.cfg.Type, m.cfg.Surface, m.cfg.Distance)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("   t=%.1fs  tick %d  speed %dx", m.eng.Time(), m.eng.Tick(), m.speed)))
	b.WriteString("\n\n")

	for _, pos := range m.positions() {
		b.WriteString(m.lane(pos))
		b.WriteString("\n")
	}

	if len(m.log) > 0 {
		b.WriteString("\n")
		for _, line := range m.log {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.eng.Done() {
		b.WriteString("\n")
		for _, line := range report.Generate(m.cfg, m.eng.Results()) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("space pause  +/- speed  r restart  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) positions() []race.Position {
	if m.last.Positions != nil {
		return m.last.Positions
	}
	// Before the first tick, show the field at the gate.
	positions := make([]race.Position, len(m.profiles))
	for i, p := range m.profiles {
		positions[i] = race.Position{ID: i, Name: p.Name, Stamina: 100}
	}
	return positions
}

func (m Model) lane(pos race.Position) string {
	filled := int(pos.Distance / m.cfg.Distance * float64(trackWidth))
	if filled > trackWidth {
		filled = trackWidth
	}

	color := laneColors[pos.ID%len(laneColors)]
	runner := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("▶")
	track := strings.Repeat("═", filled) + runner + strings.Repeat("─", trackWidth-filled)

	status := fmt.Sprintf("%5.1f%%", pos.Stamina)
	switch {
	case pos.DNF:
		status = dnfStyle.Render("DNF")
	case pos.Finished:
		status = finishStyle.Render("FIN")
	case pos.Incident != "":
		status = incidentStyle.Render(pos.Incident)
	}

	return fmt.Sprintf("%-12s %s| %s", pos.Name, track, status)
}

// Err reports a restart failure, inspectable after the program exits.
func (m Model) Err() error { return m.err }
