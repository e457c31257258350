package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/keygram/keygram"
)

const (
	batchSize      = 25
	tickInterval   = 250 * time.Millisecond
	maxRecentCount = 12
)

type tickMsg time.Time

// classification pairs an input with the top-ranked term and segmentation it
// resolved to.
type classification struct {
	input string
	term  string
	seg   string
}

type model struct {
	classifier     *keygram.Classifier
	generator      *InputGenerator
	stats          keygram.ClassifierStats
	recent         []classification
	termCounts     map[string]int
	totalInputs    int
	unmatched      int
	startTime      time.Time
	lastTick       time.Time
	inputsLastTick int
	inputsPerSec   float64
	running        bool
	quitting       bool
	width          int
	height         int
}

func newModel() model {
	c, err := demoClassifier()
	if err != nil {
		panic(err)
	}

	return model{
		classifier: c,
		generator:  NewInputGenerator(time.Now().UnixNano()),
		stats:      c.Stats(),
		recent:     make([]classification, 0, maxRecentCount),
		termCounts: make(map[string]int),
		startTime:  time.Now(),
		lastTick:   time.Now(),
		running:    true,
		width:      120,
		height:     24,
	}
}

// demoClassifier builds the name/address/birthday grammar the demo streams
// inputs through.
func demoClassifier() (*keygram.Classifier, error) {
	forename := keygram.NewKeyword("FORENAME", `[A-Z][A-Za-z]*( [A-Z][A-Za-z]*)*`)
	lastname := keygram.NewKeyword("LASTNAME", `[A-Z][A-Za-z]*`)
	nickname := keygram.NewKeyword("UNDESIRABLE_NUMBER", `Undesirable No \d+`)
	housenr := keygram.NewKeyword("HOUSENR", `\d+`)
	street := keygram.NewKeyword("STREET", `[A-Z][A-Za-z]*( [A-Z][A-Za-z]*)*`)
	city := keygram.NewKeyword("CITY", `[A-Z][A-Za-z]*( [A-Z][A-Za-z]*)*`)
	isodate := keygram.NewKeyword("ISODATE", `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
		keygram.WithVerify(func(segment string) bool {
			_, err := time.Parse("2006-01-02", segment)
			return err == nil
		}))

	fullname, err := keygram.NewAnalyzer([]keygram.Slot{
		keygram.FixedSlot(forename),
		keygram.ExclusiveSlot(nickname),
		keygram.FixedSlot(lastname),
	})
	if err != nil {
		return nil, err
	}
	address, err := keygram.NewAnalyzer([]keygram.Slot{
		keygram.OptionalSlot(housenr),
		keygram.FixedSlot(street),
		keygram.FixedSlot(city),
	})
	if err != nil {
		return nil, err
	}
	birthday, err := keygram.NewAnalyzer([]keygram.Slot{
		keygram.FixedSlot(isodate),
	})
	if err != nil {
		return nil, err
	}

	return keygram.NewClassifier([]keygram.Binding{
		keygram.Bind(keygram.NewTerm("FULLNAME"), fullname),
		keygram.Bind(keygram.NewTerm("FULLADDRESS"), address),
		keygram.Bind(keygram.NewTerm("BIRTHDAY"), birthday),
	})
}

func (m model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.EnterAltScreen)
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.running = !m.running
			return m, nil
		case "r":
			return newModel(), tickCmd()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if !m.running {
			return m, tickCmd()
		}

		for _, input := range m.generator.GenerateBatch(batchSize) {
			m.totalInputs++
			result := m.classifier.Analyze(input)
			if result.IsEmpty() {
				m.unmatched++
				continue
			}
			top := result.Entries()[0]
			m.termCounts[top.Term.Name()]++
			m.addRecent(classification{
				input: input,
				term:  top.Term.Name(),
				seg:   top.Segmentations[0].String(),
			})
		}

		now := time.Now()
		if elapsed := now.Sub(m.lastTick).Seconds(); elapsed > 0 {
			m.inputsPerSec = float64(m.totalInputs-m.inputsLastTick) / elapsed
		}
		m.lastTick = now
		m.inputsLastTick = m.totalInputs

		return m, tickCmd()
	}

	return m, nil
}

func (m *model) addRecent(c classification) {
	m.recent = append([]classification{c}, m.recent...)
	if len(m.recent) > maxRecentCount {
		m.recent = m.recent[:maxRecentCount]
	}
}
