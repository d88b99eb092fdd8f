package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/WinandMe/UmaRacingProject-sub000/internal/race"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Dt          float64   `json:"dt"`
	Distance    float64   `json:"distance"`
	RaceType    string    `json:"race_type"`
	Surface     string    `json:"surface"`
	Competitors []string  `json:"competitors"`
	Winner      string    `json:"winner"`
	WinnerTime  float64   `json:"winner_time"`
	Finishers   int       `json:"finishers"`
	DNFs        int       `json:"dnfs"`
	Ticks       int       `json:"ticks"`
}

// Recorder is an engine observer that accumulates the tick series a
// saved run needs: one row per tick with every competitor's distance
// and stamina in registration order.
type Recorder struct {
	names []string
	Times []float64
	Rows  [][]float64
}

func NewRecorder(profiles []race.Profile) *Recorder {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return &Recorder{names: names}
}

func (r *Recorder) OnTick(tr race.TickResult) {
	row := make([]float64, 2*len(r.names))
	for _, pos := range tr.Positions {
		row[2*pos.ID] = pos.Distance
		row[2*pos.ID+1] = pos.Stamina
	}
	r.Times = append(r.Times, tr.Time)
	r.Rows = append(r.Rows, row)
}

func (s *Store) Save(cfg race.RaceConfig, profiles []race.Profile, seed int64, dt float64, rec *Recorder, result race.Result) (string, error) {
	runID := fmt.Sprintf("race_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Seed:        seed,
		Dt:          dt,
		Distance:    cfg.Distance,
		RaceType:    cfg.Type.String(),
		Surface:     cfg.Surface.String(),
		Competitors: names,
		Finishers:   len(result.Finishers),
		DNFs:        len(result.DNFs),
		Ticks:       result.Ticks,
	}
	if len(result.Finishers) > 0 {
		meta.Winner = result.Finishers[0].Name
		meta.WinnerTime = result.Finishers[0].FinishTime
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := writeTicks(filepath.Join(runDir, "ticks.csv"), names, rec); err != nil {
		return "", err
	}
	if err := writeEvents(filepath.Join(runDir, "events.csv"), names, result.Events); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTicks(path string, names []string, rec *Recorder) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"time"}
	for _, name := range names {
		header = append(header, name+"_distance", name+"_stamina")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, row := range rec.Rows {
		record := []string{strconv.FormatFloat(rec.Times[i], 'f', 6, 64)}
		for _, val := range row {
			record = append(record, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func writeEvents(path string, names []string, events []race.Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"time", "tick", "competitor", "kind", "detail"}); err != nil {
		return err
	}
	for _, ev := range events {
		detail := ""
		switch ev.Kind {
		case race.EventIncident:
			detail = ev.Incident
		case race.EventDNF:
			detail = ev.Reason
		case race.EventOvertake:
			if ev.Passed >= 0 && ev.Passed < len(names) {
				detail = "passed " + names[ev.Passed]
			}
		}
		name := ""
		if ev.ID >= 0 && ev.ID < len(names) {
			name = names[ev.ID]
		}
		record := []string{
			strconv.FormatFloat(ev.Time, 'f', 3, 64),
			strconv.Itoa(ev.Tick),
			name,
			ev.Kind.String(),
			detail,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadTicks reads a run's tick series back: the value column headers,
// the tick times, and one row of values per tick.
func (s *Store) LoadTicks(runID string) ([]string, []float64, [][]float64, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "ticks.csv"))
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(records) < 1 {
		return nil, nil, nil, fmt.Errorf("run %s has no tick data", runID)
	}

	header := records[0][1:]
	times := make([]float64, 0, len(records)-1)
	rows := make([][]float64, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		row := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		times = append(times, t)
		rows = append(rows, row)
	}
	return header, times, rows, nil
}

// ExportJSONStdout writes a run's metadata to stdout, indented.
func ExportJSONStdout(meta *RunMetadata) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

type StoredEvent struct {
	Time       float64
	Tick       int
	Competitor string
	Kind       string
	Detail     string
}

func (s *Store) LoadEvents(runID string) ([]StoredEvent, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "events.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	events := make([]StoredEvent, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 5 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		tick, _ := strconv.Atoi(record[1])
		events = append(events, StoredEvent{
			Time:       t,
			Tick:       tick,
			Competitor: record[2],
			Kind:       record[3],
			Detail:     record[4],
		})
	}
	return events, nil
}
