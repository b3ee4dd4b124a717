// Package session holds per-session analysis state: the frame triple
// (raw, clean, filtered), the active filter parameters, and the registry of
// rendered charts.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/YuminosukeSato/siftgo/filter"
	"github.com/YuminosukeSato/siftgo/frame"
	"github.com/YuminosukeSato/siftgo/pkg/errors"
	"github.com/YuminosukeSato/siftgo/pkg/log"
)

// Store is the typed session state. The three frames are related by one-way
// derivation: raw is the upload as received, clean is raw after cleaning
// operations, and filtered is the current view of clean. Filtering never
// touches clean; ApplyFilters always works on a copy. All methods are safe
// for concurrent use.
type Store struct {
	mu sync.RWMutex

	id       string
	raw      *frame.Frame
	clean    *frame.Frame
	filtered *frame.Frame
	params   *filter.Params
	charts   []string

	logger log.Logger
}

// New creates an empty store with a fresh session ID. The ID is bound into
// the store's logger, so every line from this session carries it.
func New() *Store {
	id := uuid.NewString()
	return &Store{
		id:     id,
		params: filter.NewParams(),
		logger: log.GetLoggerWithName("session").With(log.SessionIDKey, id),
	}
}

// ID returns the session identifier.
func (s *Store) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// SetRaw installs an uploaded frame and derives clean and filtered copies
// from it. Filter parameters are cleared since they were keyed to the
// previous dataset's columns; registered charts are kept.
func (s *Store) SetRaw(f *frame.Frame) error {
	if f == nil {
		return errors.ErrEmptyFrame
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw = f
	s.clean = f.Copy()
	s.filtered = f.Copy()
	s.params = filter.NewParams()

	s.logger.Info("dataset loaded",
		log.RowsKey, f.NumRows(),
		log.ColumnsKey, f.NumCols())
	return nil
}

// SetClean replaces the cleaned frame and re-derives the filtered view from
// it. The raw frame is left as uploaded.
func (s *Store) SetClean(f *frame.Frame) error {
	if f == nil {
		return errors.ErrEmptyFrame
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clean = f
	s.filtered = f.Copy()
	return nil
}

// Raw returns the frame as uploaded, or nil before any upload. Callers must
// treat it as read-only.
func (s *Store) Raw() *frame.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

// Clean returns the cleaned frame, or nil before any upload. Callers must
// treat it as read-only.
func (s *Store) Clean() *frame.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clean
}

// Filtered returns the current filtered view, or nil before any upload.
// Callers must treat it as read-only.
func (s *Store) Filtered() *frame.Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filtered
}

// SetParams validates p and stores a copy of it. The stored parameters take
// effect on the next ApplyFilters call.
func (s *Store) SetParams(p *filter.Params) error {
	if p == nil {
		return errors.NewValueError("session.SetParams", "nil params")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = p.Clone()
	return nil
}

// Params returns a copy of the current filter parameters. Mutating it has no
// effect until it is handed back through SetParams.
func (s *Store) Params() *filter.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params.Clone()
}

// ApplyFilters runs the current parameter set over the cleaned frame and
// stores the surviving rows as the filtered view. Filter failures fall open
// and come back as warnings on the result; the call itself only fails when
// no dataset is loaded.
func (s *Store) ApplyFilters() (*filter.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clean == nil {
		return nil, errors.ErrEmptyFrame
	}

	res := filter.FromParams(s.params).WithLogger(s.logger).Run(s.clean)
	s.filtered = res.Frame

	s.logger.Debug("session view updated",
		log.RowsKey, res.Frame.NumRows(),
		log.WarningsKey, len(res.Warnings))
	return res, nil
}

// ResetFilters clears the parameters and restores the filtered view to a
// copy of the cleaned frame.
func (s *Store) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = filter.NewParams()
	if s.clean != nil {
		s.filtered = s.clean.Copy()
	}
}

// Summary reports the filtered row count against the cleaned total.
func (s *Store) Summary() filter.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.clean == nil {
		return filter.Summary{}
	}
	return filter.Summarize(s.filtered.NumRows(), s.clean.NumRows())
}

// RegisterChart records the path of a rendered chart.
func (s *Store) RegisterChart(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charts = append(s.charts, path)
}

// Charts returns the registered chart paths in registration order.
func (s *Store) Charts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.charts...)
}

// ClearCharts empties the chart registry.
func (s *Store) ClearCharts() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.charts = nil
}

// Snapshot is a point-in-time view of the store for display and debugging.
type Snapshot struct {
	ID            string
	RawRows       int
	CleanRows     int
	FilteredRows  int
	Cols          int
	ActiveFilters int
	Charts        []string
}

// Snapshot returns the current state without exposing the frames themselves.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		ID:            s.id,
		ActiveFilters: s.params.Active(),
		Charts:        append([]string(nil), s.charts...),
	}
	if s.raw != nil {
		snap.RawRows = s.raw.NumRows()
	}
	if s.clean != nil {
		snap.CleanRows = s.clean.NumRows()
		snap.Cols = s.clean.NumCols()
	}
	if s.filtered != nil {
		snap.FilteredRows = s.filtered.NumRows()
	}
	return snap
}
