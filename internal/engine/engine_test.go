package engine

import (
	"context"
	"errors"
	"math"
	"os"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/deconflict/internal/clock"
	"github.com/danieljhkim/deconflict/internal/conflict"
	"github.com/danieljhkim/deconflict/internal/geometry"
	"github.com/danieljhkim/deconflict/internal/hash"
	"github.com/danieljhkim/deconflict/internal/mission"
	"github.com/danieljhkim/deconflict/internal/report"
	"github.com/danieljhkim/deconflict/internal/scenario"
	"github.com/danieljhkim/deconflict/internal/temporal"
)

// memReportStore is an in-memory report.Store for testing.
type memReportStore struct {
	mu      sync.Mutex
	entries map[string]*report.Entry
	saveErr error
}

func newMemReportStore() *memReportStore {
	return &memReportStore{entries: make(map[string]*report.Entry)}
}

func (m *memReportStore) Save(entry *report.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *memReportStore) Load(id string) (*report.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.entries[id]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entry, nil
}

func (m *memReportStore) List() ([]*report.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*report.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memReportStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return os.ErrNotExist
	}
	delete(m.entries, id)
	return nil
}

var testEpoch = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newTestEngine(t *testing.T) (*Engine, *memReportStore, *clock.FakeClock) {
	t.Helper()
	store := newMemReportStore()
	clk := clock.NewFakeClock(testEpoch)
	return New(store, hash.NewSHA256Hasher(), clk, nil), store, clk
}

func builtinRequest(t *testing.T, name string) *CheckRequest {
	t.Helper()
	s, err := scenario.Builtin(name)
	require.NoError(t, err)
	return &CheckRequest{
		Name:    s.Name,
		Mission: s.Mission,
		Flights: s.Flights,
		Buffer:  5,
	}
}

func TestCheck_Clear(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	result, err := eng.Check(context.Background(), builtinRequest(t, "safe"))
	require.NoError(t, err)

	assert.Equal(t, conflict.StatusClear, result.Report.Status)
	assert.Empty(t, result.Report.Records)
	assert.Len(t, result.Segments, 2)
	assert.Equal(t, conflict.ModeExact, result.Mode)
	assert.Len(t, result.Fingerprint, 64)
	assert.Nil(t, result.Entry)
}

func TestCheck_Conflict(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	result, err := eng.Check(context.Background(), builtinRequest(t, "conflict"))
	require.NoError(t, err)

	require.Equal(t, conflict.StatusConflictDetected, result.Report.Status)
	require.NotEmpty(t, result.Report.Records)
	assert.Equal(t, 0, result.Report.Records[0].PrimaryIndex)
	for _, rec := range result.Report.Records {
		assert.NotEqual(t, "drone_D_spatial_conflict_temporal_ok", rec.FlightID,
			"a flight that is only spatially close must not be reported")
	}
}

func TestCheck_NoTravel(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	req := builtinRequest(t, "conflict")
	req.Mission.Waypoints = req.Mission.Waypoints[:1]

	result, err := eng.Check(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, conflict.StatusClear, result.Report.Status)
	assert.Equal(t, conflict.ReasonNoTravel, result.Report.Reason)
	assert.Empty(t, result.Segments)
}

func TestCheck_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*CheckRequest)
		inner  error
	}{
		{
			name:   "negative buffer",
			modify: func(r *CheckRequest) { r.Buffer = -1 },
		},
		{
			name:   "NaN buffer",
			modify: func(r *CheckRequest) { r.Buffer = math.NaN() },
		},
		{
			name:   "reversed mission window",
			modify: func(r *CheckRequest) { r.Mission.Window = temporal.Window{Start: 100, End: 0} },
			inner:  mission.ErrInvalidMission,
		},
		{
			name: "reversed flight segment window",
			modify: func(r *CheckRequest) {
				seg := mission.Segment{
					Line:   geometry.NewLine(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(1, 1)),
					Window: temporal.Window{Start: 9, End: 3},
				}
				r.Flights = append(r.Flights, mission.Flight{ID: "bad", Segments: []mission.Segment{seg}})
			},
			inner: mission.ErrInvalidFlight,
		},
		{
			name: "duplicate flight id",
			modify: func(r *CheckRequest) {
				r.Flights = append(r.Flights, mission.Flight{ID: r.Flights[0].ID})
			},
			inner: mission.ErrDuplicateFlight,
		},
		{
			name:   "unknown mode",
			modify: func(r *CheckRequest) { r.Mode = "fuzzy" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, store, _ := newTestEngine(t)
			req := builtinRequest(t, "conflict")
			req.Save = true
			tt.modify(req)

			result, err := eng.Check(context.Background(), req)
			assert.Nil(t, result, "no partial report on invalid input")
			assert.True(t, errors.Is(err, ErrValidation), "got %v", err)
			if tt.inner != nil {
				assert.True(t, errors.Is(err, tt.inner), "got %v", err)
			}
			assert.Empty(t, store.entries)
		})
	}
}

func TestCheck_Idempotent(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	req := builtinRequest(t, "conflict")

	first, err := eng.Check(context.Background(), req)
	require.NoError(t, err)
	second, err := eng.Check(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Report, second.Report)
	assert.Equal(t, first.Fingerprint, second.Fingerprint)
}

func TestCheck_ParallelMatchesSequential(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	req := builtinRequest(t, "conflict")

	seq, err := eng.Check(context.Background(), req)
	require.NoError(t, err)

	req.Workers = 8
	par, err := eng.Check(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, seq.Report, par.Report)
}

func TestCheck_ParametersChangeFingerprint(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	req := builtinRequest(t, "conflict")

	base, err := eng.Check(context.Background(), req)
	require.NoError(t, err)

	req.Buffer = 1
	tighter, err := eng.Check(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint, tighter.Fingerprint)

	req.Buffer = 5
	req.Mode = conflict.ModeLegacy
	legacy, err := eng.Check(context.Background(), req)
	require.NoError(t, err)
	assert.NotEqual(t, base.Fingerprint, legacy.Fingerprint)
	assert.Equal(t, conflict.ModeLegacy, legacy.Mode)
}

func TestCheck_ZeroBufferIsClear(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	req := builtinRequest(t, "conflict")
	req.Buffer = 0

	result, err := eng.Check(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, conflict.StatusClear, result.Report.Status)
}

func TestCheck_SaveAndReports(t *testing.T) {
	eng, store, clk := newTestEngine(t)
	clk.SetStep(10 * time.Millisecond)
	ctx := context.Background()

	req := builtinRequest(t, "conflict")
	req.Save = true

	result, err := eng.Check(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, result.Entry)
	assert.Equal(t, 10*time.Millisecond, result.Elapsed)
	assert.Equal(t, report.NewID(testEpoch, result.Fingerprint), result.Entry.ID)
	assert.Equal(t, "conflict", result.Entry.Scenario)
	assert.Equal(t, result.Report, result.Entry.Report)
	assert.Contains(t, store.entries, result.Entry.ID)

	list, err := eng.ListReports(ctx)
	require.NoError(t, err)
	require.Len(t, list.Reports, 1)
	summary := list.Reports[0]
	assert.Equal(t, result.Entry.ID, summary.ID)
	assert.Equal(t, conflict.StatusConflictDetected, summary.Status)
	assert.Equal(t, len(result.Report.Records), summary.Conflicts)

	shown, err := eng.ShowReport(ctx, summary.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Entry, shown)

	require.NoError(t, eng.DeleteReport(ctx, summary.ID))

	_, err = eng.ShowReport(ctx, summary.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(eng.DeleteReport(ctx, summary.ID), ErrNotFound))
}

func TestCheck_SaveFailure(t *testing.T) {
	eng, store, _ := newTestEngine(t)
	store.saveErr = errors.New("disk full")

	req := builtinRequest(t, "safe")
	req.Save = true

	_, err := eng.Check(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestCheck_Cancelled(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	req := builtinRequest(t, "conflict")
	req.Workers = 4

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := eng.Check(ctx, req)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDiscretize(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	s, err := scenario.Builtin("conflict")
	require.NoError(t, err)

	result, err := eng.Discretize(context.Background(), &DiscretizeRequest{Mission: s.Mission})
	require.NoError(t, err)
	require.Len(t, result.Segments, 2)
	assert.Equal(t, temporal.Window{Start: 50, End: 100}, result.Segments[1].Window)
	assert.Empty(t, result.Reason)

	result, err = eng.Discretize(context.Background(), &DiscretizeRequest{Mission: mission.Mission{Window: temporal.Window{Start: 0, End: 1}}})
	require.NoError(t, err)
	assert.Empty(t, result.Segments)
	assert.Equal(t, conflict.ReasonNoTravel, result.Reason)

	_, err = eng.Discretize(context.Background(), &DiscretizeRequest{Mission: mission.Mission{Window: temporal.Window{Start: 1, End: 0}}})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCheck_SaveSameInstant(t *testing.T) {
	eng, store, clk := newTestEngine(t)
	ctx := context.Background()

	req := builtinRequest(t, "safe")
	req.Save = true

	first, err := eng.Check(ctx, req)
	require.NoError(t, err)
	second, err := eng.Check(ctx, req)
	require.NoError(t, err)

	base := report.NewID(testEpoch, first.Fingerprint)
	assert.Equal(t, base, first.Entry.ID)
	assert.Equal(t, base+"-2", second.Entry.ID)
	assert.Len(t, store.entries, 2)

	clk.Advance(time.Second)
	third, err := eng.Check(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, report.NewID(testEpoch.Add(time.Second), first.Fingerprint), third.Entry.ID)
	assert.Len(t, store.entries, 3)
}
