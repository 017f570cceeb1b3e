package evaluation

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brocs/builder"
	"github.com/katalvlaran/brocs/coloring"
	"github.com/katalvlaran/brocs/core"
)

// stalled blocks every ColorGraph call until release is closed.
type stalled struct {
	started chan struct{}
	release chan struct{}
}

func (s *stalled) ColorGraph(g *core.Graph) (coloring.Coloring, error) {
	close(s.started)
	<-s.release

	return make(coloring.Coloring, g.VertexCount()), nil
}

func TestEvaluate_DeadlineAbandonsColorer(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewMetrics(reg)
	require.NoError(t, err)
	var logs bytes.Buffer
	ev := New(
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithMetrics(metrics),
		WithTimeout(20*time.Millisecond),
	)

	col := &stalled{started: make(chan struct{}), release: make(chan struct{})}
	t.Cleanup(func() { close(col.release) })
	ev.newColorer = func(string, ...coloring.Option) (coloring.Colorer, error) { return col, nil }

	g, err := builder.BuildGraph(nil, builder.ConnectedCaveman(6, 6))
	require.NoError(t, err)

	_, err = ev.Evaluate(context.Background(), "cavemen", g, coloring.AlgorithmBrooks)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-col.started:
	case <-time.After(time.Second):
		t.Fatal("colorer never started")
	}
	require.Contains(t, logs.String(), "evaluation abandoned")
	require.Equal(t, 1.0, testutil.ToFloat64(metrics.Failed.WithLabelValues(coloring.AlgorithmBrooks)))
	require.Equal(t, 0.0, testutil.ToFloat64(metrics.Runs.WithLabelValues(coloring.AlgorithmBrooks)))
}
