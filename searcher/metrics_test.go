package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetricsCollector(t *testing.T) {
	t.Run("counting a search", func(t *testing.T) {
		collector := NewMetricsCollector()
		collector.Start()
		collector.AddNode()
		collector.AddNode()
		collector.AddLeaf()
		collector.AddCutoff()

		got := collector.Complete()

		require.Equal(t, int64(2), got.Nodes)
		require.Equal(t, int64(1), got.Leaves)
		require.Equal(t, int64(1), got.Cutoffs)
		require.False(t, got.StartTime.IsZero(), "Start time should be recorded")
	})

	t.Run("restarting resets the counters", func(t *testing.T) {
		collector := NewMetricsCollector()
		collector.Start()
		collector.AddNode()
		collector.Start()

		require.Equal(t, int64(0), collector.Complete().Nodes)
	})

	t.Run("no-op collector reports nothing", func(t *testing.T) {
		collector := NewNoMetricsCollector()
		collector.Start()
		collector.AddNode()

		require.Equal(t, SearchMetrics{}, collector.Complete())
	})
}
