package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"minimax/searcher"
)

// Collector counts search work in process-wide Prometheus metrics while also
// keeping the per-search counters the searcher reports back.
type Collector struct {
	search   searcher.MetricsCollector
	searches prometheus.Counter
	nodes    prometheus.Counter
	leaves   prometheus.Counter
	cutoffs  prometheus.Counter
	duration prometheus.Histogram
}

// NewCollector registers the search metrics on reg under the given game label.
func NewCollector(reg prometheus.Registerer, game string) *Collector {
	labels := prometheus.Labels{"game": game}
	c := &Collector{
		search: searcher.NewMetricsCollector(),
		searches: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "minimax_searches_total",
			Help:        "Completed alpha-beta searches",
			ConstLabels: labels,
		}),
		nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "minimax_search_nodes_total",
			Help:        "Nodes entered by alpha-beta searches",
			ConstLabels: labels,
		}),
		leaves: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "minimax_search_leaves_total",
			Help:        "Terminal nodes reached by alpha-beta searches",
			ConstLabels: labels,
		}),
		cutoffs: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "minimax_search_cutoffs_total",
			Help:        "Sibling loops stopped early by alpha-beta pruning",
			ConstLabels: labels,
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "minimax_search_duration_seconds",
			Help:        "Wall time of alpha-beta searches",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
	reg.MustRegister(c.searches, c.nodes, c.leaves, c.cutoffs, c.duration)
	return c
}

func (c *Collector) Start() {
	c.search.Start()
}

func (c *Collector) AddNode() {
	c.search.AddNode()
	c.nodes.Inc()
}

func (c *Collector) AddLeaf() {
	c.search.AddLeaf()
	c.leaves.Inc()
}

func (c *Collector) AddCutoff() {
	c.search.AddCutoff()
	c.cutoffs.Inc()
}

func (c *Collector) Complete() searcher.SearchMetrics {
	m := c.search.Complete()
	c.searches.Inc()
	c.duration.Observe(m.Duration.Seconds())
	return m
}
