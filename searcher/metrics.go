package searcher

import "time"

type Metrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Queries    int64
	CacheHits  int64
	Discovered int64
	Evaluated  int64
}

type MetricsCollector interface {
	Start()
	AddQuery()
	AddCacheHit()
	AddDiscovered()
	AddEvaluated()
	Complete() Metrics
}

// The analyzer is single-threaded, so the counters are plain integers.
type metricsCollector struct {
	startTime  time.Time
	queries    int64
	cacheHits  int64
	discovered int64
	evaluated  int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	if m.startTime.IsZero() {
		m.startTime = time.Now()
	}
}

func (m *metricsCollector) AddQuery() {
	m.queries++
}

func (m *metricsCollector) AddCacheHit() {
	m.cacheHits++
}

func (m *metricsCollector) AddDiscovered() {
	m.discovered++
}

func (m *metricsCollector) AddEvaluated() {
	m.evaluated++
}

func (m *metricsCollector) Complete() Metrics {
	var duration time.Duration
	if !m.startTime.IsZero() {
		duration = time.Since(m.startTime)
	}
	return Metrics{
		StartTime:  m.startTime,
		Duration:   duration,
		Queries:    m.queries,
		CacheHits:  m.cacheHits,
		Discovered: m.discovered,
		Evaluated:  m.evaluated,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()            {}
func (m *noMetricsCollector) AddQuery()         {}
func (m *noMetricsCollector) AddCacheHit()      {}
func (m *noMetricsCollector) AddDiscovered()    {}
func (m *noMetricsCollector) AddEvaluated()     {}
func (m *noMetricsCollector) Complete() Metrics { return Metrics{} }
