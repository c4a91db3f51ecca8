package solver

import (
	"sync/atomic"
	"time"
)

type Metrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Lookups    int64 // calls to Solve, including recursive ones
	Hits       int64
	Primitives int64
	Expansions int64 // non-primitive positions aggregated from their children
}

type Collector interface {
	Start()
	AddLookup()
	AddHit()
	AddPrimitive()
	AddExpansion()
	Complete() Metrics
}

type collector struct {
	startTime  time.Time
	duration   time.Duration
	lookups    atomic.Int64
	hits       atomic.Int64
	primitives atomic.Int64
	expansions atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
}

func (m *collector) AddLookup() {
	m.lookups.Add(1)
}

func (m *collector) AddHit() {
	m.hits.Add(1)
}

func (m *collector) AddPrimitive() {
	m.primitives.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) Complete() Metrics {
	m.duration += time.Since(m.startTime)
	return m.snapshot()
}

func (m *collector) snapshot() Metrics {
	return Metrics{
		StartTime:  m.startTime,
		Duration:   m.duration,
		Lookups:    m.lookups.Load(),
		Hits:       m.hits.Load(),
		Primitives: m.primitives.Load(),
		Expansions: m.expansions.Load(),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (m *noCollector) Start()            {}
func (m *noCollector) AddLookup()        {}
func (m *noCollector) AddHit()           {}
func (m *noCollector) AddPrimitive()     {}
func (m *noCollector) AddExpansion()     {}
func (m *noCollector) Complete() Metrics { return Metrics{} }
