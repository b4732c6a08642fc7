package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"pachli/api"
	"pachli/shared"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks pachli/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartApiRequest(endpoint string) api.IFinisher
	MediatorLoad(timeline, loadType, outcome string)
	CachePruned()
	CachedStatusCount(count int)
	AccountSwitched()
	ServiceStarted()
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg               *shared.Config
	webRequestsIn     *prometheus.HistogramVec
	apiRequestsOut    *prometheus.HistogramVec
	mediatorLoads     *prometheus.CounterVec
	cachePrunes       prometheus.Counter
	cachedStatusCount prometheus.Gauge
	accountSwitches   prometheus.Counter
	serviceStarted    prometheus.Counter
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of local API requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.apiRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "mastodon_requests_out_duration",
		Help: "Duration in seconds of Mastodon API requests made.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsOut)

	res.mediatorLoads = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mediator_loads",
		Help: "Number of timeline page loads, by timeline, load type and outcome",
	}, []string{"timeline", "load_type", "outcome"})
	prometheus.Register(res.mediatorLoads)

	res.cachePrunes = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_prunes",
		Help: "Number of completed cache pruning rounds",
	})
	prometheus.Register(res.cachePrunes)

	res.cachedStatusCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cached_status_count",
		Help: "Statuses in the timeline cache, all accounts",
	})
	prometheus.Register(res.cachedStatusCount)

	res.accountSwitches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "account_switches",
		Help: "Number of successful active account switches",
	})
	prometheus.Register(res.accountSwitches)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	elapsed := time.Since(ro.start).Seconds()
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartApiRequest(endpoint string) api.IFinisher {
	return &requestObserver{endpoint, time.Now(), m.apiRequestsOut}
}

func (m *metrics) MediatorLoad(timeline, loadType, outcome string) {
	m.mediatorLoads.WithLabelValues(timeline, loadType, outcome).Add(1)
}

func (m *metrics) CachePruned() {
	m.cachePrunes.Add(1)
}

func (m *metrics) CachedStatusCount(count int) {
	m.cachedStatusCount.Set(float64(count))
}

func (m *metrics) AccountSwitched() {
	m.accountSwitches.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}
