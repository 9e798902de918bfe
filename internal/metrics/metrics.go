package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Gauge interface {
	Set(value float64)
}

type Counters struct {
	LogsRecorded Counter
	LogsEvicted  Counter

	HttpRequests Counter

	BufferSize Gauge
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := newPrometheusCounter(name, help, labels)
	prometheus.MustRegister(c.counter)
	return c
}

func newPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	return &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

type PrometheusGauge struct {
	gauge prometheus.Gauge
}

func NewPrometheusGauge(name, help string) *PrometheusGauge {
	g := newPrometheusGauge(name, help)
	prometheus.MustRegister(g.gauge)
	return g
}

func newPrometheusGauge(name, help string) *PrometheusGauge {
	return &PrometheusGauge{
		gauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: help,
		}),
	}
}

func (p *PrometheusGauge) Set(value float64) {
	p.gauge.Set(value)
}

const (
	logsRecordedName = "logs_recorded_total"
	logsRecordedHelp = "Number of log entries recorded into the buffer, including captured app logs"
	logsEvictedName  = "logs_evicted_total"
	logsEvictedHelp  = "Number of log entries evicted from the buffer by the size cap"
	httpRequestsName = "http_requests_total"
	httpRequestsHelp = "Number of API requests"
	bufferSizeName   = "log_buffer_size"
	bufferSizeHelp   = "Current number of entries held in the buffer"
)

func New() *Counters {
	return &Counters{
		LogsRecorded: NewPrometheusCounter(logsRecordedName, logsRecordedHelp, []string{"level"}),
		LogsEvicted:  NewPrometheusCounter(logsEvictedName, logsEvictedHelp, nil),
		HttpRequests: NewPrometheusCounter(httpRequestsName, httpRequestsHelp, []string{"method", "status"}),
		BufferSize:   NewPrometheusGauge(bufferSizeName, bufferSizeHelp),
	}
}

// NewTestCounters registers on a private registry so tests can build counters repeatedly.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	logsRecorded := newPrometheusCounter(logsRecordedName, logsRecordedHelp, []string{"level"})
	logsEvicted := newPrometheusCounter(logsEvictedName, logsEvictedHelp, nil)
	httpRequests := newPrometheusCounter(httpRequestsName, httpRequestsHelp, []string{"method", "status"})
	bufferSize := newPrometheusGauge(bufferSizeName, bufferSizeHelp)

	reg.MustRegister(logsRecorded.counter)
	reg.MustRegister(logsEvicted.counter)
	reg.MustRegister(httpRequests.counter)
	reg.MustRegister(bufferSize.gauge)

	return &Counters{
		LogsRecorded: logsRecorded,
		LogsEvicted:  logsEvicted,
		HttpRequests: httpRequests,
		BufferSize:   bufferSize,
	}
}
