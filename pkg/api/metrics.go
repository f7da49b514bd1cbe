package api

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/psaab/refswitch/pkg/core"
)

// switchCollector implements prometheus.Collector, reading the switch
// counters on each scrape.
type switchCollector struct {
	sw *core.Switch

	// Global counters
	receivedTotal      *prometheus.Desc
	parseRejectsTotal  *prometheus.Desc
	dropsTotal         *prometheus.Desc
	disabledDropsTotal *prometheus.Desc
	transmittedTotal   *prometheus.Desc
	sendErrorsTotal    *prometheus.Desc
	enabled            *prometheus.Desc

	// Table counters
	tablePacketsTotal *prometheus.Desc
	tableBytesTotal   *prometheus.Desc
	tableHitsTotal    *prometheus.Desc
	tableMissesTotal  *prometheus.Desc
	tableEntries      *prometheus.Desc

	// Traffic manager counters
	tmEnqueuedTotal   *prometheus.Desc
	tmDequeuedTotal   *prometheus.Desc
	tmDroppedTotal    *prometheus.Desc
	tmReplicatedTotal *prometheus.Desc
	tmDepth           *prometheus.Desc
}

func newCollector(sw *core.Switch) *switchCollector {
	return &switchCollector{
		sw: sw,

		receivedTotal: prometheus.NewDesc(
			"refswitch_received_total",
			"Total frames received on all ports.",
			nil, nil,
		),
		parseRejectsTotal: prometheus.NewDesc(
			"refswitch_parse_rejects_total",
			"Total frames rejected by the parser.",
			nil, nil,
		),
		dropsTotal: prometheus.NewDesc(
			"refswitch_drops_total",
			"Total packets dropped in the processing path.",
			nil, nil,
		),
		disabledDropsTotal: prometheus.NewDesc(
			"refswitch_disabled_drops_total",
			"Total frames discarded while the ingress gate was closed.",
			nil, nil,
		),
		transmittedTotal: prometheus.NewDesc(
			"refswitch_transmitted_total",
			"Total frames transmitted.",
			nil, nil,
		),
		sendErrorsTotal: prometheus.NewDesc(
			"refswitch_send_errors_total",
			"Total dataplane transmit failures.",
			nil, nil,
		),
		enabled: prometheus.NewDesc(
			"refswitch_enabled",
			"Whether the ingress gate is open (1) or closed (0).",
			nil, nil,
		),

		tablePacketsTotal: prometheus.NewDesc(
			"refswitch_table_packets_total",
			"Total packets looked up per table.",
			[]string{"table"}, nil,
		),
		tableBytesTotal: prometheus.NewDesc(
			"refswitch_table_bytes_total",
			"Total bytes looked up per table.",
			[]string{"table"}, nil,
		),
		tableHitsTotal: prometheus.NewDesc(
			"refswitch_table_hits_total",
			"Total lookup hits per table.",
			[]string{"table"}, nil,
		),
		tableMissesTotal: prometheus.NewDesc(
			"refswitch_table_misses_total",
			"Total lookup misses per table.",
			[]string{"table"}, nil,
		),
		tableEntries: prometheus.NewDesc(
			"refswitch_table_entries",
			"Installed keyed entries per table.",
			[]string{"table"}, nil,
		),

		tmEnqueuedTotal: prometheus.NewDesc(
			"refswitch_tm_enqueued_total",
			"Total packets enqueued per traffic manager.",
			[]string{"tm"}, nil,
		),
		tmDequeuedTotal: prometheus.NewDesc(
			"refswitch_tm_dequeued_total",
			"Total packets dequeued per traffic manager.",
			[]string{"tm"}, nil,
		),
		tmDroppedTotal: prometheus.NewDesc(
			"refswitch_tm_dropped_total",
			"Total packets dropped per traffic manager.",
			[]string{"tm"}, nil,
		),
		tmReplicatedTotal: prometheus.NewDesc(
			"refswitch_tm_replicated_total",
			"Total multicast replicas created per traffic manager.",
			[]string{"tm"}, nil,
		),
		tmDepth: prometheus.NewDesc(
			"refswitch_tm_depth",
			"Packets currently queued per traffic manager.",
			[]string{"tm"}, nil,
		),
	}
}

func (c *switchCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.receivedTotal
	ch <- c.parseRejectsTotal
	ch <- c.dropsTotal
	ch <- c.disabledDropsTotal
	ch <- c.transmittedTotal
	ch <- c.sendErrorsTotal
	ch <- c.enabled
	ch <- c.tablePacketsTotal
	ch <- c.tableBytesTotal
	ch <- c.tableHitsTotal
	ch <- c.tableMissesTotal
	ch <- c.tableEntries
	ch <- c.tmEnqueuedTotal
	ch <- c.tmDequeuedTotal
	ch <- c.tmDroppedTotal
	ch <- c.tmReplicatedTotal
	ch <- c.tmDepth
}

func (c *switchCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.sw.Stats()
	ch <- prometheus.MustNewConstMetric(c.receivedTotal, prometheus.CounterValue, float64(st.Received))
	ch <- prometheus.MustNewConstMetric(c.parseRejectsTotal, prometheus.CounterValue, float64(st.ParseRejects))
	ch <- prometheus.MustNewConstMetric(c.dropsTotal, prometheus.CounterValue, float64(st.Drops))
	ch <- prometheus.MustNewConstMetric(c.disabledDropsTotal, prometheus.CounterValue, float64(st.DisabledDrops))
	ch <- prometheus.MustNewConstMetric(c.transmittedTotal, prometheus.CounterValue, float64(st.Transmitted))
	ch <- prometheus.MustNewConstMetric(c.sendErrorsTotal, prometheus.CounterValue, float64(st.SendErrors))
	enabled := 0.0
	if c.sw.Enabled() {
		enabled = 1.0
	}
	ch <- prometheus.MustNewConstMetric(c.enabled, prometheus.GaugeValue, enabled)

	for _, name := range c.sw.TableNames() {
		t, err := c.sw.Table(name)
		if err != nil {
			continue
		}
		ts := t.Stats()
		ch <- prometheus.MustNewConstMetric(c.tablePacketsTotal, prometheus.CounterValue, float64(ts.Packets), name)
		ch <- prometheus.MustNewConstMetric(c.tableBytesTotal, prometheus.CounterValue, float64(ts.Bytes), name)
		ch <- prometheus.MustNewConstMetric(c.tableHitsTotal, prometheus.CounterValue, float64(ts.Hits), name)
		ch <- prometheus.MustNewConstMetric(c.tableMissesTotal, prometheus.CounterValue, float64(ts.Misses), name)
		ch <- prometheus.MustNewConstMetric(c.tableEntries, prometheus.GaugeValue, float64(len(t.Entries())), name)
	}

	for _, name := range c.sw.TrafficManagerNames() {
		t, err := c.sw.TrafficManager(name)
		if err != nil {
			continue
		}
		ts := t.Stats()
		ch <- prometheus.MustNewConstMetric(c.tmEnqueuedTotal, prometheus.CounterValue, float64(ts.Enqueued), name)
		ch <- prometheus.MustNewConstMetric(c.tmDequeuedTotal, prometheus.CounterValue, float64(ts.Dequeued), name)
		ch <- prometheus.MustNewConstMetric(c.tmDroppedTotal, prometheus.CounterValue, float64(ts.Dropped), name)
		ch <- prometheus.MustNewConstMetric(c.tmReplicatedTotal, prometheus.CounterValue, float64(ts.Replicated), name)
		ch <- prometheus.MustNewConstMetric(c.tmDepth, prometheus.GaugeValue, float64(t.Depth()), name)
	}
}
