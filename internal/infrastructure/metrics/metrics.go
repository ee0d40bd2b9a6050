package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Posting metrics
	TransactionsPosted    prometheus.Counter
	TransactionsVoided    prometheus.Counter
	LedgerEntriesAppended prometheus.Counter
	PostDuration          prometheus.Histogram
	PostErrors            *prometheus.CounterVec

	// Assignment metrics
	AssignmentsCreated  prometheus.Counter
	AssignmentsReversed prometheus.Counter

	// Balance metrics
	BalanceCacheHits   prometheus.Counter
	BalanceCacheMisses prometheus.Counter

	// Reconciliation metrics
	ConsistencyViolations prometheus.Counter

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates all Prometheus metrics and registers them on reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// Posting metrics
		TransactionsPosted: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_transactions_posted_total",
			Help: "Total number of transactions posted",
		}),
		TransactionsVoided: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_transactions_voided_total",
			Help: "Total number of transactions voided",
		}),
		LedgerEntriesAppended: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_ledger_entries_total",
			Help: "Total number of ledger entries appended",
		}),
		PostDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "acctledger_post_duration_seconds",
			Help:    "Duration of posting operations",
			Buckets: prometheus.DefBuckets,
		}),
		PostErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctledger_post_errors_total",
				Help: "Total number of posting errors by type",
			},
			[]string{"error_type"},
		),

		// Assignment metrics
		AssignmentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_assignments_created_total",
			Help: "Total number of assignments created",
		}),
		AssignmentsReversed: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_assignments_reversed_total",
			Help: "Total number of assignments reversed",
		}),

		// Balance metrics
		BalanceCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_balance_cache_hits_total",
			Help: "Total balance cache hits",
		}),
		BalanceCacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_balance_cache_misses_total",
			Help: "Total balance cache misses",
		}),

		// Reconciliation metrics
		ConsistencyViolations: factory.NewCounter(prometheus.CounterOpts{
			Name: "acctledger_consistency_violations_total",
			Help: "Total ledger consistency violations detected",
		}),

		// Database metrics
		DBQueries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctledger_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "acctledger_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "acctledger_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctledger_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctledger_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "acctledger_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
