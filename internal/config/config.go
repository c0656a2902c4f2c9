package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `json:"addr" yaml:"addr"`
	ReadHeaderTimeout Duration `json:"read_header_timeout" yaml:"read_header_timeout"`
	IdleTimeout       Duration `json:"idle_timeout" yaml:"idle_timeout"`
	ShutdownTimeout   Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	MaxRequestBytes   int64    `json:"max_request_bytes" yaml:"max_request_bytes"`

	// CORSOrigins lists browser origins allowed to call the API. Empty
	// disables CORS handling.
	CORSOrigins []string `json:"cors_origins,omitempty" yaml:"cors_origins,omitempty"`
}

const (
	BackendShared = "shared"
	BackendActor  = "actor"
)

type StoreConfig struct {
	// Backend selects the ticket store behind the HTTP API:
	// - "shared": lock-based directory, one record lock per ticket
	// - "actor": single worker goroutine behind a bounded mailbox
	Backend string `json:"backend" yaml:"backend"`

	// MailboxCapacity bounds the actor mailbox. Submissions beyond it are
	// rejected with 503 instead of queueing.
	MailboxCapacity int `json:"mailbox_capacity" yaml:"mailbox_capacity"`

	// ReplyTimeout bounds how long a request waits for the actor worker.
	// Zero waits for as long as the request context lives.
	ReplyTimeout Duration `json:"reply_timeout,omitempty" yaml:"reply_timeout,omitempty"`
}

type TracingConfig struct {
	Enabled      bool    `json:"enabled" yaml:"enabled"`
	ServiceName  string  `json:"service_name,omitempty" yaml:"service_name,omitempty"`
	SampleRatio  float64 `json:"sample_ratio,omitempty" yaml:"sample_ratio,omitempty"`
	OTLPEndpoint string  `json:"otlp_endpoint,omitempty" yaml:"otlp_endpoint,omitempty"`
	OTLPInsecure bool    `json:"otlp_insecure,omitempty" yaml:"otlp_insecure,omitempty"`
}

type MetricsConfig struct {
	// Enabled mounts GET /metrics in Prometheus text format.
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type Config struct {
	Env     string        `json:"env" yaml:"env"`
	HTTP    HTTPConfig    `json:"http" yaml:"http"`
	Store   StoreConfig   `json:"store" yaml:"store"`
	Tracing TracingConfig `json:"tracing" yaml:"tracing"`
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`
}
