package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment with
// an optional .env overlay for local runs.
type Config struct {
	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50051"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	EntryWALDir     string `env:"ENTRY_WAL_DIR" envDefault:"./data/wal_entry"`
	EntryWALSegment int64  `env:"ENTRY_WAL_SEGMENT_BYTES" envDefault:"2097152"`
	ExitWALDir      string `env:"EXIT_WAL_DIR" envDefault:"./data/wal_exit"`

	SnapshotDir      string        `env:"SNAPSHOT_DIR" envDefault:"./data/snapshots"`
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"30s"`
	EpochInterval    time.Duration `env:"EPOCH_INTERVAL" envDefault:"2s"`

	KafkaBrokers      []string      `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	EventsTopic       string        `env:"EVENTS_TOPIC" envDefault:"osprey.events"`
	TradesTopic       string        `env:"TRADES_TOPIC" envDefault:"osprey.trades"`
	BroadcastInterval time.Duration `env:"BROADCAST_INTERVAL" envDefault:"250ms"`

	PoolSize uint64 `env:"ORDER_POOL_SIZE" envDefault:"262144"`
}

// Load reads .env if present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
