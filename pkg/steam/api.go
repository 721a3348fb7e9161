package steam

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/juliarose/steam-api-helpers/pkg/client"
	"github.com/juliarose/steam-api-helpers/pkg/records"
)

// Default endpoint and batching configuration.
const (
	DefaultAPIBase       = "https://api.steampowered.com"
	DefaultCommunityBase = "https://steamcommunity.com"
	DefaultLanguage      = "english"

	// DefaultChunkSize is the number of class ids requested per
	// GetAssetClassInfo call.
	DefaultChunkSize = 20

	// DefaultRequestDelay is the pause between consecutive calls of one
	// batched operation. Steam throttles bursty clients, so batched
	// endpoints are paced with a fixed delay rather than fired in parallel.
	DefaultRequestDelay = 1 * time.Second

	// playerSummariesChunkSize is the GetPlayerSummaries limit of 100
	// steamids per call.
	playerSummariesChunkSize = 100
)

// Config holds the API surface configuration.
type Config struct {
	// Client executes the HTTP requests. Required.
	Client *client.Client

	// APIBase and CommunityBase override the Steam hosts (for testing).
	APIBase       string
	CommunityBase string

	// Language for localized description fields.
	Language string

	// ChunkSize is the default ids-per-call bound for batched endpoints.
	ChunkSize int

	// RequestDelay is the default pause between calls of one batched
	// operation.
	RequestDelay time.Duration
}

// DefaultConfig returns a default configuration for the given client.
func DefaultConfig(c *client.Client) Config {
	return Config{
		Client:        c,
		APIBase:       DefaultAPIBase,
		CommunityBase: DefaultCommunityBase,
		Language:      DefaultLanguage,
		ChunkSize:     DefaultChunkSize,
		RequestDelay:  DefaultRequestDelay,
	}
}

// BatchOptions override the configured batching parameters for a single
// call. Zero fields fall back to the configured defaults.
type BatchOptions struct {
	ChunkSize    int
	RequestDelay time.Duration
}

// API is the Steam Web API endpoint surface.
type API struct {
	client *client.Client
	config Config
	logger zerolog.Logger
}

// New creates a new API surface.
func New(cfg Config) (*API, error) {
	if cfg.Client == nil {
		return nil, client.NewError(client.KindInvalidArgument, "client is required")
	}

	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.CommunityBase == "" {
		cfg.CommunityBase = DefaultCommunityBase
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkSize < 1 {
		return nil, client.NewError(client.KindInvalidArgument, "chunk size must be positive (got %d)", cfg.ChunkSize)
	}
	if cfg.RequestDelay == 0 {
		cfg.RequestDelay = DefaultRequestDelay
	}
	if cfg.RequestDelay < 0 {
		return nil, client.NewError(client.KindInvalidArgument, "request delay must not be negative")
	}

	return &API{
		client: cfg.Client,
		config: cfg,
		logger: log.With().Str("component", "steam-api").Logger(),
	}, nil
}

// batchParams resolves per-call batch options against the configured
// defaults.
func (a *API) batchParams(opts *BatchOptions) (int, time.Duration) {
	size := a.config.ChunkSize
	delay := a.config.RequestDelay
	if opts != nil {
		if opts.ChunkSize != 0 {
			size = opts.ChunkSize
		}
		if opts.RequestDelay != 0 {
			delay = opts.RequestDelay
		}
	}
	return size, delay
}

// apiURL builds a Steam Web API endpoint URL.
func (a *API) apiURL(iface, method string, version int) string {
	return fmt.Sprintf("%s/%s/%s/v%d/", a.config.APIBase, iface, method, version)
}

// toRecords converts decoded JSON objects to records.
func toRecords(items []map[string]any) []records.Record {
	out := make([]records.Record, len(items))
	for i, item := range items {
		out[i] = records.Record(item)
	}
	return out
}

// anyRecords converts a decoded JSON array to records, skipping entries that
// are not objects.
func anyRecords(items []any) []records.Record {
	out := make([]records.Record, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok {
			out = append(out, records.Record(obj))
		}
	}
	return out
}
