package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port     string
	RedisURL string

	Provider     string
	QuoteAPIKey  string
	QuoteAPIURL  string
	ProxyBaseURL string

	CacheTTLSecs    int
	CacheMaxEntries int

	FetchTimeoutSecs int
	HistoryRange     string

	StreamPollSecs int
	StreamMaxSubs  int

	RankWorkers   int
	DefaultBudget float64
}

func Load() *Config {
	cfg := &Config{
		RedisURL:     os.Getenv("REDIS_URL"),
		QuoteAPIKey:  os.Getenv("QUOTE_API_KEY"),
		QuoteAPIURL:  strings.TrimSpace(os.Getenv("QUOTE_API_URL")),
		ProxyBaseURL: strings.TrimSpace(os.Getenv("PROXY_BASE_URL")),
	}

	cfg.Port = strings.TrimSpace(os.Getenv("PORT"))
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, using in-memory series cache")
	}

	cfg.Provider = strings.ToLower(strings.TrimSpace(os.Getenv("PROVIDER")))
	if cfg.Provider == "" {
		cfg.Provider = "yahoo"
	}
	if cfg.Provider != "yahoo" && cfg.Provider != "quoteapi" && cfg.Provider != "proxy" {
		log.Printf("Warning: unsupported PROVIDER=%q, defaulting to yahoo", cfg.Provider)
		cfg.Provider = "yahoo"
	}

	if cfg.Provider == "quoteapi" && cfg.QuoteAPIKey == "" {
		log.Println("Warning: QUOTE_API_KEY not set, quote API requests will fail")
	}
	if cfg.Provider == "proxy" && cfg.ProxyBaseURL == "" {
		log.Println("Warning: PROXY_BASE_URL not set, proxy requests will fail")
	}

	cfg.CacheTTLSecs = 120
	if v := strings.TrimSpace(os.Getenv("CACHE_TTL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheTTLSecs = n
		}
	}

	cfg.CacheMaxEntries = 256
	if v := strings.TrimSpace(os.Getenv("CACHE_MAX_ENTRIES")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CacheMaxEntries = n
		}
	}

	cfg.FetchTimeoutSecs = 10
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutSecs = n
		}
	}

	cfg.HistoryRange = strings.TrimSpace(os.Getenv("HISTORY_RANGE"))
	if cfg.HistoryRange == "" {
		cfg.HistoryRange = "3mo"
	}

	cfg.StreamPollSecs = 5
	if v := strings.TrimSpace(os.Getenv("STREAM_POLL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.StreamPollSecs = n
		}
	}

	cfg.StreamMaxSubs = 64
	if v := strings.TrimSpace(os.Getenv("STREAM_MAX_SUBS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.StreamMaxSubs = n
		}
	}

	cfg.RankWorkers = 4
	if v := strings.TrimSpace(os.Getenv("RANK_WORKERS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RankWorkers = n
		}
	}

	cfg.DefaultBudget = 100000
	if v := strings.TrimSpace(os.Getenv("DEFAULT_BUDGET")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.DefaultBudget = n
		}
	}

	return cfg
}
