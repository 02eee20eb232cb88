package models

import "time"

// SystemMetrics is a lightweight aggregate snapshot exposed on the summary
// endpoint alongside the Prometheus scrape surface.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	EngineEvaluations        uint64    `json:"engine_evaluations"`
	AverageEngineDurationMs  float64   `json:"average_engine_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
