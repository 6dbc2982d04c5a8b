package model

import "time"

type SourceTestResult struct {
	TestID    string    `json:"test_id"`
	SourceID  string    `json:"source_id"`
	Status    string    `json:"status"`
	LatencyMs int64     `json:"latency_ms"`
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	TestedAt  time.Time `json:"tested_at"`
}
