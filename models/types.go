// Package models contains the request and response shapes shared by handlers
package models

import "time"

// StegoResponse is the status envelope for codec endpoints that fail before
// a file can be streamed back.
type StegoResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CapacityResponse lists per-algorithm payload budgets for one carrier.
type CapacityResponse struct {
	Success    bool           `json:"success"`
	Kind       string         `json:"kind"`
	Capacities map[string]int `json:"capacities"`
}

// AlgorithmInfo describes one embedding algorithm.
type AlgorithmInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// AlgorithmsResponse lists the supported algorithms.
type AlgorithmsResponse struct {
	Success    bool            `json:"success"`
	Algorithms []AlgorithmInfo `json:"algorithms"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// ActivityEntry is one line of the in-memory operations journal.
type ActivityEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Operation string    `json:"operation"`
	Algorithm string    `json:"algorithm"`
	Carrier   string    `json:"carrier"`
	Detail    string    `json:"detail"`
}

// ActivityResponse returns the journal, newest first.
type ActivityResponse struct {
	Success bool            `json:"success"`
	Entries []ActivityEntry `json:"entries"`
}

// AudioMetadata describes a decoded audio carrier.
type AudioMetadata struct {
	Format     string
	SampleRate int
	Channels   int
	BitDepth   int
	Bitrate    int
	Duration   float64
	TotalBytes int
}

// AudioTags carries container tags from an input file into the WAV output.
type AudioTags struct {
	Title  string
	Artist string
	Album  string
	Genre  string
	Year   string
}
