package dto

import "github.com/ozank/classhub/internal/pkg/stats"

// UploadScoresResponse echoes the freshly stored score set. Labels and
// Scores are parallel arrays in storage order.
type UploadScoresResponse struct {
	Message    string        `json:"message"`
	Labels     []string      `json:"labels"`
	Scores     []int         `json:"scores"`
	Statistics stats.Summary `json:"statistics"`
}

// ScoresResponse is the score query payload. ClassAvg has the same length as
// Scores with every element equal to the class average, so callers can plot
// a flat comparison line.
type ScoresResponse struct {
	Labels     []string      `json:"labels"`
	Scores     []int         `json:"scores"`
	ClassAvg   []float64     `json:"class_avg"`
	Statistics stats.Summary `json:"statistics"`
}
