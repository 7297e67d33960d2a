package models

import "time"

// SloganResponse is returned by GET /
type SloganResponse struct {
	Slogan string `json:"slogan"`
}

// PeakResponse is one entry of the GET /peaks array
type PeakResponse struct {
	UsageKW    float64   `json:"usage_kw"`
	MarketName string    `json:"market_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// MarketsResponse lists the markets available for peak queries
type MarketsResponse struct {
	Markets []MarketInfo `json:"markets"`
	Count   int          `json:"count"`
}

// MarketInfo describes one market from the market index
type MarketInfo struct {
	Name        string `json:"name"`
	ID          int64  `json:"id"`
	RecordCount int    `json:"record_count"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
