package model

import "time"

// UsageRecord is one row of the usage log.
// UsageKW is kilowatts and is not checked for sign.
type UsageRecord struct {
	MarketID  int64
	UsageKW   float64
	Timestamp time.Time
}

// PeakResult is a usage reading labelled with the market name the caller asked for.
type PeakResult struct {
	UsageKW    float64      `json:"usage_kw"`
	MarketName EnergyMarket `json:"market_name"`
	Timestamp  time.Time    `json:"timestamp"`
}
