package models

// PeaksRequest holds the GET /peaks query parameters
type PeaksRequest struct {
	MarketName string `form:"market_name" binding:"required"`
}
