package model

import "time"

// Column names as they appear in the price history export.
const (
	ColDate      = "Date"
	ColPrice     = "Price"
	ColChangePct = "Change %"
	ColOpen      = "Open"
	ColHigh      = "High"
	ColLow       = "Low"
	ColVolume    = "Vol."
)

// Record is one trading day after cleaning. Nil pointers are missing values.
type Record struct {
	Date      time.Time
	Price     float64
	ChangePct *float64 // reported change, as published
	Year      int
	Delta     *float64 // computed day-over-day % change
	Gamma     *float64 // ChangePct - Delta
}

// YearlySummary counts negative-change days in one calendar year.
type YearlySummary struct {
	Year        int
	DaysInBandA int
	DaysInBandB int
}

// Analysis is the output of one pipeline run.
type Analysis struct {
	Records []Record
	Summary []YearlySummary
}
