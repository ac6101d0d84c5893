package model

import "time"

// DataPoint is a single labeled value in a chart dataset. The order of
// points within a chart is display order and must be preserved end to end.
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type Chart struct {
	ID           int         `json:"-"`
	Key          string      `json:"key"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	DatasetLabel string      `json:"datasetLabel"`
	Data         []DataPoint `json:"data"`
	CreatedAt    time.Time   `json:"-"`
}
