package service

import "go-charts-api/model"

// SeedCharts returns the fixed initial datasets, one record per known key.
// Summary backs the adoption pie chart, reports the evolution bar chart.
func SeedCharts() []*model.Chart {
	summary := &model.Chart{
		Key:          "summary",
		Title:        "AI Analytics Types - Organizational Adoption",
		DatasetLabel: "Adoption Rate (%)",
		Description:  "Distribution of AI analytics types being used by organizations: Descriptive analytics for understanding what happened, Diagnostic for why it happened, Predictive for forecasting future trends, and Prescriptive for recommending actions.",
		Data: []model.DataPoint{
			{Label: "Descriptive Analytics", Value: 45},
			{Label: "Diagnostic Analytics", Value: 25},
			{Label: "Predictive Analytics", Value: 20},
			{Label: "Prescriptive Analytics", Value: 10},
		},
	}

	reports := &model.Chart{
		Key:          "reports",
		Title:        "AI Analytics Evolution - Decade by Decade",
		DatasetLabel: "Capability Index (0-100)",
		Description:  "The evolution of AI analytics capabilities over time, from early foundations in the 1950s through machine learning growth, data explosion era, big data advancements, to current deep learning and modern AI analytics.",
		Data: []model.DataPoint{
			{Label: "1950s-60s: Foundations", Value: 15},
			{Label: "1970s-80s: ML Growth", Value: 30},
			{Label: "1990s: Data Explosion", Value: 45},
			{Label: "2000s: Big Data Era", Value: 65},
			{Label: "2010s-Now: Deep Learning", Value: 95},
		},
	}

	return []*model.Chart{summary, reports}
}
