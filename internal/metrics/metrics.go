// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Prediction Metrics
	PredictionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "predictions_total",
			Help: "Total number of completed predictions",
		},
		[]string{"mode"}, // "user", "item"
	)

	PredictionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prediction_duration_seconds",
			Help:    "Prediction duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"mode"},
	)

	DegeneratePredictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degenerate_predictions_total",
			Help: "Predictions that returned the degenerate NaN result",
		},
		[]string{"mode"},
	)

	PredictionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prediction_errors_total",
			Help: "Predictions rejected before computation",
		},
		[]string{"mode"},
	)

	// Dataset Metrics
	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Ratings file load duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_users",
			Help: "User axis length of the loaded rating matrix",
		},
	)

	DatasetItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_items",
			Help: "Item axis length of the loaded rating matrix",
		},
	)

	DatasetRatings = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_ratings",
			Help: "Number of observed ratings in the loaded matrix",
		},
	)
)

// RecordPrediction records a completed prediction.
func RecordPrediction(mode string, duration time.Duration, degenerate bool) {
	PredictionsTotal.WithLabelValues(mode).Inc()
	PredictionDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if degenerate {
		DegeneratePredictions.WithLabelValues(mode).Inc()
	}
}

// RecordPredictionError records a prediction rejected before computation.
func RecordPredictionError(mode string) {
	PredictionErrors.WithLabelValues(mode).Inc()
}

// RecordDatasetLoad records a completed ratings load.
func RecordDatasetLoad(users, items, ratings int, duration time.Duration) {
	DatasetLoadDuration.Observe(duration.Seconds())
	DatasetUsers.Set(float64(users))
	DatasetItems.Set(float64(items))
	DatasetRatings.Set(float64(ratings))
}
