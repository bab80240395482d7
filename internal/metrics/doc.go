// Proximus - Neighborhood-Based Collaborative Filtering for MovieLens Data
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/proximus

/*
Package metrics provides Prometheus instrumentation for the predictor.

The package registers its collectors on the default Prometheus registry via
promauto. Proximus itself mounts no metrics endpoint (the binary is a
single-shot CLI), but any embedder of the recommend and dataset packages can
expose the default registry with promhttp and scrape these series.

# Available Metrics

Prediction Metrics:
  - predictions_total: Completed predictions (counter)
    Labels: mode (user, item)
  - prediction_duration_seconds: Prediction latency (histogram)
    Labels: mode
  - degenerate_predictions_total: Predictions that returned the degenerate
    NaN result (zero distance sum or undefined target average) (counter)
    Labels: mode
  - prediction_errors_total: Predictions rejected before computation (counter)
    Labels: mode

Dataset Metrics:
  - dataset_load_duration_seconds: Ratings file load duration (histogram)
  - dataset_users: User axis length of the loaded matrix (gauge)
  - dataset_items: Item axis length of the loaded matrix (gauge)
  - dataset_ratings: Observed ratings in the loaded matrix (gauge)

# Usage Example

	start := time.Now()
	result, err := engine.Predict(req)
	metrics.RecordPrediction(req.Mode.String(), time.Since(start), result.Degenerate)

# Thread Safety

All recording functions are safe for concurrent use; the Prometheus client
library handles synchronization internally.
*/
package metrics
