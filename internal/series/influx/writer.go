// Package influx writes a generated temperature series to InfluxDB v2.
package influx

import (
	"context"
	"fmt"

	"home_energy_coach/internal/series"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

const (
	measurement = "daily_temperature"
	fieldValue  = "value_f"
	batchSize   = 500
)

// Config is the InfluxDB connection configuration.
type Config interface {
	GetInfluxURL() string
	GetInfluxToken() string
	GetInfluxOrg() string
	GetInfluxBucket() string
}

// Writer is a series sink backed by an InfluxDB bucket.
type Writer struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	location string
}

// NewWriter connects to InfluxDB and verifies the server is healthy.
func NewWriter(ctx context.Context, cfg Config, location string) (*Writer, error) {
	client := influxdb2.NewClient(cfg.GetInfluxURL(), cfg.GetInfluxToken())

	if _, err := client.Health(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to InfluxDB: %w", err)
	}

	return &Writer{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.GetInfluxOrg(), cfg.GetInfluxBucket()),
		location: location,
	}, nil
}

func (w *Writer) Name() string { return "influxdb" }

// Write stores every record as a point, in batches.
func (w *Writer) Write(ctx context.Context, records []series.Record) error {
	points := Points(records, w.location)
	for start := 0; start < len(points); start += batchSize {
		end := min(start+batchSize, len(points))
		if err := w.writeAPI.WritePoint(ctx, points[start:end]...); err != nil {
			return fmt.Errorf("write points %d-%d: %w", start, end, err)
		}
	}
	return nil
}

// Close releases the client.
func (w *Writer) Close() {
	w.client.Close()
}

// Points converts records to InfluxDB points, one per day, timestamped at
// midnight UTC.
func Points(records []series.Record, location string) []*write.Point {
	points := make([]*write.Point, 0, len(records))
	for _, r := range records {
		points = append(points, write.NewPoint(
			measurement,
			map[string]string{
				"location": location,
				"source":   "synthetic",
			},
			map[string]interface{}{
				fieldValue: r.Value,
			},
			r.Date,
		))
	}
	return points
}

var _ series.Sink = (*Writer)(nil)
