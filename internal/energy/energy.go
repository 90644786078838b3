// Package energy provides the home energy analysis bounded context.
// This file defines the public interface exposed to other packages.
package energy

import (
	"context"

	"home_energy_coach/internal/energy/transport"
)

// Analyzer turns a raw analyze request body into an analysis.
type Analyzer interface {
	Analyze(ctx context.Context, raw []byte) (transport.AnalysisResponse, error)
}
