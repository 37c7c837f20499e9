package types

import (
	"context"

	"github.com/ytkit/transcript-api/internal/services/extraction"
	"github.com/ytkit/transcript-api/pkg/config"
)

// Extractor is the extraction surface handlers depend on.
type Extractor interface {
	Extract(ctx context.Context, urlOrID string, opts extraction.Options) (*extraction.Result, error)
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	Config    *config.Config
	Extractor Extractor
}

// StorePath resolves the sqlite path for one request: an explicit
// override wins, otherwise the configured default.
func (d *Dependencies) StorePath(override string) string {
	if override != "" {
		return override
	}
	if d != nil && d.Config != nil {
		return d.Config.Database.Path
	}
	return "transcripts.db"
}
