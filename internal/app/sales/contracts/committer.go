package contracts

import (
	"context"

	commitplan "github.com/murkotick/sales-record-service/internal/pkg/committer"
)

// Committer applies a collection of mutations atomically. Usecases build a
// plan (sale rows, item rows, outbox rows) and hand it over in one call, so
// a failed commit leaves neither a half-written sale nor an orphan event.
type Committer interface {
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
