package offer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-pricing-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-pricing-service/internal/pricing"
	"github.com/fekuna/omnipos-pricing-service/internal/tenant"
)

// Loader turns stored rows into resolver offers. Malformed rows are logged
// and dropped; they can never win a resolution.
type Loader struct {
	rows   RowRepository
	logger logger.ZapLogger
}

func NewLoader(rows RowRepository, log logger.ZapLogger) *Loader {
	return &Loader{
		rows:   rows,
		logger: log,
	}
}

func (l *Loader) FetchActive(ctx context.Context, t tenant.Tenant, target pricing.Target) ([]pricing.Offer, error) {
	rows, err := l.rows.FindActive(ctx, t, target)
	if err != nil {
		return nil, fmt.Errorf("fetch active %s offers: %w", target, err)
	}

	offers := make([]pricing.Offer, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		o, err := ToPricing(row)
		if err != nil {
			l.logger.Warn("skipping malformed offer",
				zap.String("offer_id", row.ID),
				zap.String("brand_id", t.BrandID),
				zap.String("location_id", t.LocationID),
				zap.Error(err),
			)
			skipped++
			continue
		}
		offers = append(offers, o)
	}

	if skipped > 0 {
		l.logger.Warn("dropped malformed offers",
			zap.String("brand_id", t.BrandID),
			zap.String("location_id", t.LocationID),
			zap.String("target", string(target)),
			zap.Int("skipped", skipped),
			zap.Int("loaded", len(offers)),
		)
	}

	return offers, nil
}
