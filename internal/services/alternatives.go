package services

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"
)

// Base strategies evaluated when the caller has no preference. Hybrid is
// excluded here: it already embeds the priority ordering.
var baseStrategies = []domain.Strategy{domain.StrategyNearest, domain.StrategyPriority}

// GenerateAlternatives runs the optimizer once per base strategy with default
// options and returns the successful results sorted by ascending estimated
// duration. A failing strategy is logged and skipped; the call as a whole
// fails only when every strategy does.
func (o *Optimizer) GenerateAlternatives(
	partnerID string,
	depot domain.DeliveryStop,
	stops []domain.DeliveryStop,
) ([]*domain.OptimizedRoute, error) {
	routes := make([]*domain.OptimizedRoute, 0, len(baseStrategies))
	var lastErr error

	for _, strategy := range baseStrategies {
		route, err := o.Optimize(partnerID, depot, stops, strategy, DefaultOptions())
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"partner_id": partnerID,
				"strategy":   string(strategy),
			}).Warn("route alternative failed")
			lastErr = err
			continue
		}
		routes = append(routes, route)
	}

	if len(routes) == 0 {
		return nil, fmt.Errorf("generate alternatives: all strategies failed: %w", lastErr)
	}

	slices.SortStableFunc(routes, func(a, b *domain.OptimizedRoute) int {
		return cmp.Compare(a.Metrics.EstimatedDurationMinutes, b.Metrics.EstimatedDurationMinutes)
	})
	return routes, nil
}
