package assignment

import (
	"context"
	"fmt"
	"sort"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

const (
	// UnresolvedOrigin — единственная запись списка, если адрес клиента не распознан.
	UnresolvedOrigin = "- (адрес клиента не распознан)"

	unresolvedRestaurantFormat = "%s - (адрес ресторана не распознан)"
	rankedFormat               = "%s - %s"
)

// Ranker — сортирует рестораны-кандидаты по расстоянию до адреса доставки.
type Ranker struct {
	resolver AddressResolver
	distance DistanceFunc
}

// NewRanker — distance=nil означает GeodesicKm.
func NewRanker(resolver AddressResolver, distance DistanceFunc) *Ranker {
	if distance == nil {
		distance = GeodesicKm
	}
	return &Ranker{resolver: resolver, distance: distance}
}

type rankedRestaurant struct {
	name string
	km   float64
}

// Rank — строки "<ресторан> - <км> км" по возрастанию расстояния.
// Нераспознанный адрес клиента: [UnresolvedOrigin], адреса ресторанов не запрашиваются.
// Рестораны с нераспознанным адресом идут в конце, в исходном порядке.
func (r *Ranker) Rank(ctx context.Context, origin string, candidates []domain.Restaurant) ([]string, error) {
	from, found, err := r.resolver.Resolve(ctx, origin)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{UnresolvedOrigin}, nil
	}

	ranked := make([]rankedRestaurant, 0, len(candidates))
	var unresolved []string
	for _, c := range candidates {
		to, ok, err := r.resolver.Resolve(ctx, c.Address)
		if err != nil {
			return nil, err
		}
		if !ok {
			unresolved = append(unresolved, fmt.Sprintf(unresolvedRestaurantFormat, c.Name))
			continue
		}
		ranked = append(ranked, rankedRestaurant{name: c.Name, km: roundKm(r.distance(from, to))})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].km < ranked[j].km })

	out := make([]string, 0, len(ranked)+len(unresolved))
	for _, rr := range ranked {
		out = append(out, fmt.Sprintf(rankedFormat, rr.name, FormatKm(rr.km)))
	}
	return append(out, unresolved...), nil
}
