package assignment

import (
	"context"
	"fmt"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
)

// AddressResolver — адрес -> координата (found=false: адрес не распознан).
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (coord domain.Coordinate, found bool, err error)
}

// Resolver — кэш координат на время одной сборки страницы.
// Снимок known загружается одним запросом заранее; промах идёт в геокодер,
// результат записывается в хранилище (побеждает первая запись) и в снимок.
// Значение не разделяется между запросами.
type Resolver struct {
	known    map[string]domain.Location
	store    ports.LocationRepository
	geocoder ports.Geocoder
	log      ports.Logger
	now      func() time.Time
}

// Проверка, что Resolver удовлетворяет интерфейсу AddressResolver.
var _ AddressResolver = (*Resolver)(nil)

// NewResolver — конструктор; known может быть nil.
func NewResolver(
	known map[string]domain.Location,
	store ports.LocationRepository,
	geocoder ports.Geocoder,
	log ports.Logger,
) *Resolver {
	if known == nil {
		known = make(map[string]domain.Location)
	}
	return &Resolver{
		known:    known,
		store:    store,
		geocoder: geocoder,
		log:      log,
		now:      time.Now,
	}
}

// LoadResolver — загружает снимок для адресов и возвращает готовый Resolver.
func LoadResolver(
	ctx context.Context,
	addresses []string,
	store ports.LocationRepository,
	geocoder ports.Geocoder,
	log ports.Logger,
) (*Resolver, error) {
	known, err := store.FindByAddresses(ctx, uniqueStrings(addresses))
	if err != nil {
		return nil, fmt.Errorf("load locations snapshot: %w", err)
	}
	return NewResolver(known, store, geocoder, log), nil
}

// Resolve — снимок -> геокодер -> запись в хранилище.
func (r *Resolver) Resolve(ctx context.Context, address string) (domain.Coordinate, bool, error) {
	if loc, ok := r.known[address]; ok {
		metrics.LocationResolutions.WithLabelValues("snapshot").Inc()
		return loc.Coordinate, loc.Resolved, nil
	}

	coord, found, err := r.geocoder.Geocode(ctx, address)
	if err != nil {
		r.log.Errorf(ctx, "geocode failed address=%q err=%v", address, err)
		return domain.Coordinate{}, false, fmt.Errorf("geocode %q: %w", address, err)
	}
	metrics.LocationResolutions.WithLabelValues("geocoder").Inc()

	candidate := domain.Location{Address: address, Resolved: found, VerifiedAt: r.now().UTC()}
	if found {
		candidate.Coordinate = coord
	}

	stored, err := r.store.GetOrCreate(ctx, candidate)
	if err != nil {
		r.log.Errorf(ctx, "location store failed address=%q err=%v", address, err)
		return domain.Coordinate{}, false, fmt.Errorf("store location %q: %w", address, err)
	}
	if !found {
		r.log.Warnf(ctx, "address not recognized address=%q", address)
	}

	r.known[address] = stored
	return stored.Coordinate, stored.Resolved, nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
