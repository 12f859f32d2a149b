package assignment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/foodcart/internal/assignment"
	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports/mocks"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// echoStore — GetOrCreate возвращает переданное значение.
func echoStore(_ context.Context, loc domain.Location) (domain.Location, error) {
	return loc, nil
}

func TestResolver_SecondResolveUsesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationRepository(ctrl)
	geo := mocks.NewMockGeocoder(ctrl)

	const addr = "Москва, Тверская, 7"
	coord := domain.Coordinate{Lat: 55.757, Lon: 37.613}

	gomock.InOrder(
		geo.EXPECT().Geocode(gomock.Any(), addr).Return(coord, true, nil).Times(1),
		store.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(echoStore).Times(1),
	)

	r := assignment.NewResolver(nil, store, geo, noopLogger{})

	first, ok1, err1 := r.Resolve(context.Background(), addr)
	second, ok2, err2 := r.Resolve(context.Background(), addr)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !ok1 || !ok2 || first != second || first != coord {
		t.Fatalf("resolves differ: first=%v/%v second=%v/%v", first, ok1, second, ok2)
	}
}

func TestResolver_StoredValueWins(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationRepository(ctrl)
	geo := mocks.NewMockGeocoder(ctrl)

	const addr = "Москва, Тверская, 7"
	stored := domain.Location{Address: addr, Coordinate: domain.Coordinate{Lat: 55.1, Lon: 37.1}, Resolved: true}

	geo.EXPECT().Geocode(gomock.Any(), addr).Return(domain.Coordinate{Lat: 55.2, Lon: 37.2}, true, nil)
	store.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).Return(stored, nil)

	r := assignment.NewResolver(nil, store, geo, noopLogger{})

	got, ok, err := r.Resolve(context.Background(), addr)
	if err != nil || !ok || got != stored.Coordinate {
		t.Fatalf("expected stored coordinate %v, got %v ok=%v err=%v", stored.Coordinate, got, ok, err)
	}
}

func TestResolver_UnresolvedIsPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationRepository(ctrl)
	geo := mocks.NewMockGeocoder(ctrl)

	const addr = "нигде"

	geo.EXPECT().Geocode(gomock.Any(), addr).Return(domain.Coordinate{}, false, nil)
	store.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, loc domain.Location) (domain.Location, error) {
			if loc.Resolved || loc.Address != addr {
				t.Fatalf("unexpected location to store: %+v", loc)
			}
			return loc, nil
		})

	r := assignment.NewResolver(nil, store, geo, noopLogger{})

	_, ok, err := r.Resolve(context.Background(), addr)
	if err != nil || ok {
		t.Fatalf("expected unresolved without error, got ok=%v err=%v", ok, err)
	}
	// повтор берётся из снимка
	if _, ok, err = r.Resolve(context.Background(), addr); err != nil || ok {
		t.Fatalf("expected unresolved from snapshot, got ok=%v err=%v", ok, err)
	}
}

func TestResolver_GeocoderError_NotStored(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationRepository(ctrl)
	geo := mocks.NewMockGeocoder(ctrl)

	geo.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(domain.Coordinate{}, false, domain.ErrGeocoderUnavailable)
	store.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).Times(0)

	r := assignment.NewResolver(nil, store, geo, noopLogger{})

	_, _, err := r.Resolve(context.Background(), "Москва")
	if !errors.Is(err, domain.ErrGeocoderUnavailable) {
		t.Fatalf("want ErrGeocoderUnavailable, got %v", err)
	}
}

func TestLoadResolver_DeduplicatesAddresses(t *testing.T) {
	ctrl := gomock.NewController(t)

	store := mocks.NewMockLocationRepository(ctrl)
	geo := mocks.NewMockGeocoder(ctrl)

	known := map[string]domain.Location{
		"a": {Address: "a", Coordinate: domain.Coordinate{Lat: 1, Lon: 2}, Resolved: true},
	}
	store.EXPECT().FindByAddresses(gomock.Any(), []string{"a", "b"}).Return(known, nil)

	r, err := assignment.LoadResolver(context.Background(), []string{"a", "b", "a"}, store, geo, noopLogger{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok, err := r.Resolve(context.Background(), "a")
	if err != nil || !ok || got != known["a"].Coordinate {
		t.Fatalf("expected snapshot hit, got %v ok=%v err=%v", got, ok, err)
	}
}
