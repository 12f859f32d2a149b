package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

// Geocoder — внешний геокодер.
// found=false без ошибки: адрес не распознан. Ошибки оборачивают
// domain.ErrGeocoderUnavailable или domain.ErrGeocoderMalformed.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (coord domain.Coordinate, found bool, err error)
}
