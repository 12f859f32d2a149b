package ports

import (
	"context"

	"github.com/Gunvolt24/foodcart/internal/domain"
)

type BannerSource interface {
	Banners(ctx context.Context) ([]domain.Banner, error)
}
