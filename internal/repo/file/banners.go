// Пакет file — источники данных на файлах (YAML).
package file

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"gopkg.in/yaml.v3"
)

//go:embed banners.yaml
var defaultBanners []byte

// Проверка, что BannerSource удовлетворяет интерфейсу ports.BannerSource.
var _ ports.BannerSource = (*BannerSource)(nil)

// BannerSource — баннеры витрины; каталог читается один раз при создании.
type BannerSource struct {
	banners []domain.Banner
}

// NewBannerSource — path="" означает встроенный каталог.
func NewBannerSource(path string) (*BannerSource, error) {
	raw := defaultBanners
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read banners %q: %w", path, err)
		}
		raw = b
	}
	return ParseBanners(raw)
}

// ParseBanners — YAML-список {title, src, text}; title и src обязательны.
func ParseBanners(raw []byte) (*BannerSource, error) {
	var banners []domain.Banner
	if err := yaml.Unmarshal(raw, &banners); err != nil {
		return nil, fmt.Errorf("parse banners: %w", err)
	}
	for i, b := range banners {
		if b.Title == "" || b.Src == "" {
			return nil, fmt.Errorf("banner #%d: title and src are required", i)
		}
	}
	return &BannerSource{banners: banners}, nil
}

// Banners — копия списка.
func (s *BannerSource) Banners(_ context.Context) ([]domain.Banner, error) {
	out := make([]domain.Banner, len(s.banners))
	copy(out, s.banners)
	return out, nil
}
