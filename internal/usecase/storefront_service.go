package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/metrics"
	"github.com/Gunvolt24/foodcart/pkg/validate"
	"github.com/google/uuid"
)

// Каналы поступления заказов (метка метрики OrdersRegistered).
const (
	ChannelHTTP  = "http"
	ChannelKafka = "kafka"
)

// Проверка, что StorefrontService удовлетворяет интерфейсу ports.StorefrontService.
var _ ports.StorefrontService = (*StorefrontService)(nil)

// StorefrontService — витрина: баннеры, каталог, регистрация заказов (без знаний о транспорте).
type StorefrontService struct {
	products  ports.ProductRepository
	orders    ports.OrderRepository
	cache     ports.ProductCache
	banners   ports.BannerSource
	validator ports.OrderValidator
	log       ports.Logger
	now       func() time.Time
}

// NewStorefrontService — DI-конструктор.
func NewStorefrontService(
	products ports.ProductRepository,
	orders ports.OrderRepository,
	cache ports.ProductCache,
	banners ports.BannerSource,
	validator ports.OrderValidator,
	log ports.Logger,
) *StorefrontService {
	return &StorefrontService{
		products:  products,
		orders:    orders,
		cache:     cache,
		banners:   banners,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

func (s *StorefrontService) Banners(ctx context.Context) ([]domain.Banner, error) {
	return s.banners.Banners(ctx)
}

// Products — товары, доступные хотя бы в одном ресторане.
func (s *StorefrontService) Products(ctx context.Context) ([]domain.Product, error) {
	list, err := s.products.ListAvailable(ctx)
	if err != nil {
		s.log.Errorf(ctx, "products.ListAvailable failed err=%v", err)
		return nil, err
	}
	return list, nil
}

// RegisterOrder — заявка с витрины.
func (s *StorefrontService) RegisterOrder(ctx context.Context, req *domain.OrderRequest) (*domain.Order, error) {
	return s.register(ctx, req, ChannelHTTP)
}

// SaveFromMessage — сохранить заявку, пришедшую из Kafka (raw JSON).
// Шаги:
//  1. строгий парсинг JSON (DisallowUnknownFields, без хвостовых данных);
//  2. валидация и регистрация как для HTTP.
//
// Ошибки разбора и валидации оборачивают validate.ErrInvalidOrder: такое сообщение
// повторно обрабатывать бессмысленно.
func (s *StorefrontService) SaveFromMessage(ctx context.Context, raw []byte) error {
	req, err := validate.DecodeOrderRequest(raw)
	if err != nil {
		s.log.Warnf(ctx, "invalid json err=%v", err)
		return fmt.Errorf("%w: %w", validate.ErrInvalidOrder, err)
	}
	_, err = s.register(ctx, req, ChannelKafka)
	return err
}

func (s *StorefrontService) register(ctx context.Context, req *domain.OrderRequest, channel string) (*domain.Order, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		s.log.Warnf(ctx, "validation failed channel=%s err=%v", channel, err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	phone, err := validate.NormalizePhone(req.Phonenumber)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	catalog, err := s.lookupProducts(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ExternalID:    req.ExternalID,
		Status:        domain.StatusUnprocessed,
		PaymentMethod: req.PaymentMethod,
		Created:       s.now().UTC(),
		Firstname:     req.Firstname,
		Lastname:      req.Lastname,
		Phonenumber:   phone,
		Address:       req.Address,
		Comment:       req.Comment,
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentCash
	}
	if order.ExternalID == "" {
		order.ExternalID = uuid.NewString()
	}

	// цена фиксируется на момент оформления
	for _, it := range req.Products {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID: it.Product,
			Quantity:  it.Quantity,
			Price:     catalog[it.Product].Price,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		s.log.Errorf(ctx, "orders.Create failed external_id=%s err=%v", order.ExternalID, err)
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	metrics.OrdersRegistered.WithLabelValues(channel).Inc()
	s.log.Infof(ctx, "order registered id=%d external_id=%s channel=%s items=%d",
		order.ID, order.ExternalID, channel, len(order.Items))
	return order, nil
}

// lookupProducts — сначала кэш, промахи одним запросом в БД с записью в кэш.
func (s *StorefrontService) lookupProducts(ctx context.Context, items []domain.OrderRequestItem) (map[int64]*domain.Product, error) {
	found := make(map[int64]*domain.Product, len(items))
	var missing []int64
	for _, it := range items {
		if _, ok := found[it.Product]; ok {
			continue
		}
		if p, ok := s.cache.Get(ctx, it.Product); ok {
			found[it.Product] = p
			continue
		}
		found[it.Product] = nil
		missing = append(missing, it.Product)
	}

	if len(missing) > 0 {
		list, err := s.products.GetByIDs(ctx, missing)
		if err != nil {
			s.log.Errorf(ctx, "products.GetByIDs failed err=%v", err)
			return nil, fmt.Errorf("load products: %w", err)
		}
		for i := range list {
			p := &list[i]
			found[p.ID] = p
			if setErr := s.cache.Set(ctx, p); setErr != nil {
				s.log.Warnf(ctx, "cache.Set failed product=%d err=%v", p.ID, setErr)
			}
		}
	}

	for id, p := range found {
		if p == nil {
			return nil, fmt.Errorf("%w: %w: product %d", validate.ErrInvalidOrder, domain.ErrUnknownProduct, id)
		}
	}
	return found, nil
}

// WarmUpCache — прогрев кэша доступными товарами (не больше n).
// Если n <= 0, прогрев не выполняется (но это не ошибка).
func (s *StorefrontService) WarmUpCache(ctx context.Context, n int) error {
	if n <= 0 {
		s.log.Warnf(ctx, "cache warm-up skipped: n <= 0 (n=%d)", n)
		return nil
	}

	start := time.Now()
	list, err := s.products.ListAvailable(ctx)
	if err != nil {
		s.log.Errorf(ctx, "products.ListAvailable failed err=%v", err)
		return err
	}
	if len(list) > n {
		list = list[:n]
	}
	if warmUpErr := s.cache.WarmUp(ctx, list); warmUpErr != nil {
		s.log.Warnf(ctx, "cache.WarmUp failed err=%v", warmUpErr)
	}
	s.log.Infof(ctx, "cache warmed with %d products in %s", len(list), time.Since(start))
	return nil
}

// IsInvalidOrder — ошибка вызвана содержимым заявки, а не инфраструктурой.
func IsInvalidOrder(err error) bool {
	return errors.Is(err, validate.ErrInvalidOrder)
}
