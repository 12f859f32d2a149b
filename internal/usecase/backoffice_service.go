package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/Gunvolt24/foodcart/internal/assignment"
	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/Gunvolt24/foodcart/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/crypto/bcrypt"
)

// Проверка, что BackofficeService удовлетворяет интерфейсу ports.BackofficeService.
var _ ports.BackofficeService = (*BackofficeService)(nil)

// BackofficeService — страницы менеджера ресторанов.
type BackofficeService struct {
	managers    ports.ManagerRepository
	restaurants ports.RestaurantRepository
	products    ports.ProductRepository
	orders      ports.OrderRepository
	locations   ports.LocationRepository
	geocoder    ports.Geocoder
	log         ports.Logger
	distance    assignment.DistanceFunc
}

// NewBackofficeService — DI-конструктор; расстояние — геодезическое WGS 84.
func NewBackofficeService(
	managers ports.ManagerRepository,
	restaurants ports.RestaurantRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	locations ports.LocationRepository,
	geocoder ports.Geocoder,
	log ports.Logger,
) *BackofficeService {
	return &BackofficeService{
		managers:    managers,
		restaurants: restaurants,
		products:    products,
		orders:      orders,
		locations:   locations,
		geocoder:    geocoder,
		log:         log,
		distance:    assignment.GeodesicKm,
	}
}

// Authenticate — bcrypt-проверка пароля; пускаем только сотрудников (is_staff).
func (s *BackofficeService) Authenticate(ctx context.Context, username, password string) (*domain.Manager, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	m, err := s.managers.GetByUsername(ctx, username)
	if err != nil {
		s.log.Errorf(ctx, "managers.GetByUsername failed username=%s err=%v", username, err)
		return nil, err
	}
	if m == nil || !m.IsStaff {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)); err != nil {
		s.log.Warnf(ctx, "wrong password username=%s", username)
		return nil, domain.ErrInvalidCredentials
	}
	return m, nil
}

func (s *BackofficeService) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return s.restaurants.List(ctx)
}

// ProductMatrix — товары × рестораны (по имени); нет пункта меню => false.
func (s *BackofficeService) ProductMatrix(ctx context.Context) (*domain.ProductMatrix, error) {
	restaurants, err := s.restaurants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	sort.SliceStable(restaurants, func(i, j int) bool { return restaurants[i].Name < restaurants[j].Name })

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	menu, err := s.restaurants.MenuItems(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}

	type key struct{ restaurant, product int64 }
	available := make(map[key]bool, len(menu))
	for _, it := range menu {
		available[key{it.Restaurant.ID, it.ProductID}] = it.Available
	}

	matrix := &domain.ProductMatrix{
		Restaurants: restaurants,
		Products:    make([]domain.ProductAvailability, 0, len(products)),
	}
	for _, p := range products {
		row := domain.ProductAvailability{Product: p, Availability: make([]bool, len(restaurants))}
		for i, r := range restaurants {
			row.Availability[i] = available[key{r.ID, p.ID}]
		}
		matrix.Products = append(matrix.Products, row)
	}
	return matrix, nil
}

// OrdersPage — невыполненные заказы с подобранными ресторанами.
// Снимок координат грузится одним запросом на все адреса страницы.
func (s *BackofficeService) OrdersPage(ctx context.Context) ([]domain.OrderDisplayRecord, error) {
	ctx, span := telemetry.Tracer("usecase").Start(ctx, "BackofficeService.OrdersPage")
	records, err := s.ordersPage(ctx)
	if err == nil {
		span.SetAttributes(attribute.Int("orders.count", len(records)))
	}
	telemetry.EndSpan(span, err)
	return records, err
}

func (s *BackofficeService) ordersPage(ctx context.Context) ([]domain.OrderDisplayRecord, error) {
	menuItems, err := s.restaurants.MenuItems(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	lines, err := s.orders.PendingLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: %w", err)
	}

	addresses := make([]string, 0, len(menuItems)+len(lines))
	for _, it := range menuItems {
		addresses = append(addresses, it.Restaurant.Address)
	}
	for _, l := range lines {
		addresses = append(addresses, l.Order.Address)
	}

	resolver, err := assignment.LoadResolver(ctx, addresses, s.locations, s.geocoder, s.log)
	if err != nil {
		return nil, err
	}

	records, err := assignment.BuildOrderPage(ctx, lines, assignment.NewMenu(menuItems),
		assignment.NewRanker(resolver, s.distance))
	if err != nil {
		s.log.Errorf(ctx, "order page build failed err=%v", err)
		return nil, err
	}
	return records, nil
}
