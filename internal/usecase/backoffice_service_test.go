package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports/mocks"
	"github.com/Gunvolt24/foodcart/internal/usecase"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type backofficeDeps struct {
	managers    *mocks.MockManagerRepository
	restaurants *mocks.MockRestaurantRepository
	products    *mocks.MockProductRepository
	orders      *mocks.MockOrderRepository
	locations   *mocks.MockLocationRepository
	geocoder    *mocks.MockGeocoder
}

func newBackoffice(t *testing.T) (*usecase.BackofficeService, backofficeDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	d := backofficeDeps{
		managers:    mocks.NewMockManagerRepository(ctrl),
		restaurants: mocks.NewMockRestaurantRepository(ctrl),
		products:    mocks.NewMockProductRepository(ctrl),
		orders:      mocks.NewMockOrderRepository(ctrl),
		locations:   mocks.NewMockLocationRepository(ctrl),
		geocoder:    mocks.NewMockGeocoder(ctrl),
	}
	svc := usecase.NewBackofficeService(d.managers, d.restaurants, d.products, d.orders,
		d.locations, d.geocoder, noopLogger{})
	return svc, d
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthenticate(t *testing.T) {
	svc, d := newBackoffice(t)

	staff := &domain.Manager{ID: 1, Username: "anna", PasswordHash: hash(t, "s3cret"), IsStaff: true}
	courier := &domain.Manager{ID: 2, Username: "bob", PasswordHash: hash(t, "s3cret"), IsStaff: false}

	d.managers.EXPECT().GetByUsername(gomock.Any(), "anna").Return(staff, nil).Times(2)
	d.managers.EXPECT().GetByUsername(gomock.Any(), "bob").Return(courier, nil)
	d.managers.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)

	ctx := context.Background()

	m, err := svc.Authenticate(ctx, "anna", "s3cret")
	require.NoError(t, err)
	require.Equal(t, int64(1), m.ID)

	_, err = svc.Authenticate(ctx, "anna", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "bob", "s3cret")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ghost", "x")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "", "")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticate_RepoError(t *testing.T) {
	svc, d := newBackoffice(t)

	repoErr := errors.New("DB down")
	d.managers.EXPECT().GetByUsername(gomock.Any(), "anna").Return(nil, repoErr)

	_, err := svc.Authenticate(context.Background(), "anna", "x")
	require.ErrorIs(t, err, repoErr)
	require.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestProductMatrix(t *testing.T) {
	svc, d := newBackoffice(t)

	zebra := domain.Restaurant{ID: 1, Name: "Zebra"}
	alpha := domain.Restaurant{ID: 2, Name: "Alpha"}

	d.restaurants.EXPECT().List(gomock.Any()).Return([]domain.Restaurant{zebra, alpha}, nil)
	d.products.EXPECT().ListAll(gomock.Any()).Return([]domain.Product{{ID: 10}, {ID: 20}}, nil)
	d.restaurants.EXPECT().MenuItems(gomock.Any(), false).Return([]domain.MenuItem{
		{Restaurant: zebra, ProductID: 10, Available: true},
		{Restaurant: alpha, ProductID: 10, Available: false},
		{Restaurant: alpha, ProductID: 20, Available: true},
	}, nil)

	matrix, err := svc.ProductMatrix(context.Background())
	require.NoError(t, err)

	require.Equal(t, []domain.Restaurant{alpha, zebra}, matrix.Restaurants)
	require.Len(t, matrix.Products, 2)
	require.Equal(t, []bool{false, true}, matrix.Products[0].Availability)
	// нет пункта меню у Zebra => false
	require.Equal(t, []bool{true, false}, matrix.Products[1].Availability)
}

func TestOrdersPage_EndToEnd(t *testing.T) {
	svc, d := newBackoffice(t)

	arbat := domain.Restaurant{ID: 1, Name: "Арбат", Address: "Москва, ул. Новый Арбат, 15"}
	yasenevo := domain.Restaurant{ID: 2, Name: "Ясенево", Address: "Москва, ул. Паустовского, 5"}

	menu := []domain.MenuItem{
		{Restaurant: arbat, ProductID: 10, Available: true},
		{Restaurant: yasenevo, ProductID: 10, Available: true},
	}
	pending := domain.Order{ID: 1, Status: domain.StatusUnprocessed, PaymentMethod: domain.PaymentCash,
		Address: "Москва, Красная площадь, 1"}
	cooking := domain.Order{ID: 2, Status: domain.StatusCooking, PaymentMethod: domain.PaymentOnline,
		Address: "Москва, Тверская, 7", CookingRestaurant: &yasenevo}

	lines := []domain.OrderLine{
		{Order: pending, Item: domain.OrderItem{ProductID: 10, Quantity: 2, Price: decimal.RequireFromString("100.00")}},
		{Order: cooking, Item: domain.OrderItem{ProductID: 10, Quantity: 1, Price: decimal.RequireFromString("50.00")}},
	}

	snapshot := map[string]domain.Location{
		arbat.Address:    {Address: arbat.Address, Coordinate: domain.Coordinate{Lat: 55.7524, Lon: 37.5870}, Resolved: true},
		yasenevo.Address: {Address: yasenevo.Address, Coordinate: domain.Coordinate{Lat: 55.6049, Lon: 37.5398}, Resolved: true},
	}
	redSquare := domain.Coordinate{Lat: 55.7539, Lon: 37.6208}

	d.restaurants.EXPECT().MenuItems(gomock.Any(), true).Return(menu, nil)
	d.orders.EXPECT().PendingLines(gomock.Any()).Return(lines, nil)
	d.locations.EXPECT().FindByAddresses(gomock.Any(), gomock.Any()).Return(snapshot, nil)
	d.geocoder.EXPECT().Geocode(gomock.Any(), pending.Address).Return(redSquare, true, nil).Times(1)
	d.locations.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, loc domain.Location) (domain.Location, error) { return loc, nil })

	records, err := svc.OrdersPage(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, int64(1), records[0].ID)
	require.True(t, records[0].Cost.Equal(decimal.RequireFromString("200")))
	require.Len(t, records[0].Restaurants, 2)
	require.Regexp(t, `^Арбат - \d+\.\d{2} км$`, records[0].Restaurants[0])
	require.Regexp(t, `^Ясенево - \d+\.\d{2} км$`, records[0].Restaurants[1])

	require.Equal(t, "Ясенево", records[1].CookingRestaurant)
	require.Equal(t, "Электронно", records[1].PaymentMethod)
	require.Empty(t, records[1].Restaurants)
}

func TestOrdersPage_GeocoderUnavailable(t *testing.T) {
	svc, d := newBackoffice(t)

	order := domain.Order{ID: 1, Status: domain.StatusUnprocessed, Address: "Москва"}
	d.restaurants.EXPECT().MenuItems(gomock.Any(), true).Return(nil, nil)
	d.orders.EXPECT().PendingLines(gomock.Any()).Return([]domain.OrderLine{
		{Order: order, Item: domain.OrderItem{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(1)}},
	}, nil)
	d.locations.EXPECT().FindByAddresses(gomock.Any(), []string{"Москва"}).Return(map[string]domain.Location{}, nil)
	d.geocoder.EXPECT().Geocode(gomock.Any(), "Москва").Return(domain.Coordinate{}, false, domain.ErrGeocoderUnavailable)

	_, err := svc.OrdersPage(context.Background())
	require.ErrorIs(t, err, domain.ErrGeocoderUnavailable)
}
