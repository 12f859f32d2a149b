package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа; порядок значений задаёт порядок на странице менеджера.
type OrderStatus int

const (
	StatusUnprocessed OrderStatus = 1
	StatusCooking     OrderStatus = 2
	StatusDelivering  OrderStatus = 3
	StatusCompleted   OrderStatus = 4
)

// Display — название статуса для страницы менеджера.
func (s OrderStatus) Display() string {
	switch s {
	case StatusUnprocessed:
		return "Необработанный"
	case StatusCooking:
		return "Готовится"
	case StatusDelivering:
		return "Доставляется"
	case StatusCompleted:
		return "Выполнен"
	default:
		return ""
	}
}

// PaymentMethod — способ оплаты.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CH"
	PaymentOnline PaymentMethod = "ON"
)

// Display — название способа оплаты.
func (p PaymentMethod) Display() string {
	switch p {
	case PaymentCash:
		return "Наличностью"
	case PaymentOnline:
		return "Электронно"
	default:
		return ""
	}
}

// Order — заказ клиента.
type Order struct {
	ID                int64         `json:"id"`
	ExternalID        string        `json:"external_id,omitempty"`
	Status            OrderStatus   `json:"status"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	Created           time.Time     `json:"created"`
	Firstname         string        `json:"firstname"`
	Lastname          string        `json:"lastname"`
	Phonenumber       string        `json:"phonenumber"`
	Address           string        `json:"address"`
	Comment           string        `json:"comment,omitempty"`
	CookingRestaurant *Restaurant   `json:"cooking_restaurant,omitempty"`
	Items             []OrderItem   `json:"items,omitempty"`
}

// Assigned — заказ вручную назначен ресторану.
func (o *Order) Assigned() bool { return o.CookingRestaurant != nil }

// OrderItem — позиция заказа; Price фиксируется на момент оформления.
type OrderItem struct {
	ProductID int64           `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Cost — стоимость позиции (количество × цена).
func (i OrderItem) Cost() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// OrderLine — строка выборки «позиция + её заказ» для страницы менеджера.
type OrderLine struct {
	Order Order
	Item  OrderItem
}

// OrderRequest — входящая заявка на заказ (HTTP или Kafka).
type OrderRequest struct {
	ExternalID    string             `json:"external_id,omitempty"`
	Firstname     string             `json:"firstname"`
	Lastname      string             `json:"lastname"`
	Phonenumber   string             `json:"phonenumber"`
	Address       string             `json:"address"`
	Comment       string             `json:"comment,omitempty"`
	PaymentMethod PaymentMethod      `json:"payment_method,omitempty"`
	Products      []OrderRequestItem `json:"products"`
}

// OrderRequestItem — позиция заявки.
type OrderRequestItem struct {
	Product  int64 `json:"product"`
	Quantity int   `json:"quantity"`
}

// OrderDisplayRecord — запись страницы заказов менеджера; собирается заново при каждом запросе.
type OrderDisplayRecord struct {
	ID                int64           `json:"id"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"payment_method"`
	Firstname         string          `json:"firstname"`
	Lastname          string          `json:"lastname"`
	Phonenumber       string          `json:"phonenumber"`
	Address           string          `json:"address"`
	Comment           string          `json:"comment"`
	Cost              decimal.Decimal `json:"cost"`
	CookingRestaurant string          `json:"cooking_restaurant"`
	Restaurants       []string        `json:"restaurants"`
}
