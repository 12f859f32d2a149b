package domain

import "github.com/shopspring/decimal"

// Restaurant — ресторан-партнёр, который готовит заказы.
type Restaurant struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactPhone string `json:"contact_phone"`
}

// ProductCategory — категория товаров витрины.
type ProductCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product — товар витрины.
type Product struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Category      *ProductCategory `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	Image         string           `json:"image"`
	SpecialStatus bool             `json:"special_status"`
	Description   string           `json:"description"`
}

// MenuItem — пункт меню ресторана: (ресторан, товар, в продаже).
type MenuItem struct {
	Restaurant Restaurant
	ProductID  int64
	Available  bool
}

// Banner — промо-баннер на главной странице витрины.
type Banner struct {
	Title string `json:"title" yaml:"title"`
	Src   string `json:"src" yaml:"src"`
	Text  string `json:"text" yaml:"text"`
}

// ProductAvailability — строка матрицы доступности для менеджера:
// флаги идут в том же порядке, что и рестораны в ProductMatrix.
type ProductAvailability struct {
	Product      Product `json:"product"`
	Availability []bool  `json:"availability"`
}

// ProductMatrix — матрица «товар × ресторан».
type ProductMatrix struct {
	Restaurants []Restaurant          `json:"restaurants"`
	Products    []ProductAvailability `json:"products"`
}
