package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
	"github.com/nyaruka/phonenumbers"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

const (
	// DefaultRegion — регион для номеров без кода страны.
	DefaultRegion = "RU"

	MinQuantity  = 1
	MaxQuantity  = 21
	maxFieldRune = 255
)

// OrderValidator — структура для валидации заявки на заказ.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заявки.
func (v *OrderValidator) Validate(_ context.Context, req *domain.OrderRequest) error {
	if req == nil {
		return fmt.Errorf("%w: заявка не может быть nil", ErrInvalidOrder)
	}
	if err := v.validateCustomer(req); err != nil {
		return err
	}
	if err := v.validatePayment(req.PaymentMethod); err != nil {
		return err
	}
	return v.validateProducts(req.Products)
}

// validateCustomer — имя, фамилия, телефон, адрес.
func (v *OrderValidator) validateCustomer(req *domain.OrderRequest) error {
	fields := []struct{ name, value string }{
		{"firstname", req.Firstname},
		{"lastname", req.Lastname},
		{"address", req.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s обязателен", ErrInvalidOrder, f.name)
		}
		if utf8.RuneCountInString(f.value) > maxFieldRune {
			return fmt.Errorf("%w: %s длиннее %d символов", ErrInvalidOrder, f.name, maxFieldRune)
		}
	}
	if _, err := NormalizePhone(req.Phonenumber); err != nil {
		return err
	}
	return nil
}

// Пустой способ оплаты допустим: по умолчанию наличные.
func (v *OrderValidator) validatePayment(p domain.PaymentMethod) error {
	switch p {
	case "", domain.PaymentCash, domain.PaymentOnline:
		return nil
	default:
		return fmt.Errorf("%w: payment_method %q не поддерживается", ErrInvalidOrder, p)
	}
}

// Валидация позиций
func (v *OrderValidator) validateProducts(items []domain.OrderRequestItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: products не должен быть пустым", ErrInvalidOrder)
	}
	for i, it := range items {
		if it.Product <= 0 {
			return fmt.Errorf("%w: products[%d].product некорректен", ErrInvalidOrder, i)
		}
		if it.Quantity < MinQuantity || it.Quantity > MaxQuantity {
			return fmt.Errorf("%w: products[%d].quantity должен быть от %d до %d",
				ErrInvalidOrder, i, MinQuantity, MaxQuantity)
		}
	}
	return nil
}

// NormalizePhone — разбор номера (регион RU по умолчанию) в формат E.164.
func NormalizePhone(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", fmt.Errorf("%w: phonenumber обязателен", ErrInvalidOrder)
	}
	num, err := phonenumbers.Parse(raw, DefaultRegion)
	if err != nil {
		return "", fmt.Errorf("%w: введён некорректный номер телефона: %v", ErrInvalidOrder, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: введён некорректный номер телефона", ErrInvalidOrder)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
