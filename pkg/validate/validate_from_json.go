package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/Gunvolt24/foodcart/internal/ports"
)

// ErrInvalidJSON — тело не является одним корректным JSON-объектом заявки.
var ErrInvalidJSON = errors.New("invalid json")

// DecodeOrderRequest — строгий разбор: неизвестные поля и данные после объекта запрещены.
func DecodeOrderRequest(raw []byte) (*domain.OrderRequest, error) {
	var req domain.OrderRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return &req, nil
}

// ValidateOrderFromJSON — валидация заявки из JSON.
func ValidateOrderFromJSON(ctx context.Context, validator ports.OrderValidator, raw []byte) (*domain.OrderRequest, error) {
	req, err := DecodeOrderRequest(raw)
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
