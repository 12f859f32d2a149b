package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/shopspring/decimal"
)

func newProduct(id int64) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     "Чизбургер",
		Price:    decimal.RequireFromString("150.00"),
		Category: &domain.ProductCategory{ID: 1, Name: "Бургеры"},
	}
}

// fakeClock — управляемое время для проверок TTL.
type fakeClock struct{ t time.Time }

func (f *fakeClock) now() time.Time          { return f.t }
func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSetGet_HitMiss(t *testing.T) {
	c := NewLRUCacheTTL(2, 5*time.Minute)
	ctx := context.Background()

	// miss
	if _, ok := c.Get(ctx, 1); ok {
		t.Fatalf("expected miss before Set")
	}

	// hit после Set
	_ = c.Set(ctx, newProduct(1))
	got, ok := c.Get(ctx, 1)
	if !ok || got.ID != 1 || !got.Price.Equal(decimal.RequireFromString("150")) {
		t.Fatalf("expected hit for product 1, got %+v", got)
	}
}

func TestSet_IgnoresNilAndZeroID(t *testing.T) {
	c := NewLRUCacheTTL(2, 0)
	ctx := context.Background()

	_ = c.Set(ctx, nil)
	_ = c.Set(ctx, &domain.Product{})
	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got len=%d", c.Len())
	}
}

func TestTTL_Expiry(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewLRUCacheTTL(2, time.Minute)
	c.now = clock.now
	ctx := context.Background()

	_ = c.Set(ctx, newProduct(7))
	clock.advance(50 * time.Second)
	if _, ok := c.Get(ctx, 7); !ok {
		t.Fatalf("expected hit before TTL")
	}

	clock.advance(11 * time.Second)
	if _, ok := c.Get(ctx, 7); ok {
		t.Fatalf("expected miss after TTL expires")
	}
	if c.Len() != 0 {
		t.Fatalf("expired entry must be removed, len=%d", c.Len())
	}
}

// Частые чтения не продлевают запись: цена перечитывается из БД не реже раза в TTL
func TestTTL_HitsDoNotExtendExpiry(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: start}
	c := NewLRUCacheTTL(2, 10*time.Minute)
	c.now = clock.now
	ctx := context.Background()

	_ = c.Set(ctx, newProduct(7))
	for i := 0; i < 3; i++ {
		clock.advance(3 * time.Minute)
		if _, ok := c.Get(ctx, 7); !ok {
			t.Fatalf("expected hit at %s", clock.t.Sub(start))
		}
	}

	clock.advance(time.Minute + time.Second)
	if _, ok := c.Get(ctx, 7); ok {
		t.Fatalf("entry set at %s must expire after %s despite reads", start.Format(time.TimeOnly), 10*time.Minute)
	}

	// новый Set после истечения — новый отсчёт с актуальной ценой
	fresh := newProduct(7)
	fresh.Price = decimal.RequireFromString("175.00")
	_ = c.Set(ctx, fresh)
	got, ok := c.Get(ctx, 7)
	if !ok || !got.Price.Equal(fresh.Price) {
		t.Fatalf("expected refreshed price 175, got %+v", got)
	}
}

func TestLRUEviction(t *testing.T) {
	c := NewLRUCacheTTL(2, 0) // 0 = без TTL
	ctx := context.Background()

	_ = c.Set(ctx, newProduct(1))
	_ = c.Set(ctx, newProduct(2))
	// 1 сделать «свежим»
	if _, ok := c.Get(ctx, 1); !ok {
		t.Fatalf("expected hit for 1")
	}
	// Добавляем 3 — вытеснит 2 (самый старый)
	_ = c.Set(ctx, newProduct(3))

	if _, ok := c.Get(ctx, 2); ok {
		t.Fatalf("expected 2 to be evicted")
	}
	if _, ok := c.Get(ctx, 1); !ok || c.ll.Len() != 2 {
		t.Fatalf("expected 1 & 3 to stay in cache")
	}
}

func TestWarmUp(t *testing.T) {
	c := NewLRUCacheTTL(10, 0)
	ctx := context.Background()

	if err := c.WarmUp(ctx, []domain.Product{*newProduct(1), *newProduct(2), *newProduct(3)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", c.Len())
	}
}

func TestCloneImmutability(t *testing.T) {
	c := NewLRUCacheTTL(1, 0)
	ctx := context.Background()
	orig := newProduct(9)
	_ = c.Set(ctx, orig)

	// исходный объект после Set не влияет на кэш
	orig.Category.Name = "changed"

	// меняем то, что вернул Get — не должно влиять на кэш
	p1, _ := c.Get(ctx, 9)
	p1.Name = "changed"

	p2, _ := c.Get(ctx, 9)
	if p2.Name == "changed" || p2.Category.Name == "changed" {
		t.Fatalf("cache should return clones, not pointers to internal value")
	}
}
