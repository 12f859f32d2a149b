package assignment

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/foodcart/internal/domain"
	"github.com/shopspring/decimal"
)

type orderGroup struct {
	order domain.Order
	items []domain.OrderItem
	cost  decimal.Decimal
}

// BuildOrderPage — группирует позиции по заказу, считает стоимость,
// подбирает и ранжирует рестораны. Порядок записей — порядок первого
// появления заказа во входе. Первая ошибка геокодирования прерывает сборку.
func BuildOrderPage(
	ctx context.Context,
	lines []domain.OrderLine,
	menu *Menu,
	ranker *Ranker,
) ([]domain.OrderDisplayRecord, error) {
	groups := make(map[int64]*orderGroup)
	var seq []int64

	for _, l := range lines {
		g, ok := groups[l.Order.ID]
		if !ok {
			g = &orderGroup{order: l.Order, cost: decimal.Zero}
			groups[l.Order.ID] = g
			seq = append(seq, l.Order.ID)
		}
		g.items = append(g.items, l.Item)
		g.cost = g.cost.Add(l.Item.Cost())
	}

	records := make([]domain.OrderDisplayRecord, 0, len(seq))
	for _, id := range seq {
		g := groups[id]
		rec := displayRecord(g)

		if g.order.Assigned() {
			rec.CookingRestaurant = g.order.CookingRestaurant.Name
			rec.Restaurants = []string{}
			records = append(records, rec)
			continue
		}

		ranked, err := ranker.Rank(ctx, g.order.Address, menu.Candidates(g.order, g.items))
		if err != nil {
			return nil, fmt.Errorf("rank restaurants for order %d: %w", id, err)
		}
		rec.Restaurants = ranked
		records = append(records, rec)
	}
	return records, nil
}

func displayRecord(g *orderGroup) domain.OrderDisplayRecord {
	o := g.order
	return domain.OrderDisplayRecord{
		ID:            o.ID,
		Status:        o.Status.Display(),
		PaymentMethod: o.PaymentMethod.Display(),
		Firstname:     o.Firstname,
		Lastname:      o.Lastname,
		Phonenumber:   o.Phonenumber,
		Address:       o.Address,
		Comment:       o.Comment,
		Cost:          g.cost,
	}
}
