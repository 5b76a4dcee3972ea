package order

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/brandon-nx/Food-Ordering-System/internal/customers"
	"github.com/brandon-nx/Food-Ordering-System/internal/database"
	"github.com/brandon-nx/Food-Ordering-System/internal/restaurant"
)

// PostgresLedger appends committed orders to the orders, order_items and
// order_offers tables. It is write only; nothing is read back into the
// running session except the last order sequence.
type PostgresLedger struct {
	db *database.DB
}

func NewPostgresLedger(db *database.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) Name() string {
	return "postgres"
}

// RecordOrder writes the order and its lines and offers in one transaction.
func (l *PostgresLedger) RecordOrder(ctx context.Context, customer *customers.Customer, order *restaurant.Order) error {
	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var orderID int64
	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		order.Number(),
		customer.MemberID,
		order.RestaurantID(),
		order.RestaurantName(),
		toNumeric(order.Subtotal().Round(2)),
		toNumeric(order.TotalCost().Round(2)),
		string(order.Status()),
		order.PlacedAt(),
	).Scan(&orderID)
	if err != nil {
		return fmt.Errorf("failed to insert order %s: %w", order.Number(), err)
	}

	for _, line := range order.Lines() {
		_, err := tx.Exec(ctx, database.InsertOrderItemSQL,
			orderID, string(line.ItemID), line.Name, line.Quantity, toNumeric(line.UnitPrice))
		if err != nil {
			return fmt.Errorf("failed to insert order item %s: %w", line.Name, err)
		}
	}

	for i, offer := range order.Offers() {
		_, err := tx.Exec(ctx, database.InsertOrderOfferSQL,
			orderID, i+1, offer.Description, toNumeric(offer.Discount))
		if err != nil {
			return fmt.Errorf("failed to insert order offer %s: %w", offer.Description, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order %s: %w", order.Number(), err)
	}
	return nil
}

// LastSequence returns the highest NNN recorded for day, or 0.
func (l *PostgresLedger) LastSequence(ctx context.Context, day string) (int, error) {
	var last int
	err := l.db.QueryRow(ctx, database.GetLastOrderSequenceSQL, "ORD_"+day+"_%").Scan(&last)
	if err != nil {
		return 0, err
	}
	return last, nil
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:   d.Coefficient(),
		Exp:   d.Exponent(),
		Valid: true,
	}
}
