package database

// Migration bookkeeping
const (
	CreateMigrationsTableSQL = `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			id SERIAL PRIMARY KEY,
			migration_name VARCHAR(255) NOT NULL UNIQUE,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)`

	SelectAppliedMigrationsSQL = `SELECT migration_name FROM schema_migrations`

	InsertMigrationSQL = `INSERT INTO schema_migrations (migration_name) VALUES ($1)`
)

// Order ledger queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (number, member_id, restaurant_id, restaurant_name, subtotal, total_amount, status, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	InsertOrderItemSQL = `
		INSERT INTO order_items (order_id, item_id, name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`

	InsertOrderOfferSQL = `
		INSERT INTO order_offers (order_id, position, description, discount)
		VALUES ($1, $2, $3, $4)`

	GetLastOrderSequenceSQL = `
		SELECT COALESCE(MAX(CAST(SUBSTRING(number FROM 'ORD_[0-9]{8}_([0-9]{3,})') AS INTEGER)), 0)
		FROM orders
		WHERE number LIKE $1`
)
