package postgres

import (
	"context"
	"fmt"
)

// schema bootstraps the two tables at startup. interactions.customer_id is a
// real foreign key: an interaction may never reference a customer that does
// not exist at write time.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS customers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS interactions (
		id BIGSERIAL PRIMARY KEY,
		customer_id BIGINT NOT NULL REFERENCES customers(id),
		user_message TEXT NOT NULL,
		ai_response TEXT NOT NULL,
		sentiment TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_customer_id ON interactions(customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_sentiment ON interactions(sentiment)`,
}

// Migrate applies the bootstrap schema. Statements are idempotent so repeated
// startups are safe.
func Migrate(ctx context.Context, pool PgxPool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("op=postgres.migrate: %w", err)
		}
	}
	return nil
}
