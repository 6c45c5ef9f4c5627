package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fairyhunter13/ai-customer-chat/internal/adapter/observability"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// InteractionRepo persists and loads interactions.
type InteractionRepo struct{ Pool PgxPool }

// NewInteractionRepo constructs an InteractionRepo with the given pool.
func NewInteractionRepo(p PgxPool) *InteractionRepo { return &InteractionRepo{Pool: p} }

// Create stores a new interaction and returns it with its generated id and
// timestamp. A customer_id that references no existing customer maps to
// domain.ErrNotFound via the foreign key.
func (r *InteractionRepo) Create(ctx domain.Context, it domain.Interaction) (domain.Interaction, error) {
	tracer := otel.Tracer("repo.interactions")
	ctx, span := tracer.Start(ctx, "interactions.Create")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "interactions"),
	)
	q := `INSERT INTO interactions (customer_id, user_message, ai_response, sentiment, created_at)
	      VALUES ($1,$2,$3,$4,$5) RETURNING id, created_at`
	now := time.Now().UTC()
	if err := r.Pool.QueryRow(ctx, q, it.CustomerID, it.UserMessage, it.AIResponse, it.Sentiment, now).Scan(&it.ID, &it.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.Interaction{}, fmt.Errorf("%w: customer %d", domain.ErrNotFound, it.CustomerID)
		}
		return domain.Interaction{}, fmt.Errorf("op=interaction.create: %w", err)
	}
	observability.InteractionsTotal.WithLabelValues(it.Sentiment).Inc()
	return it, nil
}

// ListByCustomer returns all interactions for the given customer in insertion
// order. A customer with no interactions yields an empty slice, not an error.
func (r *InteractionRepo) ListByCustomer(ctx domain.Context, customerID int64) ([]domain.Interaction, error) {
	tracer := otel.Tracer("repo.interactions")
	ctx, span := tracer.Start(ctx, "interactions.ListByCustomer")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "interactions"),
	)
	q := `SELECT id, customer_id, user_message, ai_response, sentiment, created_at
	      FROM interactions WHERE customer_id=$1 ORDER BY id`
	rows, err := r.Pool.Query(ctx, q, customerID)
	if err != nil {
		return nil, fmt.Errorf("op=interaction.list_by_customer: %w", err)
	}
	defer rows.Close()
	out := make([]domain.Interaction, 0)
	for rows.Next() {
		var it domain.Interaction
		if err := rows.Scan(&it.ID, &it.CustomerID, &it.UserMessage, &it.AIResponse, &it.Sentiment, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=interaction.list_by_customer: scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=interaction.list_by_customer: rows: %w", err)
	}
	return out, nil
}

// Count returns the total number of interactions.
func (r *InteractionRepo) Count(ctx domain.Context) (int64, error) {
	tracer := otel.Tracer("repo.interactions")
	ctx, span := tracer.Start(ctx, "interactions.Count")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "COUNT"),
		attribute.String("db.sql.table", "interactions"),
	)
	q := `SELECT COUNT(*) FROM interactions`
	var count int64
	if err := r.Pool.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, fmt.Errorf("op=interaction.count: %w", err)
	}
	return count, nil
}

// SentimentCounts groups interactions by their exact sentiment label.
// Labels that deviate from the canonical three appear as their own buckets.
func (r *InteractionRepo) SentimentCounts(ctx domain.Context) (map[string]int64, error) {
	tracer := otel.Tracer("repo.interactions")
	ctx, span := tracer.Start(ctx, "interactions.SentimentCounts")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "interactions"),
	)
	q := `SELECT sentiment, COUNT(*) FROM interactions GROUP BY sentiment`
	rows, err := r.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("op=interaction.sentiment_counts: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int64)
	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("op=interaction.sentiment_counts: scan: %w", err)
		}
		out[label] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=interaction.sentiment_counts: rows: %w", err)
	}
	return out, nil
}
