// Package postgres provides PostgreSQL database adapters.
//
// It implements the repository ports for customers and interactions with
// type-safe database operations over a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
)

// PgxPool is a minimal subset of pgxpool used by the repos for easy testing.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// CustomerRepo persists and loads customers.
type CustomerRepo struct{ Pool PgxPool }

// NewCustomerRepo constructs a CustomerRepo with the given pool.
func NewCustomerRepo(p PgxPool) *CustomerRepo { return &CustomerRepo{Pool: p} }

// Create stores a new customer and returns it with its generated id.
// A duplicate email maps to domain.ErrConflict.
func (r *CustomerRepo) Create(ctx domain.Context, name, email string) (domain.Customer, error) {
	tracer := otel.Tracer("repo.customers")
	ctx, span := tracer.Start(ctx, "customers.Create")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "INSERT"),
		attribute.String("db.sql.table", "customers"),
	)
	q := `INSERT INTO customers (name, email, created_at) VALUES ($1,$2,$3) RETURNING id, created_at`
	now := time.Now().UTC()
	c := domain.Customer{Name: name, Email: email}
	if err := r.Pool.QueryRow(ctx, q, name, email, now).Scan(&c.ID, &c.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.Customer{}, fmt.Errorf("%w: email %s already registered", domain.ErrConflict, email)
		}
		return domain.Customer{}, fmt.Errorf("op=customer.create: %w", err)
	}
	return c, nil
}

// List returns all customers in insertion order.
func (r *CustomerRepo) List(ctx domain.Context) ([]domain.Customer, error) {
	tracer := otel.Tracer("repo.customers")
	ctx, span := tracer.Start(ctx, "customers.List")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "SELECT"),
		attribute.String("db.sql.table", "customers"),
	)
	q := `SELECT id, name, email, created_at FROM customers ORDER BY id`
	rows, err := r.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("op=customer.list: %w", err)
	}
	defer rows.Close()
	out := make([]domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("op=customer.list: scan: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("op=customer.list: rows: %w", err)
	}
	return out, nil
}

// Count returns the total number of customers.
func (r *CustomerRepo) Count(ctx domain.Context) (int64, error) {
	tracer := otel.Tracer("repo.customers")
	ctx, span := tracer.Start(ctx, "customers.Count")
	defer span.End()
	span.SetAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("db.operation", "COUNT"),
		attribute.String("db.sql.table", "customers"),
	)
	q := `SELECT COUNT(*) FROM customers`
	var count int64
	if err := r.Pool.QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, fmt.Errorf("op=customer.count: %w", err)
	}
	return count, nil
}
