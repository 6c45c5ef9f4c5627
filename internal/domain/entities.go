// Package domain holds the core entities, error taxonomy, and ports of the
// customer-support chat relay. It stays free of third-party dependencies so
// that adapters and usecases depend inward only.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUpstream        = errors.New("upstream provider error")
	ErrInternal        = errors.New("internal error")
)

// Canonical sentiment labels. Providers may deviate; deviating labels are
// stored verbatim and surface as their own analytics buckets.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Customer is an identity record. Created once, never mutated or deleted.
type Customer struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}

// Interaction is one logged user/AI exchange tied to a customer.
// AIResponse holds the post-sanitization text.
type Interaction struct {
	ID          int64
	CustomerID  int64
	UserMessage string
	AIResponse  string
	Sentiment   string
	CreatedAt   time.Time
}

// Model describes one supported chat-completion model for the catalog route.
type Model struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Provider string `json:"provider"`
}

// Analytics aggregates store-wide counts.
// Invariant: TotalInteractions equals the sum of SentimentDistribution values.
type Analytics struct {
	TotalCustomers        int64
	TotalInteractions     int64
	SentimentDistribution map[string]int64
}

// Repositories (ports)

type CustomerRepository interface {
	Create(ctx Context, name, email string) (Customer, error)
	List(ctx Context) ([]Customer, error)
	Count(ctx Context) (int64, error)
}

type InteractionRepository interface {
	Create(ctx Context, it Interaction) (Interaction, error)
	ListByCustomer(ctx Context, customerID int64) ([]Interaction, error)
	Count(ctx Context) (int64, error)
	SentimentCounts(ctx Context) (map[string]int64, error)
}

// ChatProvider (port)
//
// One implementation per upstream provider. The two-call orchestration
// (answer, then sentiment) lives in the chat usecase so it is written once.
type ChatProvider interface {
	// Complete performs a single synchronous chat completion and returns the
	// raw (unsanitized) completion text.
	Complete(ctx Context, systemPrompt, userMessage string) (string, error)
}

// Context aliases context.Context; adapters and usecases pass it through.
type Context = context.Context
