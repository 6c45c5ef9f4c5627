package httpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fairyhunter13/ai-customer-chat/internal/config"
	"github.com/fairyhunter13/ai-customer-chat/internal/domain"
	"github.com/fairyhunter13/ai-customer-chat/internal/usecase"
	"github.com/fairyhunter13/ai-customer-chat/pkg/textx"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg       config.Config
	Chat      usecase.ChatService
	Customers usecase.CustomerService
	Analytics usecase.AnalyticsService
	Catalog   []domain.Model
	DBCheck   func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers and checks wired.
func NewServer(cfg config.Config, chat usecase.ChatService, customers usecase.CustomerService, analytics usecase.AnalyticsService, catalog []domain.Model, dbCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Chat: chat, Customers: customers, Analytics: analytics, Catalog: catalog, DBCheck: dbCheck}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

type chatRequest struct {
	Message    string `json:"message" validate:"required"`
	Model      string `json:"model"`
	CustomerID *int64 `json:"customer_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	Sentiment string `json:"sentiment"`
}

// ChatHandler relays one user message through the selected provider and
// returns the cleaned answer with its sentiment label.
func (s *Server) ChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json body", domain.ErrInvalidArgument), nil)
			return
		}
		req.Message = textx.SanitizeText(req.Message)
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: message required", domain.ErrInvalidArgument), map[string]string{"field": "message"})
			return
		}

		reply, err := s.Chat.Chat(r.Context(), req.Model, req.Message, req.CustomerID)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, chatResponse{Response: reply.Response, Sentiment: reply.Sentiment})
	}
}

type customerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type customerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateCustomerHandler registers a new customer.
func (s *Server) CreateCustomerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req customerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, fmt.Errorf("%w: invalid json body", domain.ErrInvalidArgument), nil)
			return
		}
		req.Name = textx.SanitizeText(req.Name)
		req.Email = textx.SanitizeText(req.Email)
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: name and valid email required", domain.ErrInvalidArgument), map[string]string{"fields": "name, email"})
			return
		}

		c, err := s.Customers.Create(r.Context(), req.Name, req.Email)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"id": c.ID, "message": "Customer added"})
	}
}

// ListCustomersHandler returns all customers.
func (s *Server) ListCustomersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customers, err := s.Customers.List(r.Context())
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		out := make([]customerResponse, 0, len(customers))
		for _, c := range customers {
			out = append(out, customerResponse{ID: c.ID, Name: c.Name, Email: c.Email})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

type interactionResponse struct {
	ID          int64  `json:"id"`
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
	Timestamp   string `json:"timestamp"`
	Sentiment   string `json:"sentiment"`
}

// ListInteractionsHandler returns the interaction log for one customer.
// A customer with no interactions yields an empty array, not an error.
func (s *Server) ListInteractionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: customer id must be an integer", domain.ErrInvalidArgument), nil)
			return
		}
		interactions, err := s.Customers.ListInteractions(r.Context(), id)
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		out := make([]interactionResponse, 0, len(interactions))
		for _, it := range interactions {
			out = append(out, interactionResponse{
				ID:          it.ID,
				UserMessage: it.UserMessage,
				AIResponse:  it.AIResponse,
				Timestamp:   it.CreatedAt.UTC().Format(time.RFC3339),
				Sentiment:   it.Sentiment,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// AnalyticsHandler returns store-wide aggregate counts.
func (s *Server) AnalyticsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := s.Analytics.Overview(r.Context())
		if err != nil {
			writeError(w, r, err, nil)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"total_customers":        a.TotalCustomers,
			"total_interactions":     a.TotalInteractions,
			"sentiment_distribution": a.SentimentDistribution,
		})
	}
}

// ModelsHandler lists the supported chat models.
func (s *Server) ModelsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, s.Catalog)
	}
}

// ReadyzHandler reports readiness of the backing store.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.DBCheck != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := s.DBCheck(ctx); err != nil {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db unavailable"})
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
