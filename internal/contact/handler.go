// Package contact serves the contact form endpoint that records e-mail
// addresses of interested visitors.
package contact

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/leterax/portfolio/internal/httpx"
	"github.com/leterax/portfolio/internal/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Path is the route the handler is mounted on.
const Path = "/api/contact"

// MaxBodyBytes bounds the request body read by the handler.
const MaxBodyBytes = 16 << 10

const (
	errMethodNotAllowed = "Method not allowed"
	errInvalidJSON      = "Invalid JSON body"
	errInvalidEmail     = "Invalid email"
	errDatabase         = "Database error"
)

var tracer = otel.Tracer("github.com/leterax/portfolio/internal/contact")

// Response is the JSON body returned by the endpoint.
type Response struct {
	OK            bool   `json:"ok"`
	AlreadyExists bool   `json:"alreadyExists,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Handler accepts contact submissions and stores them.
type Handler struct {
	store storage.SubscriberStore
}

// NewHandler creates a contact handler backed by store.
func NewHandler(store storage.SubscriberStore) *Handler {
	return &Handler{store: store}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w, r)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeResponse(w, http.StatusMethodNotAllowed, Response{Error: errMethodNotAllowed})
		return
	}

	ctx, span := tracer.Start(r.Context(), "contact.submit")
	defer span.End()

	payload, err := decodePayload(w, r)
	if err != nil {
		span.SetAttributes(attribute.String("contact.outcome", "invalid_json"))
		writeResponse(w, http.StatusBadRequest, Response{Error: errInvalidJSON})
		return
	}

	var email string
	if obj, ok := payload.(map[string]any); ok {
		email = NormalizeEmail(obj["email"])
	}
	if !IsValidEmail(email) {
		span.SetAttributes(attribute.String("contact.outcome", "invalid_email"))
		writeResponse(w, http.StatusBadRequest, Response{Error: errInvalidEmail})
		return
	}

	if h.store == nil {
		err = errors.New("subscriber store is not configured")
	} else {
		err = h.store.AddSubscriber(ctx, email)
	}
	switch {
	case err == nil:
		span.SetAttributes(attribute.String("contact.outcome", "stored"))
		writeResponse(w, http.StatusOK, Response{OK: true})
	case errors.Is(err, storage.ErrAlreadyExists):
		span.SetAttributes(attribute.String("contact.outcome", "already_exists"))
		writeResponse(w, http.StatusOK, Response{OK: true, AlreadyExists: true})
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, "store subscriber")
		log.Printf("contact store failed request_id=%s err=%v", r.Header.Get(httpx.RequestIDHeader), err)
		writeResponse(w, http.StatusInternalServerError, Response{Error: errDatabase})
	}
}

// decodePayload reads the whole body and parses it as a single JSON value.
func decodePayload(w http.ResponseWriter, r *http.Request) (any, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, err
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = "*"
	}
	header := w.Header()
	header.Set("Access-Control-Allow-Origin", origin)
	header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "content-type")
	header.Set("Access-Control-Max-Age", "86400")
	header.Set("Vary", "Origin")
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	if err := httpx.WriteJSON(w, status, resp); err != nil {
		log.Printf("contact write response failed status=%d err=%v", status, err)
	}
}
