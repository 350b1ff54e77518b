// Package handler exposes the parser over HTTP.
//
// Three endpoints are provided: a JSON endpoint parsing one request per
// call, a multipart endpoint parsing uploaded files as a single document,
// and a WebSocket endpoint parsing a stream of requests on one connection.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Protocol-Lattice/gqlparser/gqlerrors"
	"github.com/Protocol-Lattice/gqlparser/parser"
	"github.com/Protocol-Lattice/gqlparser/source"
)

// DefaultMaxBodyBytes bounds request bodies when Options.MaxBodyBytes is
// not set.
const DefaultMaxBodyBytes = 1 << 20

// Parse modes accepted in Request.Mode.
const (
	ModeDocument = "document"
	ModeValue    = "value"
	ModeType     = "type"
)

// Options configures a Handler.
type Options struct {
	Parser       parser.Options
	MaxBodyBytes int64
}

// Handler serves parse requests.
type Handler struct {
	logger *zap.Logger
	opts   Options
}

// New creates a Handler. A nil logger discards all output.
func New(logger *zap.Logger, opts Options) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{logger: logger, opts: opts}
}

// Request is a single parse request.
type Request struct {
	Query      string `json:"query"`
	Name       string `json:"name,omitempty"`
	Mode       string `json:"mode,omitempty"`
	NoLocation bool   `json:"noLocation,omitempty"`
}

// Response carries either the parsed tree or the errors that stopped it.
type Response struct {
	Data   any     `json:"data,omitempty"`
	Errors []Error `json:"errors,omitempty"`
}

// Error is a GraphQL-style error entry.
type Error struct {
	Message   string            `json:"message"`
	Locations []source.Location `json:"locations,omitempty"`
	File      string            `json:"file,omitempty"`
}

// Routes returns a mux with every endpoint mounted.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/parse", h.ServeParse)
	mux.HandleFunc("/upload", h.ServeUpload)
	mux.HandleFunc("/stream", h.ServeStream)
	return mux
}

// ServeParse handles a JSON encoded Request.
func (h *Handler) ServeParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "unable to read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	resp := h.Parse(req)
	status := http.StatusOK
	if len(resp.Errors) > 0 {
		status = http.StatusBadRequest
	}
	h.writeJSON(w, status, resp)
}

// Parse runs a single request through the parser.
func (h *Handler) Parse(req Request) Response {
	began := time.Now()
	src := source.New(req.Name, req.Query)
	opts := h.opts.Parser
	if req.NoLocation {
		opts.NoLocation = true
	}

	var (
		data any
		err  error
	)
	switch req.Mode {
	case "", ModeDocument:
		data, err = parser.Parse(src, opts)
	case ModeValue:
		data, err = parser.ParseValue(src, opts)
	case ModeType:
		data, err = parser.ParseType(src, opts)
	default:
		err = fmt.Errorf("unknown mode %q", req.Mode)
	}

	h.logger.Info("parse",
		zap.String("mode", req.Mode),
		zap.String("source", src.Name),
		zap.Int("bytes", len(req.Query)),
		zap.Duration("duration", time.Since(began)),
		zap.Error(err),
	)
	if err != nil {
		return Response{Errors: []Error{toError(err)}}
	}
	return Response{Data: data}
}

// toError converts a parse failure into an Error entry.
func toError(err error) Error {
	var serr *gqlerrors.SyntaxError
	if errors.As(err, &serr) {
		return Error{Message: serr.Message(), Locations: serr.Locations}
	}
	return Error{Message: err.Error()}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
