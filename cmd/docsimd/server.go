package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/botirk38/docsim/types"
)

// Comparer is the part of the engine the server needs.
type Comparer interface {
	Compare(ctx context.Context, a, b types.Document) types.Verdict
	Backend() string
}

// CompareRequest is the body of POST /compare.
type CompareRequest struct {
	LabelA string `json:"label_a"`
	TextA  string `json:"text_a"`
	LabelB string `json:"label_b"`
	TextB  string `json:"text_b"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	engine  Comparer
	logger  types.Logger
	timeout time.Duration
}

func newServer(engine Comparer, logger types.Logger, timeout time.Duration) *server {
	if timeout <= 0 {
		timeout = DefaultWriteTimeout
	}
	return &server{engine: engine, logger: logger, timeout: timeout}
}

// handle routes every request.
func (s *server) handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealth(ctx)
	case "/compare":
		s.handleCompare(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	s.logger.Info("request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(start))
}

func (s *server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]any{
		"status":  "ok",
		"backend": s.engine.Backend(),
		"time":    time.Now().Format(time.RFC3339),
	})
}

// handleCompare answers with the verdict. Undetermined outcomes are still
// 200 responses; only malformed requests are rejected.
func (s *server) handleCompare(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req CompareRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}
	if req.LabelA == "" {
		req.LabelA = "a"
	}
	if req.LabelB == "" {
		req.LabelB = "b"
	}

	c, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	v := s.engine.Compare(c,
		types.Document{Label: req.LabelA, Text: req.TextA},
		types.Document{Label: req.LabelB, Text: req.TextB})

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, v)
}

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data any) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}
	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}
	ctx.SetBody(response)
}
