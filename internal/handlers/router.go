package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"user-directory-api/pkg/lambda"
)

// Router dispatches invocation events to the route handlers and wraps the
// whole chain in the error boundary.
type Router struct {
	users  *UserHandler
	health *HealthHandler
	bucket *BucketHandler
}

// NewRouter creates a router over the given handlers
func NewRouter(users *UserHandler, health *HealthHandler, bucket *BucketHandler) *Router {
	return &Router{
		users:  users,
		health: health,
		bucket: bucket,
	}
}

// Dispatch normalizes the request path, selects the matching handler and
// returns its response. It never returns an error: any failure escaping a
// handler, including panics, is converted into a uniform 500 response here
// and nowhere else.
func (r *Router) Dispatch(ctx context.Context, req *lambda.Request) (resp *lambda.Response) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.RawPath,
				"panic":  rec,
			}).Error("Panic during dispatch")
			resp = internalErrorResponse(recoverMessage(rec))
		}
	}()

	resp, err := r.route(ctx, req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.RawPath,
			"error":  err.Error(),
		}).Error("Request failed")
		return internalErrorResponse(err.Error())
	}

	return resp
}

// route selects exactly one handler for (method, canonical path).
// The route set is disjoint, so match order carries no meaning beyond the
// OPTIONS short-circuit.
func (r *Router) route(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	// Preflight answers any OPTIONS request regardless of path
	if req.Method == http.MethodOptions {
		return Respond(http.StatusOK, nil)
	}

	path := NormalizePath(req.RawPath)
	segments := splitPath(path)

	switch {
	case req.Method == http.MethodGet && path == "/health":
		return r.health.Handle()

	case req.Method == http.MethodGet && path == "/bucket":
		return r.bucket.Handle()

	case req.Method == http.MethodPost && path == "/users":
		return r.users.HandleCreate(ctx, req)

	case req.Method == http.MethodGet && path == "/users":
		return r.users.HandleList(ctx)

	case req.Method == http.MethodGet && len(segments) == 2 && segments[0] == "users":
		// The id segment is passed through opaquely; the store decides
		// whether anything lives under it.
		return r.users.HandleGet(ctx, segments[1])

	default:
		return Respond(http.StatusNotFound, ErrorResponse{Error: "Route not found"})
	}
}

// splitPath breaks a canonical path into its segments; "/" yields none
func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// internalErrorResponse builds the uniform 500 envelope without going
// through Respond, so the boundary itself cannot fail.
func internalErrorResponse(message string) *lambda.Response {
	headers := CORSHeaders()
	headers["Content-Type"] = "application/json"

	body, err := json.Marshal(ErrorResponse{
		Error:   "Internal server error",
		Message: message,
	})
	if err != nil {
		body = []byte(`{"error":"Internal server error"}`)
	}

	return &lambda.Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    headers,
		Body:       body,
	}
}

func recoverMessage(rec interface{}) string {
	if err, ok := rec.(error); ok {
		return err.Error()
	}
	if s, ok := rec.(string); ok {
		return s
	}
	return "unexpected failure"
}
