package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/https-Luan-Fernandes/rest-api-aws/internal/repositories"
	"github.com/https-Luan-Fernandes/rest-api-aws/internal/services"
)

// Route paths
const (
	HealthPath = "/health"
	UsersPath  = "/users"
)

type routeKind int

const (
	routeNone routeKind = iota
	routeHealth
	routeCreateUser
	routeReadUsers
	routeUpdateUser
	routeDeleteUser
)

type route struct {
	method string
	path   string
	prefix bool // prefix match instead of exact match
	kind   routeKind
}

// routeTable is evaluated in order; the first match wins. The prefix entries
// cover both the bare collection path and the /users/{user_id} variants.
var routeTable = []route{
	{http.MethodGet, HealthPath, false, routeHealth},
	{http.MethodPost, UsersPath, false, routeCreateUser},
	{http.MethodGet, UsersPath, true, routeReadUsers},
	{http.MethodPut, UsersPath, true, routeUpdateUser},
	{http.MethodDelete, UsersPath, true, routeDeleteUser},
}

func resolve(req *Request) routeKind {
	for _, rt := range routeTable {
		if req.Method != rt.method {
			continue
		}
		if rt.prefix && strings.HasPrefix(req.Path, rt.path) {
			return rt.kind
		}
		if !rt.prefix && req.Path == rt.path {
			return rt.kind
		}
	}
	return routeNone
}

// Router dispatches inbound events to user operations and shapes the
// response envelope. The storage dependency is injected at construction.
type Router struct {
	users  services.UserService
	logger *logrus.Logger
}

// NewRouter creates a new router backed by the given user service
func NewRouter(users services.UserService, logger *logrus.Logger) *Router {
	if logger == nil {
		logger = logrus.New()
	}
	return &Router{
		users:  users,
		logger: logger,
	}
}

// Handle processes one inbound event to completion and always produces a
// response envelope; no error escapes the invocation boundary.
func (rt *Router) Handle(ctx context.Context, req *Request) (resp *Response) {
	defer func() {
		if rec := recover(); rec != nil {
			rt.logger.WithFields(logrus.Fields{
				"method": req.Method,
				"path":   req.Path,
				"panic":  rec,
			}).Error("Unhandled fault during dispatch")
			resp = errorResponse(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", rec))
		}
	}()

	rt.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"path":   req.Path,
	}).Info("Dispatching request")

	switch resolve(req) {
	case routeHealth:
		return successResponse(map[string]string{"message": "API is up and running"}, http.StatusOK)
	case routeCreateUser:
		return rt.createUser(ctx, req)
	case routeReadUsers:
		return rt.readUsers(ctx, req)
	case routeUpdateUser:
		return rt.updateUser(ctx, req)
	case routeDeleteUser:
		return rt.deleteUser(ctx, req)
	default:
		return errorResponse(http.StatusMethodNotAllowed, "Method Not Allowed")
	}
}

func (rt *Router) createUser(ctx context.Context, req *Request) *Response {
	var payload services.CreateUserRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid JSON format")
	}

	user, err := rt.users.CreateUser(ctx, &payload)
	if err != nil {
		return rt.translateError(err)
	}

	return successResponse(user, http.StatusCreated)
}

// readUsers serves both fetch-one and list-all behind the same route prefix:
// the user_id path parameter selects which operation runs.
func (rt *Router) readUsers(ctx context.Context, req *Request) *Response {
	id := req.PathParams["user_id"]
	if id == "" {
		return rt.listUsers(ctx)
	}
	return rt.getUser(ctx, id)
}

func (rt *Router) getUser(ctx context.Context, id string) *Response {
	user, err := rt.users.GetUser(ctx, id)
	if err != nil {
		return rt.translateError(err)
	}
	return successResponse(user, http.StatusOK)
}

func (rt *Router) listUsers(ctx context.Context) *Response {
	users, err := rt.users.ListUsers(ctx)
	if err != nil {
		return rt.translateError(err)
	}
	return successResponse(users, http.StatusOK)
}

func (rt *Router) updateUser(ctx context.Context, req *Request) *Response {
	id := req.PathParams["user_id"]
	if id == "" {
		return errorResponse(http.StatusBadRequest, "Missing user ID")
	}

	var payload services.UpdateUserRequest
	if err := json.Unmarshal(req.Body, &payload); err != nil {
		return errorResponse(http.StatusBadRequest, "Invalid JSON format")
	}

	if err := rt.users.UpdateUser(ctx, id, &payload); err != nil {
		return rt.translateError(err)
	}

	return successResponse(map[string]string{"message": "User updated successfully"}, http.StatusOK)
}

func (rt *Router) deleteUser(ctx context.Context, req *Request) *Response {
	id := req.PathParams["user_id"]
	if id == "" {
		return errorResponse(http.StatusBadRequest, "Missing user ID")
	}

	if err := rt.users.DeleteUser(ctx, id); err != nil {
		return rt.translateError(err)
	}

	// Callers expect the confirmation message even though the status is 204.
	return successResponse(map[string]string{"message": fmt.Sprintf("User %s deleted successfully", id)}, http.StatusNoContent)
}

// translateError converts domain and storage failures into the uniform
// error envelope
func (rt *Router) translateError(err error) *Response {
	var storageErr *repositories.StorageError

	switch {
	case errors.Is(err, services.ErrMissingFields):
		return errorResponse(http.StatusBadRequest, "Missing required fields: name, email")
	case errors.Is(err, services.ErrMissingUserID), errors.Is(err, repositories.ErrInvalidID):
		return errorResponse(http.StatusBadRequest, "Missing user ID")
	case repositories.IsNotFound(err):
		return errorResponse(http.StatusNotFound, "User not found")
	case errors.As(err, &storageErr):
		rt.logger.WithError(err).Error("Storage operation failed")
		return errorResponse(http.StatusInternalServerError, fmt.Sprintf("DynamoDB error: %v", storageErr.Err))
	default:
		rt.logger.WithError(err).Error("Unexpected failure")
		return errorResponse(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
	}
}

func successResponse(data interface{}, statusCode int) *Response {
	body, err := json.Marshal(data)
	if err != nil {
		return errorResponse(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
	}
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}

func errorResponse(statusCode int, message string) *Response {
	body, _ := json.Marshal(map[string]string{"error": message})
	return &Response{
		StatusCode: statusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}
