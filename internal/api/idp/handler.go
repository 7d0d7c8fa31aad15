package idp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"psn-emulator/internal/api/request"
	"psn-emulator/internal/api/response"
	"psn-emulator/internal/apperr"
	"psn-emulator/internal/services/identity"
)

// Handler routes identity API events to the identity service.
// It is stateless per request: every event is classified against a fixed
// set of (method, path suffix) routes and dispatched to exactly one of them.
type Handler struct {
	service *identity.Service
	logger  *slog.Logger
}

// New creates a new identity API handler
func New(service *identity.Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle dispatches one API Gateway proxy event. It never returns a non-nil
// error: every failure is rendered as an error envelope, and anything outside
// the taxonomy is logged and reported only as the generic internal message.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("idp api request received",
		slog.String("method", event.HTTPMethod),
		slog.String("path", event.Path),
	)

	resp, err := h.route(ctx, event)
	if err != nil {
		return h.errorResponse(err), nil
	}
	return resp, nil
}

func (h *Handler) route(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	method, path := event.HTTPMethod, event.Path

	switch {
	case method == http.MethodPost && strings.HasSuffix(path, "/auth/token"):
		return h.authenticate(ctx, event)
	case method == http.MethodGet && strings.HasSuffix(path, "/auth/userinfo"):
		return h.userInfo(ctx, event)
	case method == http.MethodPost && strings.HasSuffix(path, "/auth/refresh"):
		return h.refresh(ctx, event)
	default:
		return events.APIGatewayProxyResponse{},
			apperr.Newf(apperr.NotFound, "Endpoint not found: %s %s", method, path)
	}
}

// authenticate handles POST /auth/token
func (h *Handler) authenticate(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req request.AuthenticationRequest
	if err := request.Decode(event.Body, &req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	pair, err := h.service.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, pair), nil
}

// userInfo handles GET /auth/userinfo
func (h *Handler) userInfo(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	token, err := bearerToken(event)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	user, err := h.service.GetUserInfo(ctx, token)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, response.UserInfoFromModel(user)), nil
}

// refresh handles POST /auth/refresh
func (h *Handler) refresh(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req request.RefreshTokenRequest
	if err := request.Decode(event.Body, &req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	pair, err := h.service.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, pair), nil
}

// errorResponse is the single catch point mapping errors to envelopes
func (h *Handler) errorResponse(err error) events.APIGatewayProxyResponse {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == apperr.Internal {
			h.logger.Error("internal error", slog.String("error", err.Error()))
		}
		return response.Error(appErr)
	}

	h.logger.Error("unexpected error", slog.String("error", err.Error()))
	return response.Error(apperr.NewInternal())
}

// bearerToken extracts the bearer token from the Authorization header
func bearerToken(event events.APIGatewayProxyRequest) (string, error) {
	auth := event.Headers["Authorization"]
	if auth == "" {
		// API Gateway may lowercase header names
		auth = event.Headers["authorization"]
	}
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", apperr.NewValidation("Invalid or missing Authorization header")
	}
	return strings.TrimPrefix(auth, "Bearer "), nil
}
