package player

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
	"psn-emulator/internal/model"
	playersvc "psn-emulator/internal/services/player"
)

// Handler routes player account API events to the player service.
type Handler struct {
	service *playersvc.Service
	logger  *slog.Logger
}

// New creates a new player API handler
func New(service *playersvc.Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle dispatches one API Gateway proxy event. Route classification runs
// in fixed precedence order: the /stats suffix is matched before the generic
// single-resource route since both match the same path substring.
func (h *Handler) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	h.logger.Info("player api request received",
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
	case method == http.MethodPost && strings.HasSuffix(path, "/players"):
		return h.create(ctx, event)
	case method == http.MethodGet && strings.HasSuffix(path, "/players"):
		return h.list(ctx)
	case method == http.MethodGet && strings.Contains(path, "/players/") && strings.HasSuffix(path, "/stats"):
		id, err := playerID(event)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return h.getStats(ctx, id)
	case method == http.MethodGet && strings.Contains(path, "/players/"):
		id, err := playerID(event)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return h.get(ctx, id)
	case method == http.MethodPut && strings.Contains(path, "/players/"):
		id, err := playerID(event)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return h.update(ctx, id, event)
	case method == http.MethodDelete && strings.Contains(path, "/players/"):
		id, err := playerID(event)
		if err != nil {
			return events.APIGatewayProxyResponse{}, err
		}
		return h.delete(ctx, id)
	default:
		return events.APIGatewayProxyResponse{},
			apperr.Newf(apperr.NotFound, "Endpoint not found: %s %s", method, path)
	}
}

// create handles POST /players
func (h *Handler) create(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req request.CreatePlayerRequest
	if err := request.Decode(event.Body, &req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	account, err := h.service.Create(ctx, req.Username, req.Email, req.DisplayName)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusCreated, account), nil
}

// get handles GET /players/{player_id}
func (h *Handler) get(ctx context.Context, id model.PlayerID) (events.APIGatewayProxyResponse, error) {
	account, err := h.service.Get(ctx, id)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, account), nil
}

// update handles PUT /players/{player_id}
func (h *Handler) update(ctx context.Context, id model.PlayerID, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	var req request.UpdatePlayerRequest
	if err := request.Decode(event.Body, &req); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	patch := model.PlayerPatch{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	}
	if req.Status != nil {
		status := model.PlayerStatus(*req.Status)
		patch.Status = &status
	}

	account, err := h.service.Update(ctx, id, patch)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, account), nil
}

// delete handles DELETE /players/{player_id}
func (h *Handler) delete(ctx context.Context, id model.PlayerID) (events.APIGatewayProxyResponse, error) {
	if err := h.service.Delete(ctx, id); err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.NoContent(), nil
}

// list handles GET /players
func (h *Handler) list(ctx context.Context) (events.APIGatewayProxyResponse, error) {
	players, err := h.service.List(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, response.PlayerListFromModels(players)), nil
}

// getStats handles GET /players/{player_id}/stats
func (h *Handler) getStats(ctx context.Context, id model.PlayerID) (events.APIGatewayProxyResponse, error) {
	stats, err := h.service.GetStats(ctx, id)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return response.JSON(http.StatusOK, stats), nil
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

// playerID extracts the player_id path parameter from the event
func playerID(event events.APIGatewayProxyRequest) (model.PlayerID, error) {
	id := event.PathParameters["player_id"]
	if id == "" {
		return "", apperr.NewValidation("player_id is required")
	}
	return model.PlayerID(id), nil
}
