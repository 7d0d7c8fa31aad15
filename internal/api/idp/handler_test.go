package idp

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/suite"

	"psn-emulator/internal/dependencies/mocks"
	"psn-emulator/internal/dependencies/random"
	"psn-emulator/internal/services/identity"
	"psn-emulator/internal/storage/memory"
)

type HandlerSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	handler *Handler
	ctx     context.Context
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	service := identity.New(s.storage, s.clock, random.New(), identity.DefaultConfig(), logger)
	s.Require().NoError(service.SeedUser(context.Background(), "testuser", "password123", "testuser@example.com"))

	s.handler = New(service, logger)
	s.ctx = context.Background()
}

func (s *HandlerSuite) handle(event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	resp, err := s.handler.Handle(s.ctx, event)
	s.Require().NoError(err, "Handle must render errors as envelopes, never return them")
	return resp
}

func (s *HandlerSuite) decodeBody(resp events.APIGatewayProxyResponse) map[string]any {
	var body map[string]any
	s.Require().NoError(json.Unmarshal([]byte(resp.Body), &body))
	return body
}

func (s *HandlerSuite) authenticate() map[string]any {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/token",
		Body:       `{"username": "testuser", "password": "password123"}`,
	})
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	return s.decodeBody(resp)
}

// POST /auth/token

func (s *HandlerSuite) TestAuthenticateSucceeds() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/token",
		Body:       `{"username": "testuser", "password": "password123"}`,
	})

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("application/json", resp.Headers["Content-Type"])
	s.Equal("*", resp.Headers["Access-Control-Allow-Origin"])

	body := s.decodeBody(resp)
	s.NotEmpty(body["access_token"])
	s.NotEmpty(body["refresh_token"])
	s.Equal("Bearer", body["token_type"])
	s.Equal(float64(3600), body["expires_in"])
}

func (s *HandlerSuite) TestAuthenticateWithStagePrefixedPath() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/prod/auth/token",
		Body:       `{"username": "testuser", "password": "password123"}`,
	})
	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerSuite) TestAuthenticateFailsWithWrongPassword() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/token",
		Body:       `{"username": "testuser", "password": "wrongpassword"}`,
	})

	s.Equal(http.StatusUnauthorized, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("AUTHENTICATION_ERROR", body["error"])
	s.Equal("Invalid username or password", body["message"])
	s.NotEmpty(body["timestamp"])
}

func (s *HandlerSuite) TestAuthenticateUnknownUserSameMessage() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/token",
		Body:       `{"username": "whoisthis", "password": "password123"}`,
	})

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Invalid username or password", s.decodeBody(resp)["message"])
}

func (s *HandlerSuite) TestAuthenticateMalformedJSON() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/token",
		Body:       `{not json`,
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("VALIDATION_ERROR", s.decodeBody(resp)["error"])
}

func (s *HandlerSuite) TestAuthenticateMissingBody() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/token",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("VALIDATION_ERROR", s.decodeBody(resp)["error"])
}

func (s *HandlerSuite) TestAuthenticatePasswordTooShort() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/token",
		Body:       `{"username": "testuser", "password": "short"}`,
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

// GET /auth/userinfo

func (s *HandlerSuite) TestUserInfoSucceeds() {
	tokens := s.authenticate()

	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/auth/userinfo",
		Headers:    map[string]string{"Authorization": "Bearer " + tokens["access_token"].(string)},
	})

	s.Equal(http.StatusOK, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("testuser", body["username"])
	s.Equal("testuser@example.com", body["email"])
	s.Equal(true, body["is_active"])
	s.NotContains(resp.Body, "password")
}

func (s *HandlerSuite) TestUserInfoAcceptsLowercaseHeader() {
	tokens := s.authenticate()

	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/auth/userinfo",
		Headers:    map[string]string{"authorization": "Bearer " + tokens["access_token"].(string)},
	})

	s.Equal(http.StatusOK, resp.StatusCode)
}

func (s *HandlerSuite) TestUserInfoMissingAuthorizationHeader() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/auth/userinfo",
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid or missing Authorization header", s.decodeBody(resp)["message"])
}

func (s *HandlerSuite) TestUserInfoNonBearerScheme() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/auth/userinfo",
		Headers:    map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerSuite) TestUserInfoInvalidToken() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/auth/userinfo",
		Headers:    map[string]string{"Authorization": "Bearer not-a-real-token"},
	})

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Invalid or expired token", s.decodeBody(resp)["message"])
}

func (s *HandlerSuite) TestUserInfoExpiredToken() {
	tokens := s.authenticate()

	s.clock.Advance(2 * time.Hour)

	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/auth/userinfo",
		Headers:    map[string]string{"Authorization": "Bearer " + tokens["access_token"].(string)},
	})

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Token has expired", s.decodeBody(resp)["message"])
}

// POST /auth/refresh

func (s *HandlerSuite) TestRefreshSucceeds() {
	tokens := s.authenticate()

	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/refresh",
		Body:       `{"refresh_token": "` + tokens["refresh_token"].(string) + `"}`,
	})

	s.Equal(http.StatusOK, resp.StatusCode)

	body := s.decodeBody(resp)
	s.NotEmpty(body["access_token"])
	s.NotEqual(tokens["access_token"], body["access_token"])
	// The refresh token is not rotated, so none is returned
	s.NotContains(body, "refresh_token")
}

func (s *HandlerSuite) TestRefreshRejectsAccessToken() {
	tokens := s.authenticate()

	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/refresh",
		Body:       `{"refresh_token": "` + tokens["access_token"].(string) + `"}`,
	})

	s.Equal(http.StatusUnauthorized, resp.StatusCode)
	s.Equal("Invalid token type", s.decodeBody(resp)["message"])
}

func (s *HandlerSuite) TestRefreshMissingToken() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/auth/refresh",
		Body:       `{}`,
	})

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

// Routing

func (s *HandlerSuite) TestUnknownRouteReturnsNotFound() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/auth/unknown",
	})

	s.Equal(http.StatusNotFound, resp.StatusCode)

	body := s.decodeBody(resp)
	s.Equal("NOT_FOUND", body["error"])
	s.Equal("Endpoint not found: GET /auth/unknown", body["message"])
}

func (s *HandlerSuite) TestWrongMethodReturnsNotFound() {
	resp := s.handle(events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodDelete,
		Path:       "/auth/token",
	})

	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.Equal("Endpoint not found: DELETE /auth/token", s.decodeBody(resp)["message"])
}
