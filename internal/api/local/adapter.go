package local

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"

	"psn-emulator/internal/api/response"
	"psn-emulator/internal/apperr"
)

// EventHandler is the Lambda-style dispatch signature shared by both APIs
type EventHandler func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// Adapt wraps a Lambda-style event handler as an http.Handler so the same
// dispatch core serves the local dev server. Route variables extracted by
// mux become the event's path parameters, matching what API Gateway does.
func Adapt(handle EventHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeProxyResponse(w, response.Error(apperr.NewValidation("failed to read request body")))
			return
		}

		headers := make(map[string]string, len(r.Header))
		for name := range r.Header {
			headers[name] = r.Header.Get(name)
		}

		event := events.APIGatewayProxyRequest{
			HTTPMethod:     r.Method,
			Path:           r.URL.Path,
			Headers:        headers,
			Body:           string(body),
			PathParameters: mux.Vars(r),
		}

		resp, err := handle(r.Context(), event)
		if err != nil {
			// Event handlers render their own errors; reaching this is a bug
			writeProxyResponse(w, response.Error(apperr.NewInternal()))
			return
		}

		writeProxyResponse(w, resp)
	})
}

// writeProxyResponse copies a proxy response onto an http.ResponseWriter
func writeProxyResponse(w http.ResponseWriter, resp events.APIGatewayProxyResponse) {
	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}
	w.WriteHeader(resp.StatusCode)
	if resp.Body != "" {
		_, _ = w.Write([]byte(resp.Body))
	}
}
