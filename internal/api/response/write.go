package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"psn-emulator/internal/apperr"
)

// headers returns the fixed header set carried by every response
func headers() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

// JSON builds a success envelope with the given status and JSON body
func JSON(status int, data any) events.APIGatewayProxyResponse {
	body, err := json.Marshal(data)
	if err != nil {
		// Serialization of our own types failing is a bug
		return Error(apperr.NewInternal())
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers(),
		Body:       string(body),
	}
}

// NoContent builds an empty 204 envelope
func NoContent() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: http.StatusNoContent,
		Headers:    headers(),
		Body:       "",
	}
}

// Error builds an error envelope from a taxonomy error
func Error(e *apperr.Error) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(ErrorBody{
		Error:     e.Kind.Code(),
		Message:   e.Message,
		Timestamp: time.Now().UTC(),
	})
	return events.APIGatewayProxyResponse{
		StatusCode: e.Kind.Status(),
		Headers:    headers(),
		Body:       string(body),
	}
}
