package google

import (
	"context"
	"errors"
	"fmt"

	ai "github.com/greengold/carbonai"
	"github.com/greengold/carbonai/retry"
	"google.golang.org/genai"
)

// wrapError classifies a Gemini API error into a gateway error kind.
// apiKey is the credential the request was made with; an empty key turns
// authorization failures into KindAuthMissing.
// Note: genai.APIError doesn't expose headers, so Retry-After is not available.
func wrapError(err error, apiKey string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var ke ai.KindedError
	if errors.As(err, &ke) {
		return err
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		if retry.IsTransient(err) {
			return ai.NewTransientError(ai.KindNetworkFailure, "gemini request failed", 0, err)
		}
		return ai.NewError(ai.KindNetworkFailure, "gemini request failed", 0, err)
	}

	code := apiErr.Code
	msg := fmt.Sprintf("gemini API error %d", code)
	if apiErr.Status != "" {
		msg += " " + apiErr.Status
	}

	switch {
	case code == 404 || apiErr.Status == "NOT_FOUND":
		return ai.NewError(ai.KindEntityNotFound, msg, code, err)
	case apiKey == "" && (code == 400 || code == 401 || code == 403):
		return ai.NewError(ai.KindAuthMissing, msg, code, err)
	case code == 429:
		return ai.NewTransientError(ai.KindBackendRejected, msg, code, err) // Rate limited
	case code >= 500 && code < 600:
		return ai.NewTransientError(ai.KindBackendRejected, msg, code, err)
	default:
		return ai.NewError(ai.KindBackendRejected, msg, code, err)
	}
}

// operationError converts the error payload of a finished long-running
// operation into a gateway error.
func operationError(payload map[string]any) error {
	msg := "video operation failed"
	if m, ok := payload["message"].(string); ok && m != "" {
		msg += ": " + m
	}
	code := 0
	switch c := payload["code"].(type) {
	case float64:
		code = int(c)
	case int:
		code = c
	case int32:
		code = int(c)
	}
	return ai.NewError(ai.KindBackendRejected, msg, code, nil)
}
