package carbonai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrEmptyInput(t *testing.T) {
	t.Run("is a sentinel error", func(t *testing.T) {
		assert.Error(t, ErrEmptyInput)
		assert.Equal(t, "empty input", ErrEmptyInput.Error())
	})

	t.Run("can be compared with errors.Is", func(t *testing.T) {
		err := fmt.Errorf("search: %w", ErrEmptyInput)
		assert.True(t, errors.Is(err, ErrEmptyInput))
	})
}

func TestError(t *testing.T) {
	t.Run("message includes cause", func(t *testing.T) {
		err := NewError(KindBackendRejected, "generate content", 400, errors.New("bad request"))
		assert.Equal(t, "generate content: bad request", err.Error())
	})

	t.Run("message without cause", func(t *testing.T) {
		err := NewError(KindMalformedResponse, "video operation finished without a URI", 0, nil)
		assert.Equal(t, "video operation finished without a URI", err.Error())
	})

	t.Run("accessors", func(t *testing.T) {
		cause := errors.New("boom")
		err := NewTransientError(KindNetworkFailure, "dial", 0, cause)
		assert.Equal(t, KindNetworkFailure, err.Kind())
		assert.True(t, err.Retryable())
		assert.Equal(t, 0, err.StatusCode())
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("NewError is not retryable", func(t *testing.T) {
		err := NewError(KindBackendRejected, "forbidden", 403, nil)
		assert.False(t, err.Retryable())
		assert.Equal(t, 403, err.StatusCode())
	})
}

func TestKindHelpers(t *testing.T) {
	wrapped := fmt.Errorf("gateway: %w", NewTransientError(KindBackendRejected, "overloaded", 503, nil))

	tests := []struct {
		name      string
		err       error
		kind      ErrorKind
		retryable bool
		code      int
		reauth    bool
	}{
		{"nil", nil, "", false, 0, false},
		{"plain error", errors.New("x"), "", false, 0, false},
		{"wrapped transient", wrapped, KindBackendRejected, true, 503, false},
		{"entity not found", NewError(KindEntityNotFound, "not found", 404, nil), KindEntityNotFound, false, 404, true},
		{"auth missing", NewError(KindAuthMissing, "no key", 401, nil), KindAuthMissing, false, 401, true},
		{"timeout", NewError(KindTimeout, "polls exhausted", 0, nil), KindTimeout, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, KindOf(tt.err))
			assert.Equal(t, tt.retryable, IsRetryable(tt.err))
			assert.Equal(t, tt.code, StatusCodeOf(tt.err))
			assert.Equal(t, tt.reauth, NeedsReauth(tt.err))
			if tt.kind != "" {
				assert.True(t, IsKind(tt.err, tt.kind))
			}
		})
	}

	assert.False(t, IsKind(nil, ""))
}

func TestImageError(t *testing.T) {
	underlying := errors.New("illegal base64 data at input byte 4")
	imgErr := &ImageError{Op: "decode", Src: "start image", Err: underlying}

	assert.Equal(t, "image decode error for start image: illegal base64 data at input byte 4", imgErr.Error())
	assert.True(t, errors.Is(imgErr, underlying))
	assert.Nil(t, (&ImageError{Op: "decode"}).Unwrap())
}
