package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusPerKind(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:            http.StatusNotFound,
		KindCaptionsUnavailable: http.StatusNotFound,
		KindLanguageUnavailable: http.StatusBadRequest,
		KindInvalidRequest:      http.StatusBadRequest,
		KindUpstreamFetch:       http.StatusBadGateway,
		KindMetadataFetch:       http.StatusBadGateway,
		KindStorage:             http.StatusInternalServerError,
	}

	for kind, want := range cases {
		assert.Equal(t, want, New(kind, "x").HTTPStatus(), "kind %s", kind)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Storage("saving transcript", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "STORAGE_FAULT")
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound("abc"))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}

func TestKindOfPlainError(t *testing.T) {
	err := stderrors.New("something broke")

	assert.Equal(t, KindStorage, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.Equal(t, "internal error", Message(err))
}

func TestMessageDoesNotLeakCause(t *testing.T) {
	err := UpstreamFailure("dQw4w9WgXcQ", stderrors.New("connection reset at 10.0.0.5"))

	require.NotContains(t, Message(err), "10.0.0.5")
	assert.Contains(t, Message(err), "dQw4w9WgXcQ")
}

func TestLanguageUnavailableMessage(t *testing.T) {
	err := LanguageUnavailable("dQw4w9WgXcQ", []string{"de", "fr"})

	assert.Contains(t, err.Message, "de")
	assert.Contains(t, err.Message, "fr")
	assert.Contains(t, err.Message, "dQw4w9WgXcQ")
}
