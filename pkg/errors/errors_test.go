package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappedSentinelMatchesByCode(t *testing.T) {
	cause := fmt.Errorf("insert enrollment: duplicate key")
	err := fmt.Errorf("create enrollment: %w", Wrap(cause, ErrAlreadyEnrolled.Code, ErrAlreadyEnrolled.Status, "already enrolled"))

	assert.True(t, errors.Is(err, ErrAlreadyEnrolled))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.ErrorIs(t, err, cause)
}

func TestFromError(t *testing.T) {
	assert.Nil(t, FromError(nil))

	plain := FromError(errors.New("boom"))
	assert.Equal(t, ErrInternal.Code, plain.Code)
	assert.Equal(t, http.StatusInternalServerError, plain.Status)

	typed := Clone(ErrEnrollmentReview, "")
	assert.Same(t, typed, FromError(fmt.Errorf("wrap: %w", typed)))
}
