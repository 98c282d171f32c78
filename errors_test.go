package ics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrError(t *testing.T) {
	assert.Equal(t, "NO: No error", StrError(nil))
	assert.Equal(t, ErrMalformedData.Error(), StrError(fmt.Errorf("%w: unbalanced end", ErrMalformedData)))
	assert.Equal(t, ErrFile.Error(), StrError(fmt.Errorf("loading: %w", fmt.Errorf("%w: missing", ErrFile))))
	assert.Equal(t, "UNKNOWN: Unknown error type", StrError(errors.New("disk on fire")))
}
