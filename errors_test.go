package cfscrape_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/cfscrape"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cfscrape.Errorf(cfscrape.ENOTFOUND, "problem %q not found", "1/A")

	assert.Equal(t, cfscrape.ENOTFOUND, cfscrape.ErrorCode(err))
	assert.Equal(t, "problem \"1/A\" not found", cfscrape.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cfscrape.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, cfscrape.EINTERNAL, cfscrape.ErrorCode(errors.New("boom")))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching: %w", cfscrape.Errorf(cfscrape.ETIMEOUT, "marker did not appear"))

	assert.Equal(t, cfscrape.ETIMEOUT, cfscrape.ErrorCode(err))
	assert.Equal(t, "marker did not appear", cfscrape.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cfscrape.ErrorMessage(nil))
}
