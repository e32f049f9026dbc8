package errs_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/errs"
)

func TestNew_FieldsAreSetCorrectly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    errs.Code
		message string
	}{
		{"bad argument", errs.CodeBadArgument, "population size must be positive"},
		{"model error", errs.CodeModelError, "no docking site attached"},
		{"assertion", errs.CodeAssertion, "unreachable request id"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			e := errs.New(tc.code, tc.message)
			require.NotNil(t, e)
			assert.Equal(t, tc.code, e.Code)
			assert.Equal(t, tc.message, e.Message)
			assert.Empty(t, e.Detail)
			assert.Nil(t, e.Cause)
		})
	}
}

func TestWrap_NilErrReturnsNil(t *testing.T) {
	t.Parallel()
	assert.Nil(t, errs.Wrap(nil, errs.CodeFileError, "should not happen"))
}

func TestWrap_PreservesOriginalCodeWhenUnknown(t *testing.T) {
	t.Parallel()
	inner := errs.ModelError("dangling pseudo-atom")
	wrapped := errs.Wrap(inner, errs.CodeUnknown, "sync to model failed")
	assert.Equal(t, errs.CodeModelError, wrapped.Code)
	assert.True(t, stderrors.Is(wrapped, wrapped))
	var de *errs.DockError
	require.True(t, stderrors.As(wrapped, &de))
	assert.Equal(t, inner, de.Cause)
}

func TestIsCode_TraversesChain(t *testing.T) {
	t.Parallel()
	inner := errs.FileMissingParameter("VDW", "SCORING_FUNCTION")
	outer := errs.Wrap(inner, errs.CodeFileError, "loading scoring function")
	assert.True(t, errs.IsCode(outer, errs.CodeFileError))
	assert.False(t, errs.IsCode(outer, errs.CodeBadArgument))
}

func TestWithDetailAndCauseAreNilSafe(t *testing.T) {
	t.Parallel()
	var e *errs.DockError
	assert.Nil(t, e.WithDetail("x"))
	assert.Nil(t, e.WithCause(stderrors.New("x")))
}

func TestErrorStringIncludesDetailWhenPresent(t *testing.T) {
	t.Parallel()
	e := errs.BadArgument("grid step must be positive").WithDetail("got -0.5")
	assert.Contains(t, e.Error(), "BadArgument")
	assert.Contains(t, e.Error(), "got -0.5")
}
