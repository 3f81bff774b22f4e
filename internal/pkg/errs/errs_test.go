//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"campus-reassign/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "dial timeout" }

func TestMark(t *testing.T) {
	t.Run("sentinel visible to the standard errors.Is", func(t *testing.T) {
		err := errs.Mark(errs.New("row missing"), errs.ErrRequestNotFound)

		assert.True(t, errors.Is(err, errs.ErrRequestNotFound))
		assert.True(t, cr.Is(err, errs.ErrRequestNotFound))
	})

	t.Run("sentinel survives further wrapping", func(t *testing.T) {
		err := errs.Mark(errs.New("row missing"), errs.ErrPolicyNotFound)
		err = errs.Wrap(err, "loading policy")

		assert.True(t, errors.Is(err, errs.ErrPolicyNotFound))
	})

	t.Run("cause stays reachable through errors.As", func(t *testing.T) {
		cause := timeoutError{}
		err := errs.Mark(errs.Wrap(cause, "query failed"), errs.ErrDependencyFailed)

		var te timeoutError
		require.True(t, errors.As(err, &te))
		assert.True(t, errors.Is(err, errs.ErrDependencyFailed))
	})

	t.Run("message is the cause's, not the sentinel's", func(t *testing.T) {
		err := errs.Mark(errs.New("row missing"), errs.ErrRequestNotFound)
		assert.Equal(t, "row missing", err.Error())
	})

	t.Run("marking nil yields the sentinel itself", func(t *testing.T) {
		err := errs.Mark(nil, errs.ErrConcurrentUpdate)
		assert.Same(t, errs.ErrConcurrentUpdate, err)
	})

	t.Run("marking does not conflate other sentinels", func(t *testing.T) {
		err := errs.Mark(errs.New("row missing"), errs.ErrRequestNotFound)
		assert.False(t, errors.Is(err, errs.ErrPolicyNotFound))
	})

	t.Run("verbose formatting keeps the cause detail", func(t *testing.T) {
		err := errs.Mark(errs.Wrap(errs.New("low level"), "mid level"), errs.ErrDatabaseOperationFailed)
		assert.Contains(t, fmt.Sprintf("%+v", err), "low level")
	})
}
