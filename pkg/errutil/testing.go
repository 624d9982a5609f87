// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireOops unwraps err into its oops form, failing the test when err is
// nil or was not built through this package.
func requireOops(t *testing.T, err error) oops.OopsError {
	t.Helper()
	require.Error(t, err)
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "error %q (%T) carries no structured metadata", err, err)
	return oopsErr
}

// AssertErrorCode asserts that err carries the given machine-readable code.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	oopsErr := requireOops(t, err)
	assert.Equal(t, code, oopsErr.Code(), "error code mismatch for %q", err)
}

// AssertErrorContext asserts that err carries the given context key with the
// given value.
func AssertErrorContext(t *testing.T, err error, key string, value any) {
	t.Helper()
	oopsErr := requireOops(t, err)
	ctx := oopsErr.Context()
	require.Contains(t, ctx, key, "error %q has no context key %q", err, key)
	assert.Equal(t, value, ctx[key], "context value mismatch for key %q", key)
}

// AssertErrorHint asserts that err carries the given operator hint.
func AssertErrorHint(t *testing.T, err error, hint string) {
	t.Helper()
	oopsErr := requireOops(t, err)
	assert.Equal(t, hint, oopsErr.Hint(), "error hint mismatch for %q", err)
}
