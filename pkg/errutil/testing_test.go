// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package errutil_test

import (
	"testing"

	"github.com/samber/oops"

	"github.com/duskhollow/worldpack/pkg/errutil"
)

func TestAssertErrorCode_MatchingCode(t *testing.T) {
	err := oops.Code("duplicate_id").Errorf("zone already registered")
	errutil.AssertErrorCode(t, err, "duplicate_id")
}

func TestAssertErrorContext_MatchingKeyValue(t *testing.T) {
	err := oops.With("zone_id", uint32(1000)).Errorf("zone not in catalog")
	errutil.AssertErrorContext(t, err, "zone_id", uint32(1000))
}

func TestAssertErrorHint_MatchingHint(t *testing.T) {
	err := oops.Hint("check the pack manifest").Errorf("manifest rejected")
	errutil.AssertErrorHint(t, err, "check the pack manifest")
}
