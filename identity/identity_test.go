package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clanguml-go/core/identity"
)

func TestOfIsStable(t *testing.T) {
	assert.Equal(t, identity.Of("A::B"), identity.Of("A::B"))
}

func TestOfDistinguishesNonCollidingInputs(t *testing.T) {
	assert.NotEqual(t, identity.Of("A::B"), identity.Of("A::C"))
	assert.NotEqual(t, identity.Of("widget"), identity.Of("impl::widget"))
	assert.NotEqual(t, identity.Of("A::AA"), identity.Of("A::AA::AAA"))
}

func TestOfHighThreeBitsClear(t *testing.T) {
	assert.Equal(t, uint64(0), uint64(identity.Of("A::B"))>>61)
}

func TestCanonicalizeCollapsesWhitespaceAndColonRuns(t *testing.T) {
	assert.Equal(t, "a::b", identity.Canonicalize("a::  ::b"))
	assert.Equal(t, "a b", identity.Canonicalize("a   b"))
	assert.Equal(t, identity.Of("a::b"), identity.Of("a::  ::b"))
}

func TestRegistryClaimIdempotent(t *testing.T) {
	reg := identity.NewRegistry()
	id1, err := reg.Claim("A::B")
	require.NoError(t, err)
	id2, err := reg.Claim("A::B")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
}

func TestRegistryClaimCanonicalEquivalentIsNotCollision(t *testing.T) {
	reg := identity.NewRegistry()
	_, err := reg.Claim("A::B")
	require.NoError(t, err)

	// synthesize a name that is highly unlikely to differ in canonical
	// form but force a collision by registering the same id manually via
	// a second registry check is not possible without an actual colliding
	// pair; instead verify that claiming the identical canonical string a
	// second time never errors, and that two distinct strings which
	// canonicalize to the same value are treated as the same name, not a
	// collision.
	_, err = reg.Claim("A::  ::B")
	require.NoError(t, err)
}
