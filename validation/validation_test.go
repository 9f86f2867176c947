package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInvalid(t *testing.T) {
	err := Invalid()

	msg, ok := err.Message()
	require.False(t, ok)
	require.Empty(t, msg)
	require.Equal(t, "validation error", err.Error())
}

func TestInvalidf(t *testing.T) {
	err := Invalidf("field %q is %d characters, want %d", "id", 20, 22)

	msg, ok := err.Message()
	require.True(t, ok)
	require.Equal(t, `field "id" is 20 characters, want 22`, msg)
	require.Equal(t, `validation error: field "id" is 20 characters, want 22`, err.Error())
}

// An empty formatted message is still a message; only Invalid() means "no
// detail available".
func TestEmptyMessageIsDistinctFromNoMessage(t *testing.T) {
	withEmpty := Invalidf("")
	without := Invalid()

	msg, ok := withEmpty.Message()
	require.True(t, ok)
	require.Empty(t, msg)

	_, ok = without.Message()
	require.False(t, ok)
}

func TestValidationErrorAsError(t *testing.T) {
	var err error = Invalidf("bad value")
	wrapped := fmt.Errorf("load credential: %w", err)

	var verr *ValidationError
	require.True(t, errors.As(wrapped, &verr))
	msg, ok := verr.Message()
	require.True(t, ok)
	require.Equal(t, "bad value", msg)
}

// credentialStub has state a domain expert would reject, but it embeds
// Unchecked and performs no checks of its own.
type credentialStub struct {
	Unchecked

	SignatureValid bool
	Revoked        bool
}

// checkedCredential overrides the embedded default with a real check.
type checkedCredential struct {
	Unchecked

	SignatureValid bool
}

func (c checkedCredential) Validate() error {
	if !c.SignatureValid {
		return Invalidf("credential signature is invalid")
	}
	return nil
}

// Embedding Unchecked means any state passes, including obviously broken
// state. That is the documented contract, pinned here so a change to the
// default is a deliberate one.
func TestUncheckedDefaultAlwaysSucceeds(t *testing.T) {
	stubs := []credentialStub{
		{},
		{SignatureValid: false, Revoked: true},
		{SignatureValid: true, Revoked: true},
	}

	for _, stub := range stubs {
		var v Validatable = stub
		require.NoError(t, v.Validate())
	}
}

func TestOverriddenValidateRuns(t *testing.T) {
	var valid Validatable = checkedCredential{SignatureValid: true}
	require.NoError(t, valid.Validate())

	var invalid Validatable = checkedCredential{SignatureValid: false}
	err := invalid.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
}
