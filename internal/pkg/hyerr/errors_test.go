package hyerr

import (
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(CodeInvalidPayload, "invalid payload: input is not a valid JSON document")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	derived := NewPropertyType("packages", "array", "string")

	assert.True(t, errors.Is(derived, ErrPropertyType))
	assert.False(t, errors.Is(derived, ErrNotFound))
	assert.True(t, errors.Is(pkgerrors.Wrap(derived, "reading packages"), ErrPropertyType), "expect wrapped error to still match")

	assert.Equal(t, `PROPERTY_TYPE_MISMATCH: property "packages": expected array, got string`, derived.Error())
	assert.Equal(t, "packages", (*derived.Extras)["property"])
	assert.Nil(t, ErrPropertyType.Extras, "expect sentinel to stay untouched")
}
