package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	dnderr "github.com/KirkDiggler/creaturescripts/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCode(t *testing.T) {
	base := dnderr.ReentrancyExhausted(21)
	wrapped := dnderr.Wrap(base, "executeLogin")

	require.NotNil(t, wrapped)
	assert.Equal(t, dnderr.CodeReentrancyExhausted, wrapped.Code)
	assert.True(t, dnderr.IsReentrancyExhausted(wrapped))
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapUnknown(t *testing.T) {
	wrapped := dnderr.Wrap(fmt.Errorf("boom"), "loading")
	assert.Equal(t, dnderr.CodeUnknown, wrapped.Code)
	assert.Equal(t, "loading: boom", wrapped.Error())

	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
}

func TestScriptFaultMeta(t *testing.T) {
	err := dnderr.ScriptFault(fmt.Errorf("attempt to call a nil value"), "login.lua")

	assert.True(t, dnderr.IsScriptFault(err))
	assert.Equal(t, "login.lua", dnderr.GetMeta(err)["chunk"])

	// Wrapping copies metadata instead of sharing it
	outer := dnderr.Wrap(err, "reload")
	outer.WithMeta("chunk", "other.lua")
	assert.Equal(t, "login.lua", dnderr.GetMeta(err)["chunk"])
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want dnderr.Code
	}{
		{"missing name", dnderr.MissingName(), dnderr.CodeMissingName},
		{"invalid type", dnderr.InvalidTypef("no valid type %q", "logn"), dnderr.CodeInvalidType},
		{"invalid kind", dnderr.InvalidKind("welcome"), dnderr.CodeInvalidKind},
		{"not found", dnderr.NotFoundf("definition %s", "x"), dnderr.CodeNotFound},
		{"plain", fmt.Errorf("plain"), dnderr.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dnderr.GetCode(tt.err))
		})
	}
}
