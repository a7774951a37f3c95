package failure

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessagesAreDistinct(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		msg := Message(k)
		assert.NotEmpty(t, msg, "kind %s", k)
		if prev, ok := seen[msg]; ok {
			t.Errorf("kinds %s and %s share message %q", prev, k, msg)
		}
		seen[msg] = k
	}
}

func TestMessageUnknownKind(t *testing.T) {
	assert.Equal(t, Message(Unexpected), Message(Kind("SOMETHING_ELSE")))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"plain", New(NotFound), NotFound},
		{"wrapped", fmt.Errorf("lookup: %w", New(WrongState)), WrongState},
		{"with cause", Wrap(Unexpected, context.Canceled), Unexpected},
		{"foreign", errors.New("boom"), Unexpected},
		{"unknown kind", New(Kind("NOPE")), Unexpected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", New(NotFound).Error())
	assert.Equal(t, "UNEXPECTED: context canceled", Wrap(Unexpected, context.Canceled).Error())
	assert.ErrorIs(t, Wrap(Unexpected, context.Canceled), context.Canceled)
}

func TestIs(t *testing.T) {
	assert.True(t, Is(New(AlreadyRegistered), AlreadyRegistered))
	assert.False(t, Is(New(AlreadyRegistered), NotFound))
	assert.False(t, Is(nil, Unexpected))
}
