package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "subject", SubjectCtxKey.String())
}

func TestGetSubjectFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "present", ctx: context.WithValue(context.Background(), SubjectCtxKey, "user_1"), want: "user_1", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: context.WithValue(context.Background(), SubjectCtxKey, "")},
		{name: "wrong type", ctx: context.WithValue(context.Background(), SubjectCtxKey, 42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetSubjectFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetProfileIDFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), ProfileIDCtxKey, "p-1")
	id, ok := GetProfileIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "p-1", id)

	_, ok = GetProfileIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", GetTraceIDFromContext(context.Background()))
	assert.Equal(t, "t", GetTraceIDFromContext(context.WithValue(context.Background(), TraceIDCtxKey, "t")))
}
