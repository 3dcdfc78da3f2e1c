package xcontext

import (
	"context"
	"testing"
)

func TestUserID(t *testing.T) {
	t.Parallel()

	if _, ok := GetUserID(context.Background()); ok {
		t.Error("GetUserID() on empty context reported ok")
	}
	if _, ok := GetUserID(SetUserID(context.Background(), "")); ok {
		t.Error("GetUserID() with empty ID reported ok")
	}

	got, ok := GetUserID(SetUserID(context.Background(), "42"))
	if !ok || got != "42" {
		t.Errorf("GetUserID() = %q, %v; want 42, true", got, ok)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	got, ok := GetRequestID(SetRequestID(context.Background(), "abc"))
	if !ok || got != "abc" {
		t.Errorf("GetRequestID() = %q, %v; want abc, true", got, ok)
	}
}
