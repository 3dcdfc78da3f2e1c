package validator

import (
	"net/http"
	"testing"

	"github.com/garrettladley/wellscore/internal/xerrors"
	"github.com/google/go-cmp/cmp"
)

type name string

func (n name) Validate() map[string]string {
	var f Fields
	f.Check(n != "", "name", "is required")
	f.Check(len(n) <= 3, "name", "too long")
	return f.Map()
}

func TestValidate(t *testing.T) {
	t.Parallel()

	if err := Validate(name("abc")); err != nil {
		t.Errorf("Validate(abc) = %v, want nil", err)
	}

	err := Validate(name("abcd"))
	xerr := xerrors.As(err)
	if xerr == nil || xerr.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("Validate(abcd) = %v, want 422", err)
	}
	if diff := cmp.Diff(map[string]string{"name": "too long"}, xerr.Validation.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestFields_FirstFailureWins(t *testing.T) {
	t.Parallel()

	var f Fields
	f.Check(false, "age", "first")
	f.Check(false, "age", "second")
	f.Check(true, "sex", "unused")

	if diff := cmp.Diff(map[string]string{"age": "first"}, f.Map()); diff != "" {
		t.Errorf("Map() mismatch (-want +got):\n%s", diff)
	}
}
