package container

import "testing"

func TestOption(t *testing.T) {
	var zero Option[int]
	if _, ok := zero.Get(); ok {
		t.Error("zero Option is set")
	}
	if got := zero.GetOr(3); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
	if got, want := zero.String(), "None"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	some := Some(0)
	if v, ok := some.Get(); !ok || v != 0 {
		t.Errorf("got %d, %t, want 0, true", v, ok)
	}
	if got := some.GetOr(3); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if got, want := some.String(), "Some(0)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if None[string]().Set() {
		t.Error("None is set")
	}
}
