package checksum

import "testing"

func TestSum_Stable(t *testing.T) {
	a := Sum([]byte("a;b;c"))
	b := Sum([]byte("a;b;c"))
	if a != b {
		t.Errorf("sum not stable: %q vs %q", a, b)
	}
	if len(a) != 64 {
		t.Errorf("len = %d, want 64", len(a))
	}
	if Sum([]byte("a;b;d")) == a {
		t.Error("different input produced same sum")
	}
}

func TestShort(t *testing.T) {
	if got := Short("abc"); got != "abc" {
		t.Errorf("Short(abc) = %q", got)
	}
	if got := Short(Sum(nil)); len(got) != 12 {
		t.Errorf("len(Short) = %d, want 12", len(got))
	}
}
