package prompter

import "testing"

func TestVRequired(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"x", true},
	}
	for _, c := range cases {
		err := VRequired(c.in)
		if (err == nil) != c.want {
			t.Errorf("VRequired(%q) err=%v, want valid=%v", c.in, err, c.want)
		}
	}
}

func TestVEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a@b.com", true},
		{"noatsign", false},
		{"@b.com", false},
		{"a@", false},
		{"a@b", false},
	}
	for _, c := range cases {
		err := VEmail(c.in)
		if (err == nil) != c.want {
			t.Errorf("VEmail(%q) err=%v, want valid=%v", c.in, err, c.want)
		}
	}
}

func TestVMinMaxLen(t *testing.T) {
	min3 := VMinLen(3)
	if min3("ab") == nil {
		t.Error("expected error for string shorter than min")
	}
	if min3("abc") != nil {
		t.Error("expected no error at exact min length")
	}

	max3 := VMaxLen(3)
	if max3("abcd") == nil {
		t.Error("expected error for string longer than max")
	}
	if max3("abc") != nil {
		t.Error("expected no error at exact max length")
	}
}

func TestVMatch(t *testing.T) {
	digits := VMatch(`^\d+$`)
	if digits("123") != nil {
		t.Error("expected digits to match")
	}
	if digits("abc") == nil {
		t.Error("expected non-digits to fail")
	}
	if digits("") != nil {
		t.Error("empty string should be allowed (pair with VRequired if mandatory)")
	}
}

func TestVTrue(t *testing.T) {
	if VTrue(false) == nil {
		t.Error("expected error for false")
	}
	if VTrue(true) != nil {
		t.Error("expected no error for true")
	}
}
