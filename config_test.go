package prompter

import "testing"

func TestStyleResolverApplyEnvOverrides(t *testing.T) {
	r := DefaultDarkResolver()
	r.ApplyEnvOverrides("cu=red:an=brightgreen")

	if r.Cursor.FG != Red {
		t.Errorf("Cursor FG = %+v, want Red", r.Cursor.FG)
	}
	if r.Answer.FG != BrightGreen {
		t.Errorf("Answer FG = %+v, want BrightGreen", r.Answer.FG)
	}
	// Unrelated roles must be untouched.
	if r.Marker != DefaultDarkResolver().Marker {
		t.Errorf("Marker should be unchanged by an override that doesn't name it")
	}
}

func TestStyleResolverApplyEnvOverridesIgnoresGarbage(t *testing.T) {
	r := DefaultDarkResolver()
	before := r
	r.ApplyEnvOverrides("nonsense;no-equals-sign:zz=red:cu=not-a-color")
	if r != before {
		t.Errorf("garbage overrides should leave the resolver unchanged, got %+v", r)
	}
}

func TestStyleResolverApplyEnvOverridesEmptyIsNoop(t *testing.T) {
	r := DefaultDarkResolver()
	before := r
	r.ApplyEnvOverrides("")
	if r != before {
		t.Error("empty PROMPTER_COLORS should leave the resolver unchanged")
	}
}
