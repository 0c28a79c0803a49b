package theme

import "testing"

func TestDerivedThemesFillEveryRole(t *testing.T) {
	for _, th := range All {
		roles := []struct {
			name  string
			value string
		}{
			{"Background", string(th.Background)},
			{"Surface", string(th.Surface)},
			{"SurfaceBright", string(th.SurfaceBright)},
			{"TextMuted", string(th.TextMuted)},
			{"TextPrimary", string(th.TextPrimary)},
			{"Accent", string(th.Accent)},
			{"Success", string(th.Success)},
			{"Warning", string(th.Warning)},
			{"Danger", string(th.Danger)},
		}
		for _, r := range roles {
			if r.value == "" {
				t.Errorf("%s: %s is empty", th.Name, r.name)
			}
		}
	}
}

func TestSurfaceSitsBetweenBackgroundAndText(t *testing.T) {
	if FlexokiDark.Surface == FlexokiDark.Background || FlexokiDark.Surface == FlexokiDark.TextPrimary {
		t.Errorf("Surface = %s should be a blend", FlexokiDark.Surface)
	}
	if got := blend("#000000", "#ffffff", 0); got != "#000000" {
		t.Errorf("blend at 0 = %s, want #000000", got)
	}
	if got := blend("#000000", "#ffffff", 1); got != "#ffffff" {
		t.Errorf("blend at 1 = %s, want #ffffff", got)
	}
}

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %s", got.Name)
	}
	if got := ByName("nope"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(nope) = %s, want %s", got.Name, FlexokiDark.Name)
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
	if n := len(Names()); n != len(All) {
		t.Errorf("Names() has %d entries, want %d", n, len(All))
	}
}

func TestMustHex(t *testing.T) {
	if got := mustHex("#FF0000").Hex(); got != "#ff0000" {
		t.Errorf("mustHex(#FF0000) = %s, want #ff0000", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("mustHex should panic on a malformed color")
		}
	}()
	mustHex("not-a-color")
}
