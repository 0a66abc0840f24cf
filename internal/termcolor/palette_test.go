package termcolor

import "testing"

func TestCountStyleBasic8(t *testing.T) {
	if s := CountStyle(2, ProfileBasic8); s.FGBase == nil || *s.FGBase != 3 || !s.Bold {
		t.Fatalf("count 2 should be bold yellow, got %+v", s)
	}
	if s := CountStyle(7, ProfileBasic8); s.FGBase == nil || *s.FGBase != 1 {
		t.Fatalf("count 7 should be red, got %+v", s)
	}
	if s := CountStyle(1, ProfileBasic8); s.FGBase == nil || *s.FGBase != 2 {
		t.Fatalf("count 1 should use the unique style, got %+v", s)
	}
}

func TestCountStyleGradient(t *testing.T) {
	low := CountStyle(2, ProfileTrueColor)
	high := CountStyle(severityCeiling, ProfileTrueColor)
	if low.FGTrue == nil || high.FGTrue == nil {
		t.Fatal("truecolor profile should set FGTrue")
	}
	if *low.FGTrue != [3]uint8{255, 255, 0} {
		t.Fatalf("count 2 should be yellow, got %v", *low.FGTrue)
	}
	if *high.FGTrue != [3]uint8{255, 0, 0} {
		t.Fatalf("ceiling should be red, got %v", *high.FGTrue)
	}
	mid := CountStyle(3, ProfileTrueColor)
	if g := mid.FGTrue[1]; g == 0 || g == 255 {
		t.Fatalf("middle count should be between yellow and red, got %v", *mid.FGTrue)
	}

	s := CountStyle(severityCeiling, ProfileANSI256)
	if s.FG256 == nil || *s.FG256 != 196 {
		t.Fatalf("256 profile red should map to 196, got %+v", s.FG256)
	}
}

func TestRGBToANSI256Grays(t *testing.T) {
	if got := rgbToANSI256(0, 0, 0); got != 16 {
		t.Fatalf("black => %d", got)
	}
	if got := rgbToANSI256(255, 255, 255); got != 231 {
		t.Fatalf("white => %d", got)
	}
}
