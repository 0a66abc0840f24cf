package termcolor

import (
	"bytes"
	"os"
	"testing"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		input string
		want  ColorMode
		err   bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"always", ModeAlways, false},
		{"never", ModeNever, false},
		{"ALWAYS", ModeAlways, false},
		{"invalid", ModeAuto, true},
	}
	for _, tc := range cases {
		got, err := ParseMode(tc.input)
		if tc.err {
			if err == nil {
				t.Fatalf("ParseMode(%q) expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMode(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMode(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}

func TestDetectModeEnvironmentOverrides(t *testing.T) {
	_, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer func() {
		_ = w.Close()
	}()

	cases := []struct {
		env  map[string]string
		want ColorMode
	}{
		{map[string]string{"NO_COLOR": "1"}, ModeNever},
		{map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, ModeNever},
		{map[string]string{"CLICOLOR": "0"}, ModeNever},
		{map[string]string{"TERM": "dumb", "FORCE_COLOR": "1"}, ModeNever},
		{map[string]string{"CLICOLOR_FORCE": "1"}, ModeAlways},
		{map[string]string{"FORCE_COLOR": "3"}, ModeAlways},
		{map[string]string{"FORCE_COLOR": "0"}, ModeNever},
		{nil, ModeNever},
	}
	for _, tc := range cases {
		if got := DetectMode(w, tc.env); got != tc.want {
			t.Fatalf("DetectMode(%v)=%v want %v", tc.env, got, tc.want)
		}
	}
}

func TestResolveNonTerminalWriter(t *testing.T) {
	var buf bytes.Buffer
	if Resolve(ModeAuto, &buf, nil) {
		t.Fatal("auto mode must not color a buffer")
	}
	if !Resolve(ModeAlways, &buf, map[string]string{"NO_COLOR": "1"}) {
		t.Fatal("always mode must win over NO_COLOR")
	}
	if Resolve(ModeNever, &buf, map[string]string{"FORCE_COLOR": "1"}) {
		t.Fatal("never mode must win over FORCE_COLOR")
	}
	if !Resolve(ModeAuto, &buf, map[string]string{"FORCE_COLOR": "1"}) {
		t.Fatal("FORCE_COLOR should enable auto mode")
	}
}

func TestDetectProfile(t *testing.T) {
	if got := DetectProfile(map[string]string{"COLORTERM": "truecolor"}); got != ProfileTrueColor {
		t.Fatalf("expected truecolor, got %v", got)
	}
	if got := DetectProfile(map[string]string{"TERM": "xterm-256color"}); got != ProfileANSI256 {
		t.Fatalf("expected 256, got %v", got)
	}
	if got := DetectProfile(nil); got != ProfileBasic8 {
		t.Fatalf("expected basic8, got %v", got)
	}
}

func TestEnvMap(t *testing.T) {
	env := EnvMap([]string{"A=1", "B=x=y", "EMPTY", ""})
	if env["A"] != "1" || env["B"] != "x=y" {
		t.Fatalf("unexpected env: %v", env)
	}
	if v, ok := env["EMPTY"]; !ok || v != "" {
		t.Fatalf("EMPTY should be present and empty: %v", env)
	}
}
