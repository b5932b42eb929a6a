package bfm

import "testing"

func TestSanitizeCancelsRuns(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"+-", ""},
		{"-+", ""},
		{"><", ""},
		{"<>", ""},
		{"++--+", "+"},
		{"+++--", "+"},
		{">><<<", "<"},
		{"+>-<", "+>-<"},
		{"abc+def", "+"}, // non-commands are dropped
	}
	for _, tt := range tests {
		got := string(Sanitize([]byte(tt.in)))
		if got != tt.want {
			t.Errorf("Sanitize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestSanitizeDeadLoops(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+[-][+]", "+[-]"},
		{"+[-][+[-]]", "+[-]"},
		{"+[-][+].", "+[-]."},
		{"+[-][[][]]+", "+[-]+"},
	}
	for _, tt := range tests {
		got := string(Sanitize([]byte(tt.in)))
		if got != tt.want {
			t.Errorf("Sanitize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestSanitizeCascades(t *testing.T) {
	// the run cancellation exposes a new +- pair on the next pass
	got := string(Sanitize([]byte("+><-")))
	if got != "" {
		t.Errorf("Expected the rewrite to cascade to empty, got %q", got)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	programs := []string{
		"+[-][+]><++--",
		"++++[>++++<-]>",
		"[-]+++.",
		"+>-<[->+<]",
	}
	for _, p := range programs {
		once := Sanitize([]byte(p))
		twice := Sanitize(once)
		if string(once) != string(twice) {
			t.Errorf("Sanitize(%q) is not idempotent: %q vs %q", p, once, twice)
		}
	}
}

func TestSanitizePreservesSemantics(t *testing.T) {
	// a small real program before and after must behave identically;
	// checked structurally here, behaviorally in the compiler tests
	in := "++>+++<+-[->+<]"
	got := string(Sanitize([]byte(in)))
	want := "++>+++<[->+<]"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
