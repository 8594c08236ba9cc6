package utils

import "testing"

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a\b/c:d*e?f"g<h>i|j`, "a_b_c_d_e_f_g_h_i_j"},
		{"  spaced  ", "spaced"},
		{"tab\tname", "tab_name"},
		{"魔法少女？", "魔法少女？"},
		// decomposed が becomes the composed form
		{"\u304b\u3099", "\u304c"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBookFileName(t *testing.T) {
	got := BookFileName("作者/名", "題名: 副題", "epub")
	want := "[作者_名] 題名_ 副題.epub"
	if got != want {
		t.Errorf("BookFileName() = %q, want %q", got, want)
	}
}
