package simdscan

import "testing"

func TestFindDelimiter(t *testing.T) {
	class := NewByteClass([]byte(" \t\r\n:,"))
	cases := []struct {
		input string
		want  int
	}{
		{"", -1},
		{"hello", -1},
		{"hello world", 5},
		{"a:b", 1},
		{"\n", 0},
		{"abcdefgh,i", 8},
		{"abcdefghi,j", 9},
	}
	for _, c := range cases {
		if got := FindDelimiter([]byte(c.input), class); got != c.want {
			t.Errorf("FindDelimiter(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestByteClassContains(t *testing.T) {
	class := NewByteClass([]byte("ab"))
	if !class.Contains('a') || !class.Contains('b') {
		t.Error("expected a and b to be members")
	}
	if class.Contains('c') {
		t.Error("expected c not to be a member")
	}
}
