package profile

import "testing"

func TestParseLines_Basic(t *testing.T) {
	lines := []string{
		"# managed hosts\n",
		"\n",
		"Host web\n",
		"  HostName 10.0.0.1\n",
		"  User root\n",
		"  Port 22\n",
		"\n",
		"Host db\n",
		"  HostName db.internal\n",
	}
	stanzas := ParseLines(lines)
	if len(stanzas) != 2 {
		t.Fatalf("expected 2 stanzas, got %d", len(stanzas))
	}
	if stanzas[0].Alias != "web" || stanzas[1].Alias != "db" {
		t.Fatalf("unexpected aliases: %q, %q", stanzas[0].Alias, stanzas[1].Alias)
	}
	if stanzas[0].Attrs["hostname"] != "10.0.0.1" || stanzas[0].Attrs["user"] != "root" || stanzas[0].Attrs["port"] != "22" {
		t.Fatalf("unexpected attrs: %+v", stanzas[0].Attrs)
	}
}

func TestParseLines_KeywordCaseInsensitive(t *testing.T) {
	stanzas := ParseLines([]string{"hOsT web\n", "  HostName 10.0.0.1\n"})
	if len(stanzas) != 1 || stanzas[0].Alias != "web" {
		t.Fatalf("unexpected parse: %+v", stanzas)
	}
}

func TestParseLines_OrphanAndMalformedDropped(t *testing.T) {
	lines := []string{
		"StrayAttr before-any-block\n",
		"Host web\n",
		"  NoValueHere\n",
		"  HostName 10.0.0.1\n",
	}
	stanzas := ParseLines(lines)
	if len(stanzas) != 1 {
		t.Fatalf("expected 1 stanza, got %d", len(stanzas))
	}
	if _, ok := stanzas[0].Attrs["novaluehere"]; ok {
		t.Fatal("malformed attribute line should be dropped from the parsed view")
	}
	if stanzas[0].Attrs["hostname"] != "10.0.0.1" {
		t.Fatalf("unexpected attrs: %+v", stanzas[0].Attrs)
	}
}

func TestParseLines_DuplicateAttrLastWins(t *testing.T) {
	lines := []string{
		"Host web\n",
		"  HostName first.example.com\n",
		"  HostName second.example.com\n",
	}
	stanzas := ParseLines(lines)
	if got := stanzas[0].Attrs["hostname"]; got != "second.example.com" {
		t.Fatalf("expected last write to win, got %q", got)
	}
}

func TestParseLines_CommentDoesNotCloseBlock(t *testing.T) {
	lines := []string{
		"Host web\n",
		"# a comment inside the block\n",
		"\n",
		"  HostName 10.0.0.1\n",
	}
	stanzas := ParseLines(lines)
	if len(stanzas) != 1 || stanzas[0].Attrs["hostname"] != "10.0.0.1" {
		t.Fatalf("comment/blank lines must not close the block: %+v", stanzas)
	}
}

func TestParseLines_BareKeywordIsNotABlock(t *testing.T) {
	stanzas := ParseLines([]string{"Host\n", "Host web\n", "  HostName 10.0.0.1\n"})
	if len(stanzas) != 1 || stanzas[0].Alias != "web" {
		t.Fatalf("keyword without alias must not start a block: %+v", stanzas)
	}
}

func TestMatchesBlockStart_Boundary(t *testing.T) {
	cases := []struct {
		line  string
		alias string
		want  bool
	}{
		{"Host web\n", "web", true},
		{"Host webserver\n", "web", false},
		{"Host web\n", "webserver", false},
		{"host web extra\n", "web", true},
		{"Host my.host*\n", "my.host*", true},
		{"  HostName web\n", "web", false},
		{"# Host web\n", "web", false},
	}
	for _, tc := range cases {
		if got := matchesBlockStart(tc.line, tc.alias); got != tc.want {
			t.Errorf("matchesBlockStart(%q, %q) = %v, want %v", tc.line, tc.alias, got, tc.want)
		}
	}
}
