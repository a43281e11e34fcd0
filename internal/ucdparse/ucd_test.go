package ucdparse

import (
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	input := strings.NewReader("000E..001F;CM     # Cc    [18] <control-000E>..<control-001F>")
	sc, err := New(input)
	if err != nil {
		t.Fatal(err)
	}
	if !sc.Next() {
		t.Fatal(sc.Err())
	}
	t.Logf("token = %v", sc.Token)
	if sc.Token.Field(1) != "CM" {
		t.Errorf("expected field #1 to be 'CM', is %q", sc.Token.Field(1))
	}
	from, to := sc.Token.Range()
	if from != 0x0e || to != 0x1f {
		t.Errorf("expected range to be 0E..1F, is %02X..%02X", from, to)
	}
	if sc.Token.Comment != "Cc    [18] <control-000E>..<control-001F>" {
		t.Errorf("unexpected comment %q", sc.Token.Comment)
	}
	if sc.Next() {
		t.Errorf("expected a single item, have %v", sc.Token)
	}
}

func TestParseFile(t *testing.T) {
	input := strings.NewReader(`# BidiBrackets-14.0.0.txt

0028; 0029; o # LEFT PARENTHESIS
0029; 0028; c # RIGHT PARENTHESIS

3400;<CJK Ideograph Extension A, First>;Lo;0;L;;;;;N;;;;;
4DBF;<CJK Ideograph Extension A, Last>;Lo;0;L;;;;;N;;;;;
00F8 ; 006F 0020 ;      # LATIN SMALL LETTER O WITH STROKE
`)
	var tokens []*Token
	if err := Parse(input, func(t *Token) { tokens = append(tokens, t) }); err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 4 {
		t.Fatalf("expected 4 items, have %d", len(tokens))
	}
	if tokens[0].LineNo != 3 || tokens[0].Field(2) != "o" || tokens[0].Field(3) != "" {
		t.Errorf("unexpected bracket item %v", tokens[0])
	}
	if from, to := tokens[2].Range(); from != 0x3400 || to != 0x4dbf {
		t.Errorf("expected joined CJK range, have %v", tokens[2])
	}
	if tokens[2].Field(1) != "<CJK Ideograph Extension A>" || tokens[2].Field(2) != "Lo" {
		t.Errorf("unexpected CJK fields %v", tokens[2].Fields)
	}
	runes, err := tokens[3].Runes(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(runes) != 2 || runes[0] != 'o' || runes[1] != ' ' {
		t.Errorf("expected translation 'o ', have %q", string(runes))
	}
	if runes, _ = tokens[3].Runes(2); len(runes) != 0 {
		t.Errorf("expected empty flags, have %q", string(runes))
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{
		"XYZ;foo\n",
		"0030..002F;bar\n",
		"110000;too large\n",
		"3400;<CJK Ideograph Extension A, First>;Lo\n0041;LATIN CAPITAL LETTER A;Lu\n",
	} {
		if err := Parse(strings.NewReader(input), func(*Token) {}); err == nil {
			t.Errorf("expected error for %q", input)
		}
	}
	if _, err := New(nil); err == nil {
		t.Error("expected error for missing input")
	}
}
