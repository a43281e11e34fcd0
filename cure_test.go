package decancer

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf16"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

func mustCure(t *testing.T, text string, opts Options) string {
	t.Helper()
	cured, err := Cure(text, opts)
	if err != nil {
		t.Fatalf("cannot cure %q: %v", text, err)
	}
	return cured.String()
}

func TestCure(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	diacritics := "àáâãäåèéêëìíîïñòóôõöùúûü"
	tests := []struct {
		input    string
		opts     Options
		expected string
	}{
		{"vＥⓡ𝔂 𝔽𝕌Ňℕｙ ţ乇𝕏𝓣", 0, "very funny text"},
		{"z̸a̸l̸g̷o̶ ̷s̵u̴c̶k̴s̸", 0, "zalgo sucks"},
		{diacritics, 0, "aaaaaaeeeeiiiinooooouuuu"},
		{diacritics, Options(0).RetainDiacritics(), diacritics},
		{"decÁncer", Options(0).RetainCapitalization(), "decAncer"},
		{"ＨＥＬＬＯ wörld", Options(0).RetainCapitalization(), "HELLO world"},
		{"ＨＥＬＬＯ wörld", 0, "hello world"},
		{"çğıöşü", 0, "cgiosu"},
		{"‮olleh", 0, "hello"}, // right-to-left override is applied, then dropped
		{"h�ello", 0, "hello"},
		{"", 0, ""},
	}
	for _, test := range tests {
		if cured := mustCure(t, test.input, test.opts); cured != test.expected {
			t.Errorf("cure %q with %v: expected %q, have %q", test.input, test.opts, test.expected, cured)
		}
	}
}

func TestCureLookalikeScripts(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		input, expected string
	}{
		{"ӕ", "ae"},
		{"Ӕ", "ae"},
		{"ꓮꓐꓚ", "abc"},
		{"ꓧꓰꓡꓡꓳ ꓪꓳꓣꓡꓓ", "hello world"},
		{"ⱥ", "a"},
		{"Ⱥ", "a"},
		{"ꞵ", "b"},
		{"ᏗᏰፈᎴᏋᎦᎶᏂᎥᏠᏦᏝᎷᏁᎧᎮᎤᏒᏕᏖᏬᏉᏇጀᎩፚ", "abcdefghijklmnopqrstuvwxyz"},
		{"ꮪꭺꮇ", "sam"},
		{"ꜳꝏ ʦ", "aaoo ts"},
	}
	for _, test := range tests {
		if cured := mustCure(t, test.input, 0); cured != test.expected {
			t.Errorf("cure %q: expected %q, have %q", test.input, test.expected, cured)
		}
	}
	if cured := CureChar('\u04d5', 0); cured.String() != "ae" {
		t.Errorf("expected U+04D5 to cure to \"ae\", is %q", cured.String())
	}
}

func TestCureMathematicalAlphabets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for r := rune(0x1d400); r < 0x1d6a4; r++ { // 13 alphabets of 52 letters
		if !unicode.IsLetter(r) {
			continue // reserved
		}
		expected := string('a' + ((r-0x1d400)%52)%26)
		if cured := mustCure(t, string(r), 0); cured != expected {
			t.Errorf("expected %#U to cure to %q, is %q", r, expected, cured)
		}
	}
	for r := rune(0x1d7ce); r < 0x1d800; r++ { // 5 sets of digits
		expected := string('0' + (r-0x1d7ce)%10)
		if cured := mustCure(t, string(r), 0); cured != expected {
			t.Errorf("expected %#U to cure to %q, is %q", r, expected, cured)
		}
	}
}

func TestCureIsIdempotentForASCII(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, s := range []string{
		"Hello World!", "wow, such TEXT 123", `a-b_c.d/e\f`, "tab\tand\nnewline", "~ ^ | {}",
	} {
		once := mustCure(t, s, 0)
		if twice := mustCure(t, once, 0); twice != once {
			t.Errorf("curing %q twice: %q != %q", s, twice, once)
		}
	}
}

func TestCureReorders(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	opts := Options(0).RetainHebrew().RetainArabic()
	tests := []struct {
		input, expected string
	}{
		{"abc\ndef\nghi", "abc\ndef\nghi"},
		{"ab1\nde2\ngh3", "ab1\nde2\ngh3"},
		{"אבגabc", "abcגבא"},
		{"abc\nابج", "abc\nجبا"},
		{"ابج\nabc", "\nجباabc"},
		{"1.-2", "1.-2"},
		{"1-.2", "1-.2"},
		{"abc אבג", "abc גבא"},
		{"123 אבג", "גבא 123"},
		{"abc‪def", "abc‪def"},
		{"abc‪def‬ghi", "abc‪def‬ghi"},
		{"abc⁦def⁩ghi", "abc⁦def⁩ghi"},
		{"‫abc אבג‬", "‫גבא abc‬"},
		{"אבג? אבג", "גבא ?גבא"},
		{"A אבג?", "A גבא?"},
		{"A אבג?‏", "A ‏?גבא"},
		{"אבג abc", "abc גבא"},
		{"abc⁧.-⁩ghi", "abc⁧-.⁩ghi"},
		{"Hello, ⁨‮world‬⁩!", "Hello, ⁨‮‬dlrow⁩!"},
		{"א(ב)ג.", ".ג)ב(א"},
		{"אב(גד[&ef].)gh", "gh).]ef&[דג(בא"},
	}
	for _, test := range tests {
		expected := strings.ToLower(test.expected)
		if cured := mustCure(t, test.input, opts); cured != expected {
			t.Errorf("cure %q: expected %q, have %q", test.input, expected, cured)
		}
	}
}

func TestRetainScripts(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	tests := []struct {
		name   string
		opts   Options
		sample string
	}{
		{"turkish", Options(0).RetainTurkish(), "çğıöşü"},
		{"greek", Options(0).RetainGreek(), "ͱͳ\u0374͵ͷϝϟϣϥϧῦ\u1fefῲῶ\u1ffd"},
		{"cyrillic", Options(0).RetainCyrillic(), "абвгдӆӈӊӌӎꚕꚗꚙꚛꚜ"},
		{"armenian", Options(0).RetainArmenian(), "ՙ՟ՠաբճմյնշֆև։֊֍"},
		{"hebrew", Options(0).RetainHebrew(), "־׀׃׆אכלםמןװױײ׳״"},
		{"arabic", Options(0).RetainArabic(), "؅؈؉،؎ݧݪݬݮݱ𞸫𞹋𞺀𞺋𞺫"},
		{"devanagari", Options(0).RetainDevanagari(), "ःऄअआइऽािीॉ꣺ꣻ꣼ꣽꣾ"},
		{"bengali", Options(0).RetainBengali(), "ঀংঃঌএযরষসঽ৷৸৹৻৽"},
		{"gujarati", Options(0).RetainGujarati(), "ઃઅઆઇઊદનપફબ૮૯૰૱ૹ"},
		{"tamil", Options(0).RetainTamil(), "அஈஉஊஎயரறலள௭௰௱௴௶"},
		{"thai", Options(0).RetainThai(), "กขคฆชวษหฬฯ๖๗๘๚๛"},
		{"lao", Options(0).RetainLao(), "ກຂງຊຍວສຫອຮ໗໘໙ໜໞ"},
		{"burmese", Options(0).RetainBurmese(), "ကခဂဃငၶၸၹၺၻꩰꩲ꩷꩹ꩽ"},
		{"korean", Options(0).RetainKorean(), "ᄀᄁᄂᄃᄄᇧᇨᇩᇫᇬퟵퟶퟹퟺퟻ"},
		{"khmer", Options(0).RetainKhmer(), "កខគឃចអឤឥឧឫ៴៶៷៸៹"},
		{"mongolian", Options(0).RetainMongolian(), "᠁᠂᠃᠄᠆᠗᠘ᠪᠫᠯᢃᢄᢒᢗᢦ"},
		{"braille", Options(0).RetainBraille(), "⠀⠁⠃⠄⠅⡃⡄⡅⡇⡈⣤⣫⣸⣹⣻"},
		{"chinese", Options(0).RetainChinese(), "⺀⺁⺃⺄⺅㟄㟍㟐㟪㠩﹀﹁﹅﹆﹉"},
		{"japanese", Options(0).RetainJapanese(), "ぃいくけこチテトナニㇻㇼㇽㇾㇿ"},
	}
	for _, test := range tests {
		if cured := mustCure(t, test.sample, 0); cured == test.sample {
			t.Errorf("%s: expected sample to be cured by default", test.name)
		}
		if cured := mustCure(t, test.sample, test.opts.DisableBidi()); cured != test.sample {
			t.Errorf("%s: expected sample to be retained, is %q", test.name, cured)
		}
	}
}

func TestCureCharCoversAllRunes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for _, opts := range []Options{0, All, PureHomoglyph} {
		for r := rune(0); r <= unicode.MaxRune; r++ {
			switch CureChar(r, opts).Kind() {
			case TranslationNone, TranslationCharacter, TranslationString:
			default:
				t.Fatalf("%#U: unknown translation kind", r)
			}
		}
	}
	if tr := CureChar(0xd800, 0); tr.Kind() != TranslationNone {
		t.Errorf("expected surrogate to translate to nothing, is %q", tr)
	}
	if tr := CureChar('‮', 0); tr.Kind() != TranslationNone {
		t.Errorf("expected RLO to translate to nothing, is %q", tr)
	}
	if tr := CureChar('‮', Options(0).RetainArabic()); tr.Kind() != TranslationCharacter {
		t.Errorf("expected RLO to be kept with Arabic retained, kind is %d", tr.Kind())
	}
	if tr := CureChar('Ａ', 0); !tr.Equals("a") || tr.String() != "a" {
		t.Errorf("expected fullwidth A to translate to 'a', is %q", tr)
	}
}

func TestCureEncodings(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	text := "vＥⓡ𝔂 𝔽𝕌Ňℕｙ ţ乇𝕏𝓣"
	units := utf16.Encode([]rune(text))
	type result struct {
		name  string
		cured CuredString
		err   error
	}
	var results []result
	cured, err := CureBytes([]byte(text), 0)
	results = append(results, result{"UTF-8", cured, err})
	cured, err = CureUTF16(units, len(units), 0)
	results = append(results, result{"UTF-16", cured, err})
	cured, err = CureUTF16(append(units, 0, 'x'), 0, 0)
	results = append(results, result{"UTF-16 null-terminated", cured, err})
	cured, err = CureRunes([]rune(text), 0)
	results = append(results, result{"UTF-32", cured, err})
	for _, r := range results {
		if r.err != nil {
			t.Errorf("%s: %v", r.name, r.err)
		} else if r.cured.String() != "very funny text" {
			t.Errorf("%s: expected %q, have %q", r.name, "very funny text", r.cured)
		}
	}
}

func TestCureInvalidInput(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var errs []error
	_, err := Cure("abc\xffdef", 0)
	errs = append(errs, err)
	_, err = CureBytes([]byte{'a', 0xc3}, 0)
	errs = append(errs, err)
	_, err = CureUTF16([]uint16{'a', 0xd800, 'b'}, 3, 0)
	errs = append(errs, err)
	_, err = CureUTF16([]uint16{'a', 0xdc00}, 0, 0)
	errs = append(errs, err)
	_, err = CureUTF16([]uint16{'a'}, 2, 0)
	errs = append(errs, err)
	_, err = CureRunes([]rune{'a', 0xd800}, 0)
	errs = append(errs, err)
	_, err = CureRunes([]rune{unicode.MaxRune + 1}, 0)
	errs = append(errs, err)
	for i, err := range errs {
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("input #%d: expected invalid input error, have %v", i, err)
		}
	}
}

func TestCureConcurrently(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func() {
			cured, err := Cure("ابج abc אבג", Options(0).RetainArabic().RetainHebrew())
			if err != nil {
				done <- err.Error()
				return
			}
			done <- cured.String()
		}()
	}
	for i := 0; i < 8; i++ {
		if s := <-done; s != "גבא abc جبا" {
			t.Errorf("unexpected result %q", s)
		}
	}
}
