package decancer

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func TestOptionPresets(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var all, homoglyph Options
	for i, f := range flagNames {
		all = all.with(uint8(i))
		if f.script {
			homoglyph = homoglyph.with(uint8(i))
		}
	}
	homoglyph = homoglyph.RetainDiacritics()
	if all != All {
		t.Errorf("expected All to be %#x, is %#x", uint32(all), uint32(All))
	}
	if homoglyph != PureHomoglyph {
		t.Errorf("expected PureHomoglyph to be %#x, is %#x", uint32(homoglyph), uint32(PureHomoglyph))
	}
	if PureHomoglyph.Is(OptRetainTurkish) || PureHomoglyph.Is(OptRetainCapitalization) {
		t.Errorf("PureHomoglyph should not contain non-script options: %v", PureHomoglyph)
	}
	if Options(0).Is(40) {
		t.Error("no option beyond bit 31")
	}
}

func TestOptionsFromFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	opts, err := OptionsFromFlags("retain_greek", "Retain-Cyrillic", " ascii_only ", "")
	if err != nil {
		t.Fatal(err)
	}
	if expected := Options(0).RetainGreek().RetainCyrillic().ASCIIOnly(); opts != expected {
		t.Errorf("expected %v, have %v", expected, opts)
	}
	if opts, _ = OptionsFromFlags("all"); opts != All {
		t.Errorf("expected all options, have %v", opts)
	}
	if opts, _ = OptionsFromFlags("pure-homoglyph", "retain_turkish"); opts != PureHomoglyph.RetainTurkish() {
		t.Errorf("expected pure homoglyph and turkish, have %v", opts)
	}
	if _, err = OptionsFromFlags("retain_klingon"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected unknown option to be rejected, have %v", err)
	}
	flags := Options(0).DisableBidi().RetainKorean().Flags()
	if len(flags) != 2 || flags[0] != "disable_bidi" || flags[1] != "retain_korean" {
		t.Errorf("unexpected flags %v", flags)
	}
	if s := Options(0).RetainCapitalization().String(); s != "[retain_capitalization]" {
		t.Errorf("unexpected string representation %q", s)
	}
}

func TestOptionsYAML(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var conf struct {
		Options Options `yaml:"options"`
	}
	if err := yaml.Unmarshal([]byte("options: [retain_hebrew, disable-bidi]\n"), &conf); err != nil {
		t.Fatal(err)
	}
	if expected := Options(0).RetainHebrew().DisableBidi(); conf.Options != expected {
		t.Errorf("expected %v, have %v", expected, conf.Options)
	}
	if err := yaml.Unmarshal([]byte("options: 5\n"), &conf); err != nil {
		t.Fatal(err)
	}
	if conf.Options != Options(0).RetainCapitalization().DisableLeetspeak() {
		t.Errorf("expected options from integer mask, have %v", conf.Options)
	}
	if err := yaml.Unmarshal([]byte("options: [nothing]\n"), &conf); err == nil {
		t.Error("expected unknown flag to fail")
	}
	out, err := yaml.Marshal(struct {
		Options Options `yaml:"options"`
	}{Options(0).RetainBraille()})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "options:\n- retain_braille\n" {
		t.Errorf("unexpected YAML %q", out)
	}
}

func TestRefuseCure(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	greek := OptRetainGreek << 2
	tests := []struct {
		attr    uint8
		opts    Options
		refused bool
	}{
		{0, All, false},
		{1, 0, false},
		{1, Options(0).RetainDiacritics(), true},
		{2, Options(0).RetainTurkish(), true},
		{2, Options(0).RetainDiacritics(), false},
		{greek, 0, false},
		{greek, Options(0).RetainGreek(), true},
		{greek, Options(0).RetainCyrillic(), false},
		{greek | 1, Options(0).RetainDiacritics(), true},
		{OptRetainDiacritics << 2, Options(0).RetainDiacritics(), false}, // not a script index
	}
	for i, test := range tests {
		if refused := test.opts.refuseCure(test.attr); refused != test.refused {
			t.Errorf("#%d: attribute %#x with %v: expected refusal %v", i, test.attr, test.opts, test.refused)
		}
	}
}
