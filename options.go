package decancer

import (
	"strings"

	"github.com/pkg/errors"
)

// Options is a bit set configuring the behaviour of Cure.
//
// The zero value cures as many characters as possible and turns all output
// characters into lowercase. Options are built by chaining builder methods:
//
//     opts := decancer.Options(0).RetainCapitalization().RetainGreek()
//
// Options are plain values and may be shared freely.
type Options uint32

// Bit positions of options. They are part of the wire format of
// codepoints.bin: the attribute byte of a table record carries the index of
// the script option which will refuse its translation.
const (
	OptRetainCapitalization uint8 = iota
	OptDisableBidi
	OptDisableLeetspeak
	OptRetainDiacritics
	OptRetainGreek
	OptRetainCyrillic
	OptRetainHebrew
	OptRetainArabic
	OptRetainDevanagari
	OptRetainBengali
	OptRetainArmenian
	OptRetainGujarati
	OptRetainTamil
	OptRetainThai
	OptRetainLao
	OptRetainBurmese
	OptRetainKhmer
	OptRetainMongolian
	OptRetainChinese
	OptRetainJapanese
	OptRetainKorean
	OptRetainBraille
	OptRetainEmojis
	OptRetainTurkish
	OptASCIIOnly
	OptAlphanumericOnly
	optCount
)

// All is a configuration with every option enabled.
const All Options = 0x3ffffff

// PureHomoglyph prevents curing of characters from major foreign writing
// systems, including diacritics.
const PureHomoglyph Options = 0x7ffff8

// flagNames lists option names in bit order. Scripts are flagged, as
// they make up PureHomoglyph together with diacritics.
var flagNames = [optCount]struct {
	name   string
	script bool
}{
	{"retain_capitalization", false},
	{"disable_bidi", false},
	{"disable_leetspeak", false},
	{"retain_diacritics", false},
	{"retain_greek", true},
	{"retain_cyrillic", true},
	{"retain_hebrew", true},
	{"retain_arabic", true},
	{"retain_devanagari", true},
	{"retain_bengali", true},
	{"retain_armenian", true},
	{"retain_gujarati", true},
	{"retain_tamil", true},
	{"retain_thai", true},
	{"retain_lao", true},
	{"retain_burmese", true},
	{"retain_khmer", true},
	{"retain_mongolian", true},
	{"retain_chinese", true},
	{"retain_japanese", true},
	{"retain_korean", true},
	{"retain_braille", true},
	{"retain_emojis", true},
	{"retain_turkish", false},
	{"ascii_only", false},
	{"alphanumeric_only", false},
}

// Is checks if the option at bit position inx is set.
func (o Options) Is(inx uint8) bool {
	return inx < 32 && o&(1<<inx) != 0
}

func (o Options) with(inx uint8) Options {
	return o | 1<<inx
}

// refuseCure checks the attribute byte of a table record against o.
//
// Bit 0 of the attribute marks a character with diacritics, bit 1 a
// character of the Turkish alphabet, the upper six bits hold the index of
// the retain-option for the record's writing system. Indices below 4
// denote no writing system.
func (o Options) refuseCure(attr uint8) bool {
	script := attr >> 2
	return (attr&1 != 0 && o.Is(OptRetainDiacritics)) ||
		(attr&2 != 0 && o.Is(OptRetainTurkish)) ||
		(script > 3 && o.Is(script))
}

// RetainCapitalization prevents changing characters to lowercase. Many
// confusables have no case, so their translation is still lowercase.
func (o Options) RetainCapitalization() Options { return o.with(OptRetainCapitalization) }

// DisableBidi prevents applying the Unicode Bidirectional Algorithm. Use this
// only if no right-to-left text is expected. It has no effect on CureChar.
func (o Options) DisableBidi() Options { return o.with(OptDisableBidi) }

// DisableLeetspeak is accepted for compatibility. Leetspeak detection is not
// part of this package, so the flag has no effect.
func (o Options) DisableLeetspeak() Options { return o.with(OptDisableLeetspeak) }

// RetainDiacritics prevents curing characters with diacritics or accents.
// Standalone combining marks, as used for Zalgo text, are still removed.
func (o Options) RetainDiacritics() Options { return o.with(OptRetainDiacritics) }

// RetainGreek prevents curing Greek characters.
func (o Options) RetainGreek() Options { return o.with(OptRetainGreek) }

// RetainCyrillic prevents curing Cyrillic characters.
func (o Options) RetainCyrillic() Options { return o.with(OptRetainCyrillic) }

// RetainHebrew prevents curing Hebrew characters. It also keeps bidi control
// characters in the output.
func (o Options) RetainHebrew() Options { return o.with(OptRetainHebrew) }

// RetainArabic prevents curing Arabic characters. It also keeps bidi control
// characters in the output.
func (o Options) RetainArabic() Options { return o.with(OptRetainArabic) }

// RetainDevanagari prevents curing Devanagari characters.
func (o Options) RetainDevanagari() Options { return o.with(OptRetainDevanagari) }

// RetainBengali prevents curing Bengali characters.
func (o Options) RetainBengali() Options { return o.with(OptRetainBengali) }

// RetainArmenian prevents curing Armenian characters.
func (o Options) RetainArmenian() Options { return o.with(OptRetainArmenian) }

// RetainGujarati prevents curing Gujarati characters.
func (o Options) RetainGujarati() Options { return o.with(OptRetainGujarati) }

// RetainTamil prevents curing Tamil characters.
func (o Options) RetainTamil() Options { return o.with(OptRetainTamil) }

// RetainThai prevents curing Thai characters.
func (o Options) RetainThai() Options { return o.with(OptRetainThai) }

// RetainLao prevents curing Lao characters.
func (o Options) RetainLao() Options { return o.with(OptRetainLao) }

// RetainBurmese prevents curing Burmese characters.
func (o Options) RetainBurmese() Options { return o.with(OptRetainBurmese) }

// RetainKhmer prevents curing Khmer characters.
func (o Options) RetainKhmer() Options { return o.with(OptRetainKhmer) }

// RetainMongolian prevents curing Mongolian characters.
func (o Options) RetainMongolian() Options { return o.with(OptRetainMongolian) }

// RetainChinese prevents curing Chinese characters.
func (o Options) RetainChinese() Options { return o.with(OptRetainChinese) }

// RetainJapanese prevents curing Japanese Kana.
func (o Options) RetainJapanese() Options { return o.with(OptRetainJapanese) }

// RetainKorean prevents curing Korean characters.
func (o Options) RetainKorean() Options { return o.with(OptRetainKorean) }

// RetainBraille prevents curing braille characters.
func (o Options) RetainBraille() Options { return o.with(OptRetainBraille) }

// RetainEmojis prevents curing emojis.
func (o Options) RetainEmojis() Options { return o.with(OptRetainEmojis) }

// RetainTurkish prevents curing characters of the Turkish alphabet.
func (o Options) RetainTurkish() Options { return o.with(OptRetainTurkish) }

// ASCIIOnly removes every character from the output which cannot be cured
// to ASCII.
func (o Options) ASCIIOnly() Options { return o.with(OptASCIIOnly) }

// AlphanumericOnly removes every character from the output which cannot be
// cured to an ASCII letter, digit or space.
func (o Options) AlphanumericOnly() Options { return o.with(OptAlphanumericOnly) }

// --- Named flags -----------------------------------------------------------

// OptionsFromFlags creates Options from a list of flag names, e.g.
// "retain_greek". Names are case-insensitive and may use '-' instead of
// '_'. Additionally, "all" and "pure_homoglyph" name the presets.
func OptionsFromFlags(names ...string) (Options, error) {
	var o Options
	for _, name := range names {
		n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
		switch n {
		case "":
			continue
		case "all":
			o |= All
			continue
		case "pure_homoglyph":
			o |= PureHomoglyph
			continue
		}
		found := false
		for i, f := range flagNames {
			if f.name == n {
				o = o.with(uint8(i))
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Wrapf(ErrInvalidInput, "unknown option %q", name)
		}
	}
	return o, nil
}

// Flags returns the names of all options set in o, in bit order.
func (o Options) Flags() []string {
	var names []string
	for i, f := range flagNames {
		if o.Is(uint8(i)) {
			names = append(names, f.name)
		}
	}
	return names
}

func (o Options) String() string {
	return "[" + strings.Join(o.Flags(), " ") + "]"
}

// MarshalYAML encodes o as a list of flag names.
func (o Options) MarshalYAML() (interface{}, error) {
	return o.Flags(), nil
}

// UnmarshalYAML decodes a list of flag names or a plain integer mask.
func (o *Options) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var mask uint32
	if err := unmarshal(&mask); err == nil {
		*o = Options(mask)
		return nil
	}
	var names []string
	if err := unmarshal(&names); err != nil {
		return errors.Wrap(err, "options must be a list of flag names")
	}
	opts, err := OptionsFromFlags(names...)
	if err != nil {
		return err
	}
	*o = opts
	return nil
}
