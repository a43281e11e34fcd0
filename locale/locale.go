package locale

import (
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/decancer"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// Locale holds the options derived for a language tag.
type Locale struct {
	Tag     language.Tag
	Script  language.Script  // ISO 15924 script identifier
	Options decancer.Options // options retaining the tag's writing system
}

// DefaultLocale is used when no locale can be detected.
const DefaultLocale = "en-US"

var none decancer.Options

// scriptOptions maps ISO 15924 script codes to retain options.
var scriptOptions = map[string]decancer.Options{
	"Grek": none.RetainGreek(),
	"Cyrl": none.RetainCyrillic(),
	"Armn": none.RetainArmenian(),
	"Hebr": none.RetainHebrew(),
	"Arab": none.RetainArabic(),
	"Deva": none.RetainDevanagari(),
	"Beng": none.RetainBengali(),
	"Gujr": none.RetainGujarati(),
	"Taml": none.RetainTamil(),
	"Thai": none.RetainThai(),
	"Laoo": none.RetainLao(),
	"Mymr": none.RetainBurmese(),
	"Khmr": none.RetainKhmer(),
	"Mong": none.RetainMongolian(),
	"Brai": none.RetainBraille(),
	// Han and its combinations
	"Hani": none.RetainChinese(),
	"Hans": none.RetainChinese(),
	"Hant": none.RetainChinese(),
	"Hanb": none.RetainChinese(),
	"Hira": none.RetainJapanese(),
	"Kana": none.RetainJapanese(),
	"Jpan": none.RetainJapanese().RetainChinese(),
	"Hang": none.RetainKorean(),
	"Kore": none.RetainKorean().RetainChinese(),
}

// Latin-script languages making regular use of diacritics. The first
// language is used as fallback and does not count.
var diacriticsMatch = language.NewMatcher([]language.Tag{
	language.English,
	language.Catalan,
	language.Croatian,
	language.Czech,
	language.Danish,
	language.Dutch,
	language.Estonian,
	language.Finnish,
	language.French,
	language.German,
	language.Hungarian,
	language.Icelandic,
	language.Italian,
	language.Latvian,
	language.Lithuanian,
	language.Norwegian,
	language.Polish,
	language.Portuguese,
	language.Romanian,
	language.Slovak,
	language.Slovenian,
	language.Spanish,
	language.Swedish,
	language.Vietnamese,
})

// Languages whose alphabet contains the dotless i and friends.
var turkicBases = map[string]bool{
	"tr": true,
	"az": true,
}

// New derives the options for a language tag. The script of tag is
// inferred if it is not given explicitly.
func New(tag language.Tag) *Locale {
	loc := &Locale{Tag: tag}
	script, confidence := tag.Script()
	if confidence != language.No {
		loc.Script = script
		loc.Options |= scriptOptions[script.String()]
	}
	if loc.Script.String() == "Latn" {
		if _, index, c := diacriticsMatch.Match(tag); index > 0 && c != language.No {
			loc.Options = loc.Options.RetainDiacritics()
		}
	}
	if base, c := tag.Base(); c != language.No && turkicBases[base.String()] {
		loc.Options = loc.Options.RetainTurkish()
	}
	T().Debugf("locale %v: script %v, options %v", tag, loc.Script, loc.Options)
	return loc
}

// Parse derives the options for a BCP 47 language tag, e.g. "el-GR". POSIX
// style locales like "el_GR.UTF-8" are accepted as well.
func Parse(s string) (*Locale, error) {
	tag, err := language.Parse(normalize(s))
	if err != nil {
		return nil, errors.Wrapf(decancer.ErrInvalidInput, "locale %q: %v", s, err)
	}
	return New(tag), nil
}

// FromEnvironment derives the options for the locale of the environment.
// If none can be detected, DefaultLocale is used.
func FromEnvironment() *Locale {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf("cannot detect user locale: %v", err)
		userLocale = DefaultLocale
		T().Infof("decancer sets default user locale %v", userLocale)
	} else {
		T().Infof("decancer detected user locale %v", userLocale)
	}
	loc, err := Parse(userLocale)
	if err != nil {
		T().Errorf("cannot use user locale: %v", err)
		loc, _ = Parse(DefaultLocale)
	}
	return loc
}

// Options returns the options for the locale of the environment.
func Options() decancer.Options {
	return FromEnvironment().Options
}

// normalize turns a POSIX locale into a BCP 47 tag.
func normalize(s string) string {
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	return strings.ReplaceAll(s, "_", "-")
}
