package bidi

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// DirectionFromEnvironment returns the paragraph direction for the locale of
// the current user. If no locale can be detected, en-US is assumed.
func DirectionFromEnvironment() bidi.Direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("UAX#9 sets default user locale %v", userLocale)
	} else {
		T().Infof("UAX#9 detected user locale %v", userLocale)
	}
	return DirectionForLocale(userLocale)
}

// DirectionForLocale returns the paragraph direction for a BCP 47 locale
// string, derived from the (possibly implied) script of the locale.
func DirectionForLocale(locale string) bidi.Direction {
	lang := language.Make(locale)
	script, _ := lang.Script()
	switch script.String() {
	case
		"Adlm", // Adlam
		"Arab", // Arabic
		"Hebr", // Hebrew
		"Mand", // Mandaic
		"Nkoo", // N’Ko
		"Rohg", // Hanifi Rohingya
		"Samr", // Samaritan
		"Syrc", // Syriac
		"Thaa", // Thaana
		"Yezi": // Yezidi
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}
