// Copyright (c) 2026 InsolentFlunkey
// Passgen - password and passphrase generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization support for Passgen. It uses
// the go-i18n library to load and manage translation files, allowing the
// user interface to be displayed in multiple languages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

// bundle stores all the loaded translation messages from the locale files.
var bundle *i18n.Bundle

// localizer is used to translate messages into a specific language.
var localizer *i18n.Localizer

// currentLang tracks the active language code.
var currentLang = "en"

// Init initializes the i18n bundle and sets up the localizer for a specific
// language. It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	if lang == "" {
		lang = "en"
	}
	currentLang = lang
	localizer = i18n.NewLocalizer(bundle, lang, "en")
}

// T translates a message by its ID. Extra args are applied with fmt.Sprintf
// to the translated string, so locale files can carry printf verbs.
// If no translation exists, the message ID itself is returned so missing
// strings are visible rather than fatal.
func T(messageID string, args ...any) string {
	if localizer == nil {
		Init("en")
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language code.
func GetLang() string {
	return currentLang
}

// GetAvailableLocales returns the language codes of the embedded locale
// files mapped to a display name.
func GetAvailableLocales() map[string]string {
	names := map[string]string{
		"en": "English",
		"de": "Deutsch",
	}
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		code := strings.TrimSuffix(f.Name(), ".yaml")
		if name, ok := names[code]; ok {
			out[code] = name
		} else {
			out[code] = code
		}
	}
	return out
}
