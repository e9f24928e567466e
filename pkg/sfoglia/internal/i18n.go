package internal

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	bundle    = i18n.NewBundle(language.English)
	localizer *i18n.Localizer
)

func init() {
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	localizer = i18n.NewLocalizer(bundle, systemLocale(), language.English.String())
}

// systemLocale extracts the preferred locale from the environment, e.g.
// "it_IT.UTF-8" -> "it-IT".
func systemLocale() string {
	for _, envVar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := os.Getenv(envVar)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return language.English.String()
}

// LoadTranslations adds a TOML message file (e.g. "active.it.toml") to the
// translation bundle.
func LoadTranslations(path string) error {
	_, err := bundle.LoadMessageFile(path)
	return err
}

// T localizes a message, falling back to the supplied English text when no
// translation is available.
func T(id, fallback string) string {
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil {
		return fallback
	}
	return msg
}
