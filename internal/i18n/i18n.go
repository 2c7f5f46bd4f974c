// Package i18n translates user-facing CLI output.
//
// A Localizer is built once at startup from the process locale and passed to the
// commands that print; it is read-only afterwards.
package i18n

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// supported lists the languages with a translation table; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var translations = map[language.Tag]map[string]string{
	language.SimplifiedChinese: zhHans,
}

// defaultCatalog is built at init; a table that cannot be loaded is a programming error.
var defaultCatalog = mustBuildCatalog(translations)

// Localizer formats messages in the selected language. Keys are the English message
// strings from the messages package; untranslated keys print as-is.
type Localizer struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Localizer for the best supported match of the requested locales.
// Locales may use POSIX form ("zh_CN.UTF-8") or BCP 47 form ("zh-CN").
func New(locales ...string) *Localizer {
	var requested []language.Tag
	for _, locale := range locales {
		if tag, ok := parseLocale(locale); ok {
			requested = append(requested, tag)
		}
	}
	tag := supported[0]
	if len(requested) > 0 {
		_, index, confidence := language.NewMatcher(supported).Match(requested...)
		if confidence != language.No {
			tag = supported[index]
		}
	}
	return &Localizer{tag: tag, printer: message.NewPrinter(tag, message.Catalog(defaultCatalog))}
}

// FromEnv selects the language from LC_ALL, LC_MESSAGES and LANG, in that order.
func FromEnv(lookup func(key string) (string, bool)) *Localizer {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return New(value)
		}
	}
	return New()
}

// Tag returns the selected language.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// Sprintf formats key in the selected language.
func (l *Localizer) Sprintf(key string, args ...any) string {
	if l == nil {
		return fmt.Sprintf(key, args...)
	}
	return l.printer.Sprintf(key, args...)
}

// Fprintf writes key formatted in the selected language to w.
func (l *Localizer) Fprintf(w io.Writer, key string, args ...any) {
	_, _ = io.WriteString(w, l.Sprintf(key, args...))
}

// Fprintln writes key in the selected language to w followed by a newline.
func (l *Localizer) Fprintln(w io.Writer, key string, args ...any) {
	_, _ = io.WriteString(w, l.Sprintf(key, args...)+"\n")
}

func buildCatalog(tables map[language.Tag]map[string]string) (catalog.Catalog, error) {
	builder := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for tag, table := range tables {
		for key, text := range table {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("load %s translation for %q: %w", tag, key, err)
			}
		}
	}
	return builder, nil
}

func mustBuildCatalog(tables map[language.Tag]map[string]string) catalog.Catalog {
	c, err := buildCatalog(tables)
	if err != nil {
		panic(err)
	}
	return c
}

// parseLocale converts a POSIX locale name to a language tag. "C" and "POSIX" map to English.
func parseLocale(locale string) (language.Tag, bool) {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return language.Und, false
	}
	if locale == "C" || locale == "POSIX" {
		return language.English, true
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
