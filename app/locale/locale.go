// Package locale provides the translated client-facing messages. Bundles
// are compiled into the binary; the set of languages is fixed at build time.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed bundles/*.json
var bundleFS embed.FS

const DefaultLocale = "en"

var (
	availables = []string{"en", "fr"}
	bundles    = loadBundles()
)

func loadBundles() map[string]map[string]string {
	loaded := make(map[string]map[string]string, len(availables))
	for _, lang := range availables {
		content, err := bundleFS.ReadFile(fmt.Sprintf("bundles/%s.json", lang))
		if err != nil {
			panic(fmt.Sprintf("locale: missing bundle for %s: %v", lang, err))
		}
		messages := make(map[string]string)
		if err := json.Unmarshal(content, &messages); err != nil {
			panic(fmt.Sprintf("locale: invalid bundle for %s: %v", lang, err))
		}
		loaded[lang] = messages
	}
	return loaded
}

func AvailableLocales() []string {
	return availables
}

func Supported(lang string) bool {
	_, ok := bundles[lang]
	return ok
}

// Trans returns the message for key in lang, or "" when the key
// is not present in the bundle.
func Trans(lang, key string) string {
	return TransWith(lang, key, nil)
}

// TransWith substitutes {name} placeholders in the message with params.
func TransWith(lang, key string, params map[string]string) string {
	messages, ok := bundles[lang]
	if !ok {
		messages = bundles[DefaultLocale]
	}

	message, ok := messages[key]
	if !ok {
		return ""
	}

	for name, value := range params {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}
	return message
}
