package i18n

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// LocalizerContextKey carries the request's localizer through the context.
const LocalizerContextKey = "i18n.Localizer"

// SupportedLanguages is filled from the loaded message files.
var SupportedLanguages []string

// InitI18n loads the TOML message files and builds the bundle.
func InitI18n(filePaths []string, defaultLang string) (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.MustParse(defaultLang))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	SupportedLanguages = make([]string, 0)

	for _, filePath := range filePaths {
		file, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}

		lang := extractLanguageFromPath(filePath)
		SupportedLanguages = append(SupportedLanguages, lang)

		if _, err := bundle.ParseMessageFileBytes(file, filePath); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// extractLanguageFromPath assumes the file is named <lang>.toml.
func extractLanguageFromPath(filePath string) string {
	baseName := filepath.Base(filePath)
	return strings.TrimSuffix(baseName, filepath.Ext(baseName))
}

// T localizes a message ID using the request's localizer. Unknown IDs and
// requests without a localizer fall back to the raw key, so untranslated
// messages still reach the client.
func T(ctx context.Context, key string, data map[string]interface{}) string {
	localizer, ok := ctx.Value(LocalizerContextKey).(*i18n.Localizer)
	if !ok {
		return key
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		return key
	}
	return msg
}
