// Package i18n renders validation issue codes as human-readable messages.
package i18n

import "fmt"

// Translator retrieves localized messages for issue codes. data provides
// metadata to embed in the message, most importantly "field" (the
// user-facing field label) and optionally "item"/"index" for list entries.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	field := data["field"]
	prefix := ""
	if idx := data["index"]; idx != "" {
		// e.g. "Question #2: Answer text is required."
		prefix = fmt.Sprintf("%s #%s: ", data["item"], idx)
	}
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return prefix + field + "は必須です。"
		case "recommended":
			return prefix + field + "の入力を推奨します。"
		case "invalid_url":
			return prefix + field + "のURLが不正です。"
		case "invalid_date":
			return prefix + field + "の日付が不正です。"
		}
	default: // "en"
		switch code {
		case "required":
			return prefix + field + " is required."
		case "recommended":
			return prefix + field + " is recommended."
		case "invalid_url":
			return prefix + field + " is not a valid URL."
		case "invalid_date":
			return prefix + field + " is not a valid date."
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// Message renders a code through the current Translator.
func Message(code string, data map[string]string) string {
	return currentTranslator.Message(code, data)
}
