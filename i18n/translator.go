package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "name" or "path").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "not_found":
			msg = "ブループリント文書が見つかりません"
		case "parse_error":
			msg = "解析エラー"
		case "unknown_key":
			msg = "未登録のフィールドです"
		case "duplicate_key":
			msg = "フィールド名が重複しています"
		case "invalid_schema":
			msg = "レジストリ定義が不正です"
		}
	default: // "en"
		switch code {
		case "not_found":
			msg = "blueprint document not found"
		case "parse_error":
			msg = "parse error"
		case "unknown_key":
			msg = "field not in registry"
		case "duplicate_key":
			msg = "duplicate field name"
		case "invalid_schema":
			msg = "invalid registry definition"
		}
	}
	if msg == "" {
		return code
	}
	if name := data["name"]; name != "" {
		msg += ": " + name
	}
	return msg
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
