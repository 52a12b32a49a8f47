package resolver

import (
	"strings"

	"github.com/tomaszpagacz/GPT-data-platform/internal/config"
)

// Recognized lookup keys. Any other key fails resolution.
const (
	KeyEnabledEnvironments = "enabledEnvironments"
	KeyNotificationEmail   = "notificationEmail"
	KeySlackWebhook        = "slackWebhook"
	KeyDryRun              = "dryRun"
)

// Defaults substituted when a key is absent or has an unexpected shape.
const (
	DefaultEnabledEnvironments = "dev,sit"
	DefaultNotificationEmail   = ""
	DefaultSlackWebhook        = ""
)

// Resolve produces the output string for one of the four recognized keys.
// A key that is absent from the document, or whose value has a shape the key
// does not accept, resolves to that key's default. Unknown keys return
// ErrUnknownKey and no value.
func Resolve(doc *config.Document, key string) (string, error) {
	switch key {
	case KeyEnabledEnvironments:
		return resolveEnabledEnvironments(doc.Lookup(key)), nil
	case KeyNotificationEmail:
		return resolveString(doc.Lookup(key), DefaultNotificationEmail), nil
	case KeySlackWebhook:
		return resolveString(doc.Lookup(key), DefaultSlackWebhook), nil
	case KeyDryRun:
		return resolveDryRun(doc.Lookup(key)), nil
	default:
		return "", ErrUnknownKey
	}
}

// resolveEnabledEnvironments accepts either a comma-separated string or a
// sequence of strings and emits a comma-joined list. The string form is
// passed through without trimming, so entries keep any whitespace around
// them exactly as written in the file.
func resolveEnabledEnvironments(v config.Value) string {
	switch v.Kind {
	case config.KindString:
		return v.Str
	case config.KindStringList:
		return strings.Join(v.List, ",")
	default:
		return DefaultEnabledEnvironments
	}
}

func resolveString(v config.Value, fallback string) string {
	if v.Kind == config.KindString {
		return v.Str
	}
	return fallback
}

// resolveDryRun always emits the lowercase tokens "true" or "false",
// regardless of how the boolean was spelled in the file.
func resolveDryRun(v config.Value) string {
	if v.Kind == config.KindBool && v.Bool {
		return "true"
	}
	return "false"
}
