package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

var overrideDecoder = schema.NewDecoder()

func init() {
	// "output.indent=" selects compact output.
	overrideDecoder.ZeroEmpty(true)
}

// ApplyOverrides sets fields from "key=value" pairs, where key is the dotted
// path of a field (e.g., "logLevel", "output.overwrite",
// "queryBehaviors.names"). A list key replaces the whole list; repeat it to
// give several elements.
func (c *Config) ApplyOverrides(pairs []string) error {
	if len(pairs) == 0 {
		return nil
	}
	values := make(url.Values, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid override %q: expected key=value", pair)
		}
		values.Add(key, value)
	}
	if err := overrideDecoder.Decode(c, values); err != nil {
		return fmt.Errorf("applying overrides: %w", err)
	}
	return nil
}
