// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import (
	"github.com/mitchellh/mapstructure"
)

// Decode copies every resolved value into the struct pointed to by v.
// Fields are matched by their `env` tag, or their name when untagged.
// Names without a value leave their field untouched.
func (s *Store) Decode(v any) error {
	m := make(map[string]any, len(s.values))
	for name, val := range s.values {
		if val.IsZero() {
			continue
		}
		m[name] = val.Any()
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "env",
		Result:  v,
	})
	if err != nil {
		return err
	}
	return dec.Decode(m)
}
