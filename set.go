// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envcfg

import "github.com/z5labs/envcfg/env"

// Set writes value to the process environment. It fails with [ErrInvalidName]
// if name is empty or contains "=" and with [ErrWriteFailed] if the platform
// rejects the write. Stores are not affected until they are initialized again.
func Set(name, value string, overwrite bool) error {
	return env.Set(env.OS{}, name, value, overwrite)
}

// TrySet is like [Set] but skips validating name and only reports whether the write succeeded.
func TrySet(name, value string, overwrite bool) bool {
	return env.TrySet(env.OS{}, name, value, overwrite)
}
