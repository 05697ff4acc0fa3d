package logging

import "strings"

const redacted = "[redacted]"

// secretKeys are attribute keys whose values never reach a sink.
var secretKeys = map[string]struct{}{
	"pin":        {},
	"mnemonic":   {},
	"seed":       {},
	"words":      {},
	"key":        {},
	"device_key": {},
}

// redact returns args with the values of secret keys replaced. The input
// slice is left untouched when nothing needs replacing.
func redact(args []any) []any {
	var out []any
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			continue
		}
		if _, secret := secretKeys[strings.ToLower(k)]; !secret {
			continue
		}
		if out == nil {
			out = make([]any, len(args))
			copy(out, args)
		}
		out[i+1] = redacted
	}
	if out == nil {
		return args
	}
	return out
}
