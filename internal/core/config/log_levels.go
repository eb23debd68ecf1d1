package config

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// LogLevels maps dotted module names (e.g. "core.datelist") to level names.
type LogLevels map[string]string

// LogLevelsDecodeHook skips decoding into LogLevels.
// TOML turns dotted keys into nested tables, which mapstructure cannot put
// into a flat map; flattenLogLevels fills the field afterwards.
func LogLevelsDecodeHook() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(LogLevels{}) {
			return data, nil
		}
		return make(LogLevels), nil
	}
}

// flattenLogLevels joins nested tables back into dotted keys.
// A table key whose value is a string is a level for that exact path.
func flattenLogLevels(raw interface{}) LogLevels {
	levels := make(LogLevels)
	flattenInto(levels, "", raw)
	return levels
}

func flattenInto(levels LogLevels, prefix string, raw interface{}) {
	switch v := raw.(type) {
	case map[string]interface{}:
		for key, value := range v {
			flattenInto(levels, joinKey(prefix, key), value)
		}
	case map[string]string:
		for key, value := range v {
			levels[joinKey(prefix, key)] = value
		}
	case nil:
	default:
		if prefix != "" {
			levels[prefix] = fmt.Sprint(v)
		}
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
