// Package config holds the repository configuration: a nested mapping
// of string keys to string leaves or further mappings, addressed with
// dotted paths the way git config keys are.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Config is a configuration tree. Leaves are strings, nodes are
// nested mappings of arbitrary depth.
type Config map[string]interface{}

// Default yields the configuration written by repository
// initialization: empty user identity and remote URL.
func Default() Config {
	return Config{
		"user": Config{
			"name":  "",
			"email": "",
		},
		"remote": Config{
			"url": "",
		},
	}
}

// Set assigns value at the dotted key, creating intermediate mappings
// for every missing segment. Addressing through an existing leaf is an
// error.
func (c Config) Set(dottedKey, value string) error {
	keys := strings.Split(dottedKey, ".")
	current := c
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k]
		if !ok {
			child := Config{}
			current[k] = child
			current = child
			continue
		}
		child := asMapping(next)
		if child == nil {
			return fmt.Errorf("config key %q: segment %q addresses a value, not a mapping", dottedKey, k)
		}
		current[k] = child
		current = child
	}
	current[keys[len(keys)-1]] = value
	return nil
}

// Get resolves the dotted key to a leaf value or a sub-mapping. Any
// missing segment resolves to an empty mapping.
func (c Config) Get(dottedKey string) interface{} {
	var current interface{} = c
	for _, k := range strings.Split(dottedKey, ".") {
		node := asMapping(current)
		if node == nil {
			return Config{}
		}
		next, ok := node[k]
		if !ok {
			return Config{}
		}
		current = next
	}
	if node := asMapping(current); node != nil {
		return node
	}
	return current
}

// GetString resolves the dotted key and renders the result as a string.
// Mappings and missing keys render empty.
func (c Config) GetString(dottedKey string) string {
	v := c.Get(dottedKey)
	if asMapping(v) != nil {
		return ""
	}
	return cast.ToString(v)
}

// asMapping normalizes the two mapping shapes found in a decoded tree:
// Config values built in memory and plain maps coming from JSON.
func asMapping(v interface{}) Config {
	switch node := v.(type) {
	case Config:
		return node
	case map[string]interface{}:
		return Config(node)
	default:
		return nil
	}
}
