package steam

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/andygrunwald/vdf"
)

// node is one level of a parsed VDF document.
type node map[string]interface{}

// parseText parses a text VDF document.
func parseText(data []byte) (node, error) {
	m, err := vdf.NewParser(bytes.NewReader(data)).Parse()
	if err != nil {
		return nil, err
	}
	return node(m), nil
}

// get returns the value stored under key, ignoring case.
func (n node) get(key string) (interface{}, bool) {
	if v, ok := n[key]; ok {
		return v, true
	}
	for k, v := range n {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return nil, false
}

// child returns the nested section under key.
func (n node) child(key string) (node, bool) {
	v, ok := n.get(key)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	return node(m), true
}

// path follows a chain of nested sections.
func (n node) path(keys ...string) (node, bool) {
	cur := n
	for _, k := range keys {
		next, ok := cur.child(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// str returns the string value under key, or "" when it is missing or a
// section.
func (n node) str(key string) string {
	v, ok := n.get(key)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case uint32:
		return strconv.FormatUint(uint64(s), 10)
	default:
		return ""
	}
}

// appID returns the numeric app id stored under key.
func (n node) appID(key string) (uint32, error) {
	v, ok := n.get(key)
	if !ok {
		return 0, fmt.Errorf("missing %s", key)
	}
	switch id := v.(type) {
	case uint32:
		return id, nil
	case string:
		return parseAppID(id)
	default:
		return 0, fmt.Errorf("%s is not a value", key)
	}
}

// indexedKeys returns the keys of n that are array indices ("0", "1", ...)
// in numeric order. Other keys are skipped.
func (n node) indexedKeys() []string {
	type idx struct {
		key string
		n   int
	}
	var keys []idx
	for k := range n {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 {
			continue
		}
		keys = append(keys, idx{k, i})
	}
	sort.Slice(keys, func(a, b int) bool { return keys[a].n < keys[b].n })

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = k.key
	}
	return out
}

func parseAppID(s string) (uint32, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid app id %q", s)
	}
	return uint32(id), nil
}
