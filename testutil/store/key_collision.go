package store

import (
	"bytes"
	"fmt"
	"sort"
	"testing"

	"cosmossdk.io/collections"
)

func keyBytes(t *testing.T, name string, key interface{}) []byte {
	t.Helper()

	var bz []byte
	switch k := key.(type) {
	case []byte:
		bz = k
	case collections.Prefix:
		bz = k.Bytes()
	default:
		t.Fatalf("unknown key type for %s: %T", name, key)
	}
	if len(bz) == 0 {
		t.Fatalf("key %s is empty", name)
	}
	return bz
}

// CheckKeyCollisions fails the test when two named store keys share the same
// bytes. It returns the key bytes (hex) -> names mapping for debugging.
func CheckKeyCollisions(t *testing.T, keys map[string]interface{}) map[string][]string {
	t.Helper()

	keyMap := make(map[string][]string, len(keys))
	for name, key := range keys {
		keyStr := fmt.Sprintf("%x", keyBytes(t, name, key))
		keyMap[keyStr] = append(keyMap[keyStr], name)
	}

	for keyStr, names := range keyMap {
		if len(names) > 1 {
			sort.Strings(names)
			t.Fatalf("KEY COLLISION: key 0x%s is used by %v", keyStr, names)
		}
	}
	return keyMap
}

// CheckPrefixCollisions fails the test when one store key is a prefix of
// another, since iterating the shorter prefix would walk the longer one.
func CheckPrefixCollisions(t *testing.T, keys map[string]interface{}) {
	t.Helper()

	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, a := range names {
		ka := keyBytes(t, a, keys[a])
		for _, b := range names[i+1:] {
			kb := keyBytes(t, b, keys[b])
			if bytes.HasPrefix(ka, kb) || bytes.HasPrefix(kb, ka) {
				t.Errorf("PREFIX COLLISION: %s (0x%x) and %s (0x%x)", a, ka, b, kb)
			}
		}
	}
}
