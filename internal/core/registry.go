package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]RuleDefinition)
	registryMu sync.RWMutex
)

// Register adds a rule definition to the registry.
// Panics if a rule with the same name is already registered or the rule has
// no Evaluate function.
func Register(def RuleDefinition) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if def.Evaluate == nil {
		panic(fmt.Sprintf("rule has no Evaluate func: %s", def.Name))
	}
	if _, exists := registry[def.Name]; exists {
		panic(fmt.Sprintf("rule already registered: %s", def.Name))
	}

	registry[def.Name] = def
}

// Get returns a rule definition by name.
// Returns false if not found.
func Get(name string) (RuleDefinition, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	def, ok := registry[name]
	return def, ok
}

// All returns all registered rules.
// Sorted by Order then by name for consistent ordering.
func All() []RuleDefinition {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]RuleDefinition, 0, len(registry))
	for _, def := range registry {
		result = append(result, def)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].Name < result[j].Name
	})

	return result
}

// RuleNames returns the names of all registered rules, in evaluation order.
func RuleNames() []string {
	defs := All()
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return names
}

// RuleCount returns the number of registered rules.
func RuleCount() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}
