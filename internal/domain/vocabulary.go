package domain

import (
	"slices"
	"strings"
	"sync"
)

// Vocabulary is the set of selectable sector labels.
// Custom labels are always a subset of all labels.
type Vocabulary struct {
	mu     sync.RWMutex
	all    []string
	custom map[string]struct{}
}

// NewVocabulary builds a vocabulary from built-in and custom labels.
// Blank and duplicate labels are dropped.
func NewVocabulary(builtin, custom []string) *Vocabulary {
	v := &Vocabulary{}
	v.Replace(builtin, custom)
	return v
}

// Replace swaps the whole vocabulary, typically after loading it from storage
func (v *Vocabulary) Replace(builtin, custom []string) {
	all := make([]string, 0, len(builtin)+len(custom))
	seen := make(map[string]struct{}, len(builtin)+len(custom))
	customSet := make(map[string]struct{}, len(custom))

	add := func(label string) bool {
		label = strings.TrimSpace(label)
		if label == "" {
			return false
		}
		if _, ok := seen[label]; ok {
			return false
		}
		seen[label] = struct{}{}
		all = append(all, label)
		return true
	}

	for _, label := range builtin {
		add(label)
	}
	for _, label := range custom {
		if IsSentinel(label) {
			continue
		}
		if add(label) {
			customSet[strings.TrimSpace(label)] = struct{}{}
		}
	}
	slices.Sort(all)

	v.mu.Lock()
	v.all = all
	v.custom = customSet
	v.mu.Unlock()
}

// Contains reports whether label is a known sector
func (v *Vocabulary) Contains(label string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, found := slices.BinarySearch(v.all, label)
	return found
}

// IsCustom reports whether label was added by an operator
func (v *Vocabulary) IsCustom(label string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.custom[label]
	return ok
}

// AddCustom inserts a new operator label. It returns false when the label
// was already known or is a placeholder, in which case nothing changes.
func (v *Vocabulary) AddCustom(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" || IsSentinel(label) {
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	pos, found := slices.BinarySearch(v.all, label)
	if found {
		return false
	}
	v.all = slices.Insert(v.all, pos, label)
	v.custom[label] = struct{}{}
	return true
}

// RemoveCustom drops an operator label. Built-in labels are never removed.
// Records carrying the label keep it.
func (v *Vocabulary) RemoveCustom(label string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.custom[label]; !ok {
		return false
	}
	delete(v.custom, label)
	if pos, found := slices.BinarySearch(v.all, label); found {
		v.all = slices.Delete(v.all, pos, pos+1)
	}
	return true
}

// SortedAll returns a copy of every label in alphabetical order
func (v *Vocabulary) SortedAll() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.all)
}

// Custom returns the operator labels in alphabetical order
func (v *Vocabulary) Custom() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]string, 0, len(v.custom))
	for label := range v.custom {
		out = append(out, label)
	}
	slices.Sort(out)
	return out
}

// Len returns the number of labels
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.all)
}
