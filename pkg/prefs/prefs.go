// Package prefs holds the persisted user preferences that shape the task
// view: whether completed tasks are shown and how the list is sorted.
package prefs

import (
	"encoding/json"
	"fmt"
)

// SortOrder is a closed enumeration encoding two independent boolean sort
// axes (by deadline, by priority). No other values are permitted; decoding an
// unknown value is an error.
type SortOrder int

const (
	None SortOrder = iota
	ByDeadline
	ByPriority
	ByDeadlineAndPriority
)

// DeadlineOn reports whether the deadline axis is set.
func (o SortOrder) DeadlineOn() bool {
	return o == ByDeadline || o == ByDeadlineAndPriority
}

// PriorityOn reports whether the priority axis is set.
func (o SortOrder) PriorityOn() bool {
	return o == ByPriority || o == ByDeadlineAndPriority
}

// Encode folds the two axes back into the enumeration.
func Encode(deadlineOn, priorityOn bool) SortOrder {
	switch {
	case deadlineOn && priorityOn:
		return ByDeadlineAndPriority
	case deadlineOn:
		return ByDeadline
	case priorityOn:
		return ByPriority
	default:
		return None
	}
}

// WithDeadline sets the deadline axis, preserving the priority axis.
func (o SortOrder) WithDeadline(checked bool) SortOrder {
	return Encode(checked, o.PriorityOn())
}

// WithPriority sets the priority axis, preserving the deadline axis.
func (o SortOrder) WithPriority(checked bool) SortOrder {
	return Encode(o.DeadlineOn(), checked)
}

var sortOrderNames = map[SortOrder]string{
	None:                  "none",
	ByDeadline:            "deadline",
	ByPriority:            "priority",
	ByDeadlineAndPriority: "deadline+priority",
}

func (o SortOrder) String() string {
	if name, ok := sortOrderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("SortOrder(%d)", int(o))
}

// ParseSortOrder resolves a name to its SortOrder. The set is closed.
func ParseSortOrder(s string) (SortOrder, error) {
	for order, name := range sortOrderNames {
		if name == s {
			return order, nil
		}
	}
	return None, fmt.Errorf("prefs: unknown sort order %q", s)
}

func (o SortOrder) MarshalJSON() ([]byte, error) {
	name, ok := sortOrderNames[o]
	if !ok {
		return nil, fmt.Errorf("prefs: invalid sort order %d", int(o))
	}
	return json.Marshal(name)
}

func (o *SortOrder) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	order, err := ParseSortOrder(name)
	if err != nil {
		return err
	}
	*o = order
	return nil
}

// UserPreferences is a complete preference snapshot. Partial state is never
// observable; readers always get the whole record.
type UserPreferences struct {
	ShowCompleted bool      `json:"showCompleted"`
	SortOrder     SortOrder `json:"sortOrder"`
}

// Default is the snapshot used when no preferences have been stored yet.
func Default() UserPreferences {
	return UserPreferences{ShowCompleted: false, SortOrder: None}
}
