package combination

import "github.com/google/uuid"

// GroupSelection is the set of values picked for one attribute group.
type GroupSelection struct {
	GroupID  uuid.UUID   `json:"group_id" validate:"uuid_required"`
	ValueIDs []uuid.UUID `json:"value_ids" validate:"required,min=1"`
}

// Selection keeps the picked attribute values in the order the user picked
// them. A group never stays in the selection with zero values.
type Selection struct {
	groups []GroupSelection
}

func NewSelection() *Selection {
	return &Selection{}
}

// FromGroups builds a Selection from a request payload. Duplicate groups are
// merged into the first occurrence and groups without values are skipped.
func FromGroups(groups []GroupSelection) *Selection {
	s := NewSelection()
	for _, g := range groups {
		s.Select(g.GroupID, g.ValueIDs...)
	}
	return s
}

// Select adds values to a group, ignoring values that are already selected.
func (s *Selection) Select(groupID uuid.UUID, valueIDs ...uuid.UUID) {
	for _, valueID := range valueIDs {
		if s.Selected(groupID, valueID) {
			continue
		}
		idx := s.indexOf(groupID)
		if idx < 0 {
			s.groups = append(s.groups, GroupSelection{GroupID: groupID})
			idx = len(s.groups) - 1
		}
		s.groups[idx].ValueIDs = append(s.groups[idx].ValueIDs, valueID)
	}
}

// Toggle flips a single value. Deselecting the last value of a group removes
// the group entry.
func (s *Selection) Toggle(groupID, valueID uuid.UUID) {
	if !s.Selected(groupID, valueID) {
		s.Select(groupID, valueID)
		return
	}

	idx := s.indexOf(groupID)
	values := s.groups[idx].ValueIDs
	kept := make([]uuid.UUID, 0, len(values)-1)
	for _, v := range values {
		if v != valueID {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		s.groups = append(s.groups[:idx], s.groups[idx+1:]...)
		return
	}
	s.groups[idx].ValueIDs = kept
}

// Selected reports whether valueID is picked within groupID.
func (s *Selection) Selected(groupID, valueID uuid.UUID) bool {
	idx := s.indexOf(groupID)
	if idx < 0 {
		return false
	}
	for _, v := range s.groups[idx].ValueIDs {
		if v == valueID {
			return true
		}
	}
	return false
}

func (s *Selection) Empty() bool {
	return s == nil || len(s.groups) == 0
}

// Groups returns a copy of the selection in insertion order.
func (s *Selection) Groups() []GroupSelection {
	if s == nil {
		return nil
	}
	out := make([]GroupSelection, len(s.groups))
	for i, g := range s.groups {
		out[i] = GroupSelection{
			GroupID:  g.GroupID,
			ValueIDs: append([]uuid.UUID(nil), g.ValueIDs...),
		}
	}
	return out
}

func (s *Selection) indexOf(groupID uuid.UUID) int {
	for i, g := range s.groups {
		if g.GroupID == groupID {
			return i
		}
	}
	return -1
}
