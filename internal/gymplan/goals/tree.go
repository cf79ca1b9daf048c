package goals

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// LinkSubGoals fills SubGoalIDs of every goal from the parent references of the others.
// Child progress is never rolled up into the parent.
func LinkSubGoals(goals []*Goal) {
	byID := make(map[uuid.UUID]*Goal, len(goals))
	for _, g := range goals {
		g.SubGoalIDs = []uuid.UUID{}
		byID[g.ID] = g
	}
	for _, g := range goals {
		if g.ParentID == nil {
			continue
		}
		if parent, ok := byID[*g.ParentID]; ok {
			parent.SubGoalIDs = append(parent.SubGoalIDs, g.ID)
		}
	}
	for _, g := range goals {
		sort.Slice(g.SubGoalIDs, func(i, j int) bool {
			return bytes.Compare(g.SubGoalIDs[i][:], g.SubGoalIDs[j][:]) < 0
		})
	}
}

// ValidateTree checks the goal hierarchy of a single user: every goal is valid, parents
// exist and are not micro goals, listed sub goals exist and point back to their parent,
// and there are no cycles.
func ValidateTree(goals []*Goal) error {
	byID := make(map[uuid.UUID]*Goal, len(goals))
	for _, g := range goals {
		if err := g.Validate(); err != nil {
			return err
		}
		if _, dup := byID[g.ID]; dup {
			return fmt.Errorf("%w: duplicate id %s", ErrInvalidGoal, g.ID)
		}
		byID[g.ID] = g
	}

	for _, g := range goals {
		if g.ParentID != nil {
			parent, ok := byID[*g.ParentID]
			if !ok {
				return fmt.Errorf("%w: parent %s of %s does not exist", ErrInvalidGoal, g.ParentID, g.ID)
			}
			if parent.Type == TypeMicro {
				return fmt.Errorf("%w: micro goal %s cannot have sub goals", ErrInvalidGoal, parent.ID)
			}
		}
		for _, childID := range g.SubGoalIDs {
			child, ok := byID[childID]
			if !ok {
				return fmt.Errorf("%w: sub goal %s of %s does not exist", ErrInvalidGoal, childID, g.ID)
			}
			if child.ParentID == nil || *child.ParentID != g.ID {
				return fmt.Errorf("%w: sub goal %s is not linked to %s", ErrInvalidGoal, childID, g.ID)
			}
		}
	}

	for _, g := range goals {
		seen := map[uuid.UUID]bool{g.ID: true}
		for cur := g; cur.ParentID != nil; {
			if seen[*cur.ParentID] {
				return fmt.Errorf("%w: cycle through %s", ErrInvalidGoal, g.ID)
			}
			seen[*cur.ParentID] = true
			cur = byID[*cur.ParentID]
		}
	}
	return nil
}
