// Package record moves migrated content records into container columns.
package record

import (
	"context"
	"fmt"
)

// Command is a move instruction for the record data handler.
type Command struct {
	// Update holds field values set on the moved record.
	Update map[string]any

	// Action is the data handler action, always "paste".
	Action string

	// Target is the page or container id to paste into, or the negated
	// id of the record to paste after.
	Target string
}

// Mover executes move commands, for example through the host's data
// handler.
type Mover interface {
	Move(ctx context.Context, uid string, cmd Command) error
}

// MoveIntoContainer moves the record uid into column colPos of container.
// With a non-empty after the record is placed behind that record,
// otherwise at the top of the column.
func MoveIntoContainer(ctx context.Context, m Mover, uid, container string, colPos int, after string) error {
	target := container
	if after != "" {
		target = "-" + after
	}
	cmd := Command{
		Update: map[string]any{
			"tx_container_parent": container,
			"colPos":              colPos,
		},
		Action: "paste",
		Target: target,
	}
	if err := m.Move(ctx, uid, cmd); err != nil {
		return fmt.Errorf("move %s into container %s: %w", uid, container, err)
	}
	return nil
}
