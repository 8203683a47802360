package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// ErrNotInteractive is returned when input is needed but prompts are off
var ErrNotInteractive = errors.New("input required but prompts are disabled")

// Ask prompts for a single line. value keeps its current content when
// prompts are disabled and it is already set.
func (c *Context) Ask(title string, value *string, validate func(string) error) error {
	if !c.Interactive {
		if *value == "" {
			return fmt.Errorf("%w: %s", ErrNotInteractive, title)
		}
		if validate != nil {
			return validate(*value)
		}
		return nil
	}
	in := huh.NewInput().Title(title).Value(value)
	if validate != nil {
		in = in.Validate(validate)
	}
	return huh.NewForm(huh.NewGroup(in)).Run()
}

// Confirm asks a yes/no question. Without prompts it answers def.
func (c *Context) Confirm(title string, def bool) (bool, error) {
	if !c.Interactive {
		return def, nil
	}
	ok := def
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Affirmative("Yes").Negative("No").Value(&ok),
	)).Run()
	return ok, err
}
