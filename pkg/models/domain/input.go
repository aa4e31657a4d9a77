package domain

import "fmt"

type InputType string

const (
	InputTap           InputType = "tap"
	InputDrag          InputType = "drag"
	InputRelease       InputType = "release"
	InputToggleLabel   InputType = "toggle_label"
	InputSort          InputType = "sort"
	InputToggleOption  InputType = "toggle_option"
	InputReset         InputType = "reset"
	InputAnimationDone InputType = "animation_done"
)

// Input is a user or timer event addressed to a chart instance. Pointer inputs carry
// plot-area coordinates; the instance resolves them to an item.
type Input struct {
	Type   InputType
	X      float64
	Y      float64
	Label  string
	Sort   SortMode
	Option string
}

func ParseInputType(s string) (InputType, error) {
	switch t := InputType(s); t {
	case InputTap, InputDrag, InputRelease, InputToggleLabel, InputSort, InputToggleOption, InputReset:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
}
