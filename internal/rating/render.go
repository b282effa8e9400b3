package rating

// IconState marks a rendered position as selected or not.
type IconState int

const (
	// Outline marks a position above the current value.
	Outline IconState = iota
	// Filled marks a position at or below the current value.
	Filled
)

func (s IconState) String() string {
	if s == Filled {
		return "filled"
	}
	return "outline"
}

// Icon describes one rendered position. Class is the configured icon class
// token for its state.
type Icon struct {
	Index int
	State IconState
	Class string
}

// Render projects value onto settings.TopLimit icons in index order 1..TopLimit.
// A NaN value renders every icon as outline.
func Render(value Value, settings Settings) []Icon {
	if settings.TopLimit <= 0 {
		return nil
	}

	icons := make([]Icon, 0, settings.TopLimit)
	for i := 1; i <= settings.TopLimit; i++ {
		icon := Icon{Index: i, State: Outline, Class: settings.OutlineIcon}
		if value.Covers(i) {
			icon.State = Filled
			icon.Class = settings.FilledIcon
		}
		icons = append(icons, icon)
	}
	return icons
}
