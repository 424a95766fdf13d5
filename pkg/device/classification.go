package device

// Category is the tri-state classification of a client environment.
// Exactly one category holds at any evaluation.
type Category string

const (
	CategoryDesktop Category = "desktop"
	CategoryTablet  Category = "tablet"
	CategoryMobile  Category = "mobile"
)

// Classification is the result published to consumers on every evaluation.
// At most one of Mobile/Tablet is true; desktop is the derived complement.
type Classification struct {
	Mobile  bool `json:"is_mobile"`
	Tablet  bool `json:"is_tablet"`
	Loading bool `json:"is_loading"`
}

// MobileOrTablet reports whether the client should get the actionable-link
// treatment rather than a scannable code.
func (c Classification) MobileOrTablet() bool { return c.Mobile || c.Tablet }

// Desktop is the complement of MobileOrTablet. Consumers should check
// Loading first: while the first evaluation is in flight, both flags are
// false and Desktop reads true vacuously.
func (c Classification) Desktop() bool { return !c.Mobile && !c.Tablet }

// Category collapses the flags into the tri-state category.
func (c Classification) Category() Category {
	switch {
	case c.Mobile:
		return CategoryMobile
	case c.Tablet:
		return CategoryTablet
	default:
		return CategoryDesktop
	}
}
