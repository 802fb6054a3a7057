package ui

// Layout constants shared by the browse views.
const (
	// ScrollMargin is the number of items to keep visible above and below
	// the cursor in a results list.
	ScrollMargin = 2

	// HeaderHeight is the space for the header line plus its trailing blank.
	HeaderHeight = 2

	// HelpHeight is the space for the help line plus its leading blank.
	HelpHeight = 2

	// BorderHeight is the vertical space a rounded panel border consumes.
	BorderHeight = 2

	// ListOverhead is the total chrome around the results list: header,
	// results label with its blank, and help.
	ListOverhead = HeaderHeight + HelpHeight + 2

	// ViewOverhead is the single help row kept under the caption while an
	// artwork is on screen.
	ViewOverhead = 1
)
