package constants

// Pause Overlay
const (
	// PauseCaption is the text shown in the paused overlay box
	PauseCaption = "Matrix Failure"

	// OverlayPaddingX is the horizontal padding added to the caption width on both sides combined
	OverlayPaddingX = 6

	// OverlayHeight is the fixed row count of the overlay box
	OverlayHeight = 5

	// CaptionRow and CaptionCol are the caption offsets inside the box
	CaptionRow = 2
	CaptionCol = 3
)
