package domain

// Message keys resolved through the translation port.
const (
	// MsgNotApplicable is shown for missing or negative byte counts.
	MsgNotApplicable = "core.notapplicable"

	// MsgHumanReadableSize is the size template. It receives Size and Unit.
	MsgHumanReadableSize = "core.humanreadablesize"

	MsgSizeB  = "core.sizeb"
	MsgSizeKB = "core.sizekb"
	MsgSizeMB = "core.sizemb"
	MsgSizeGB = "core.sizegb"
	MsgSizeTB = "core.sizetb"
)
