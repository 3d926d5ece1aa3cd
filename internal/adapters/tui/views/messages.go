package views

import "enrichio/internal/ports"

// Messages for view switching
type (
	SwitchToTableMsg   struct{}
	SwitchToHelpMsg    struct{}
	SwitchToLookupMsg  struct{}
	SwitchToBatchMsg   struct{}
	SwitchToUploadMsg  struct{}
	SwitchToSectorsMsg struct{}

	// SwitchToPickerMsg opens the sector picker for a table row
	SwitchToPickerMsg struct{ Index int }

	// SwitchToConfirmDeleteMsg asks before deleting a custom sector
	SwitchToConfirmDeleteMsg struct{ Label string }
)

// Requests carried out by the application
type (
	LookupRequestMsg    struct{ Name string }
	BatchRequestMsg     struct{ Text string }
	UploadRequestMsg    struct{ Path string }
	CancelRequestMsg    struct{}
	ClearRequestMsg     struct{}
	ToggleCompetitorMsg struct{ Index int }

	// EditBatchMsg opens the pasted list in $EDITOR
	EditBatchMsg struct{ Text string }

	// OverrideRequestMsg corrects the sector of the row at Index
	OverrideRequestMsg struct {
		Index  int
		Sector string
	}

	// DeleteSectorRequestMsg is sent once the operator confirmed
	DeleteSectorRequestMsg struct{ Label string }

	OpenLinkMsg struct{ Link string }
	CopyLinkMsg struct{ Link string }

	ExportRequestMsg struct{ Format ports.ExportFormat }
)
