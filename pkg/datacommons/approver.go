package datacommons

import "context"

// Approver handles user interaction for approval workflows,
// particularly before overwriting an already-registered dataset.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the dataset id for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before replacing the
	// record registered under datasetID.
	//
	// Returns true if approved, false if denied, and an error if the
	// approval process itself failed (for example, no terminal).
	RequestApproval(ctx context.Context, datasetID string) (bool, error)
}
