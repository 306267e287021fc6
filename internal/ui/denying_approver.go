package ui

import (
	"context"
	"fmt"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// DenyingApprover implements the Approver interface for non-interactive
// runs without --force. It refuses every overwrite so that scripted
// invocations never silently replace a registered record.
type DenyingApprover struct{}

// NewDenyingApprover creates a new DenyingApprover.
func NewDenyingApprover() datacommons.Approver {
	return DenyingApprover{}
}

// RequestApproval always refuses and explains how to override.
func (DenyingApprover) RequestApproval(ctx context.Context, datasetID string) (bool, error) {
	return false, fmt.Errorf("cannot prompt for confirmation to overwrite dataset '%s': %w (re-run with --force to overwrite)", datasetID, datacommons.ErrNotInteractive)
}

// Verify DenyingApprover implements the Approver interface at compile time
var _ datacommons.Approver = DenyingApprover{}
