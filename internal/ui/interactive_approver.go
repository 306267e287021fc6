package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aumai/datacommons/pkg/datacommons"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the dataset id
// to confirm overwriting a registered record.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading from
// stdin and writing to stderr.
func NewInteractiveApprover(verbose bool) datacommons.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts the user to type the dataset id to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, datasetID string) (bool, error) {
	fmt.Fprintf(a.output, "\n⚠️  WARNING: You are about to OVERWRITE the registered dataset '%s'\n", datasetID)
	fmt.Fprintln(a.output, "This will permanently replace the existing metadata record!")
	fmt.Fprintf(a.output, "\nTo confirm, type the dataset id '%s' and press Enter: ", datasetID)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == datasetID {
			fmt.Fprintln(a.output, "✓ Confirmed. Proceeding with dataset overwrite...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match dataset id '%s'. Operation cancelled.\n", input, datasetID)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ datacommons.Approver = (*InteractiveApprover)(nil)
