package registry

import (
	"context"
)

type mockApprover struct {
	approved bool
	err      error
	requests []string
}

func (m *mockApprover) RequestApproval(_ context.Context, datasetID string) (bool, error) {
	m.requests = append(m.requests, datasetID)
	return m.approved, m.err
}
