package roster

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// RosterPort defines the interface for mechanic reference-data lookups
// used by other modules.
type RosterPort interface {
	GetMechanic(ctx context.Context, mechanicID string) (*MechanicInfo, error)
	ValidateMechanic(ctx context.Context, mechanicID string) (bool, error)
	ListMechanics(ctx context.Context) (*ListMechanicsResponse, error)
}

// rosterAdapter wraps ServiceContainer for type-safe cross-module
// communication.
type rosterAdapter struct {
	container mono.ServiceContainer
}

// NewRosterAdapter creates a new adapter for roster services.
// container is the ServiceContainer from the roster module received via
// SetDependencyServiceContainer.
func NewRosterAdapter(container mono.ServiceContainer) RosterPort {
	if container == nil {
		panic("roster adapter requires non-nil ServiceContainer")
	}
	return &rosterAdapter{container: container}
}

// GetMechanic retrieves a mechanic by ID via the get-mechanic service.
func (a *rosterAdapter) GetMechanic(ctx context.Context, mechanicID string) (*MechanicInfo, error) {
	req := GetMechanicRequest{MechanicID: mechanicID}
	var resp GetMechanicResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "get-mechanic", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("get-mechanic service call failed: %w", err)
	}
	if !resp.Found {
		return nil, fmt.Errorf("mechanic not found: %s", mechanicID)
	}
	return resp.Mechanic, nil
}

// ValidateMechanic checks if a mechanic exists via the validate-mechanic service.
func (a *rosterAdapter) ValidateMechanic(ctx context.Context, mechanicID string) (bool, error) {
	req := ValidateMechanicRequest{MechanicID: mechanicID}
	var resp ValidateMechanicResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "validate-mechanic", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return false, fmt.Errorf("validate-mechanic service call failed: %w", err)
	}
	return resp.Valid, nil
}

// ListMechanics returns the active mechanics via the list-mechanics service.
func (a *rosterAdapter) ListMechanics(ctx context.Context) (*ListMechanicsResponse, error) {
	req := ListMechanicsRequest{}
	var resp ListMechanicsResponse
	if err := helper.CallRequestReplyService(
		ctx, a.container, "list-mechanics", json.Marshal, json.Unmarshal, &req, &resp,
	); err != nil {
		return nil, fmt.Errorf("list-mechanics service call failed: %w", err)
	}
	return &resp, nil
}
