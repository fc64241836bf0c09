package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// RosterModule provides the active-mechanic reference data consumed by
// the scheduling grid.
type RosterModule struct {
	repo *MechanicRepository
}

// Compile-time interface checks.
var _ mono.Module = (*RosterModule)(nil)
var _ mono.ServiceProviderModule = (*RosterModule)(nil)

// NewModule creates a new RosterModule.
func NewModule() *RosterModule {
	return &RosterModule{
		repo: NewMechanicRepository(),
	}
}

// Name returns the module name.
func (m *RosterModule) Name() string {
	return "roster"
}

// RegisterServices registers request-reply services in the service container.
func (m *RosterModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "get-mechanic", json.Unmarshal, json.Marshal, m.getMechanic,
	); err != nil {
		return fmt.Errorf("failed to register get-mechanic service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "validate-mechanic", json.Unmarshal, json.Marshal, m.validateMechanic,
	); err != nil {
		return fmt.Errorf("failed to register validate-mechanic service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-mechanics", json.Unmarshal, json.Marshal, m.listMechanics,
	); err != nil {
		return fmt.Errorf("failed to register list-mechanics service: %w", err)
	}

	log.Printf("[roster] Registered services: get-mechanic, validate-mechanic, list-mechanics")
	return nil
}

// getMechanic handles the get-mechanic service request.
func (m *RosterModule) getMechanic(_ context.Context, req GetMechanicRequest, _ *mono.Msg) (GetMechanicResponse, error) {
	mech, found := m.repo.FindByID(req.MechanicID)
	if !found {
		return GetMechanicResponse{Found: false}, nil
	}
	return GetMechanicResponse{Mechanic: mech, Found: true}, nil
}

// validateMechanic handles the validate-mechanic service request.
func (m *RosterModule) validateMechanic(_ context.Context, req ValidateMechanicRequest, _ *mono.Msg) (ValidateMechanicResponse, error) {
	return ValidateMechanicResponse{Valid: m.repo.Exists(req.MechanicID)}, nil
}

// listMechanics handles the list-mechanics service request.
func (m *RosterModule) listMechanics(_ context.Context, _ ListMechanicsRequest, _ *mono.Msg) (ListMechanicsResponse, error) {
	mechanics := m.repo.All()
	return ListMechanicsResponse{Mechanics: mechanics, Total: len(mechanics)}, nil
}

// Start initializes the module.
func (m *RosterModule) Start(_ context.Context) error {
	m.repo.SeedDemoMechanics()
	log.Println("[roster] Module started with demo mechanics")
	return nil
}

// Stop shuts down the module.
func (m *RosterModule) Stop(_ context.Context) error {
	log.Println("[roster] Module stopped")
	return nil
}
