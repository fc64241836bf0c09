package roster

// MechanicInfo represents an active mechanic.
type MechanicInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
}

// GetMechanicRequest is the request for getting a mechanic.
type GetMechanicRequest struct {
	MechanicID string `json:"mechanic_id"`
}

// GetMechanicResponse is the response for getting a mechanic.
type GetMechanicResponse struct {
	Mechanic *MechanicInfo `json:"mechanic,omitempty"`
	Found    bool          `json:"found"`
}

// ValidateMechanicRequest is the request for validating a mechanic.
type ValidateMechanicRequest struct {
	MechanicID string `json:"mechanic_id"`
}

// ValidateMechanicResponse is the response for validating a mechanic.
type ValidateMechanicResponse struct {
	Valid bool `json:"valid"`
}

// ListMechanicsRequest is the request for listing active mechanics.
type ListMechanicsRequest struct{}

// ListMechanicsResponse is the response for listing active mechanics.
// Mechanics are returned in their fixed grid-row order.
type ListMechanicsResponse struct {
	Mechanics []MechanicInfo `json:"mechanics"`
	Total     int            `json:"total"`
}
