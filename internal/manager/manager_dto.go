package manager

type EmployeeLeaveResponse struct {
	ID          string `json:"id"`
	Requester   string `json:"requester"`
	LeaveType   string `json:"leaveType"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Status      string `json:"status"`
	// Actionable mirrors the pending-only affordance of the task list.
	Actionable bool `json:"actionable"`
}

type ActionRequest struct {
	LeaveID string `json:"leaveId" binding:"required"`
	Action  string `json:"action" binding:"required,oneof=approve reject"`
}

type ActionResponse struct {
	ID        string `json:"id"`
	LeaveType string `json:"leaveType"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Status    string `json:"status"`
}
