package gateway

import "github.com/shopspring/decimal"

// Wire shapes of the remote leave API. Field casing is part of the contract:
// LeaveType is capitalized, everything else is lower camel, ids are "_id".

type Event struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId,omitempty"`
	LeaveType   string `json:"LeaveType"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type EventPayload struct {
	ID          string `json:"id,omitempty"`
	LeaveType   string `json:"LeaveType"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Display     string `json:"display"`
}

type Holiday struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type Manager struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
}

type BalanceRequest struct {
	UserID    string `json:"userId"`
	LeaveType string `json:"leaveType"`
}

type BalanceResponse struct {
	AvailableLeave decimal.Decimal `json:"availableLeave"`
}

// EmployeeLeave is the manager-side listing; the API populates the requester
// where the employee view carries a bare owner id.
type EmployeeLeave struct {
	ID          string    `json:"_id"`
	Requester   Requester `json:"userId"`
	LeaveType   string    `json:"LeaveType"`
	Start       string    `json:"start"`
	End         string    `json:"end"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

type Requester struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
}

type LeaveActionRequest struct {
	LeaveID string `json:"leaveId"`
	Action  string `json:"action"`
}

type User struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Role     string `json:"role"`
}

type UserPayload struct {
	ID       string `json:"_id,omitempty"`
	FullName string `json:"fullName"`
	Mobile   string `json:"mobile"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
}

type UserSearchRequest struct {
	Search string `json:"search"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type UserSearchResponse struct {
	Data []User `json:"data"`
}

type errorEnvelope struct {
	Message string `json:"message"`
}
