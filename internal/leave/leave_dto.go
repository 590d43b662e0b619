package leave

type OpenDayRequest struct {
	Date string `json:"date" binding:"required"`
}

// UpdateFormRequest carries partial edits; nil fields are left untouched.
// Dates are the form-input shape, YYYY-MM-DD.
type UpdateFormRequest struct {
	LeaveType   *string `json:"leaveType"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Description *string `json:"description"`
}

type CalendarEntryResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Color  string `json:"color"`
	Status string `json:"status"`
	AllDay bool   `json:"allDay"`
}

type HolidayResponse struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

type FormResponse struct {
	SourceID    string   `json:"sourceId,omitempty"`
	Editing     bool     `json:"editing"`
	LeaveType   string   `json:"leaveType"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Description string   `json:"description"`
	Locked      bool     `json:"locked"`
	Phase       string   `json:"phase"`
	LeaveTypes  []string `json:"leaveTypes"`
}

const (
	ModeHoliday = "holiday"
	ModeEdit    = "edit"
	ModeCreate  = "create"
)

type DayViewResponse struct {
	Mode    string           `json:"mode"`
	Holiday *HolidayResponse `json:"holiday,omitempty"`
	Form    *FormResponse    `json:"form,omitempty"`
}

type LeaveResponse struct {
	ID          string `json:"id"`
	LeaveType   string `json:"leaveType"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Status      string `json:"status"`
}
