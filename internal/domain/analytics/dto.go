package analytics

// DashboardStats is a point-in-time snapshot computed fresh on every call;
// nothing here is persisted or cached.
type DashboardStats struct {
	TotalEmployees       int64 `json:"total_employees"`
	TotalDepartments     int64 `json:"total_departments"`
	PresentToday         int64 `json:"present_today"`
	OnLeaveToday         int64 `json:"on_leave_today"`
	PendingLeaveRequests int64 `json:"pending_leave_requests"`
	PendingDocuments     int64 `json:"pending_documents"`
	CompletedTasks       int64 `json:"completed_tasks"`
	TotalTasks           int64 `json:"total_tasks"`
}

// TrendPoint is one day of the attendance trend. Name is the three-letter
// weekday label.
type TrendPoint struct {
	Name    string `json:"name"`
	Present int64  `json:"present"`
	Late    int64  `json:"late"`
	Absent  int64  `json:"absent"`
}

// ChartPoint is a generic name/value pair for distribution charts.
type ChartPoint struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type ReportsData struct {
	AttendanceTrend        []TrendPoint `json:"attendance_trend"`
	DepartmentDistribution []ChartPoint `json:"department_distribution"`
	TaskStatusDistribution []ChartPoint `json:"task_status_distribution"`
}

// EmployeeStats is the per-employee snapshot. OnTimeArrival and
// AvgWorkHours are fixed placeholders until derived for real.
type EmployeeStats struct {
	AttendanceRate float64 `json:"attendance_rate"`
	OnTimeArrival  float64 `json:"on_time_arrival"`
	AvgWorkHours   float64 `json:"avg_work_hours"`
	LeaveBalance   int     `json:"leave_balance"`
	PendingTasks   int64   `json:"pending_tasks"`
}
