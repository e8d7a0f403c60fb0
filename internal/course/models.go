package course

// GradingType decides how a raw Grade.Value is normalised to a 0..100 score.
type GradingType string

const (
	GradingCheck  GradingType = "CHECK"  // 0 or 100
	GradingScale  GradingType = "SCALE"  // already 0..100
	GradingPoints GradingType = "POINTS" // raw points out of Activity.MaxPoints
)

func (t GradingType) Valid() bool {
	switch t {
	case GradingCheck, GradingScale, GradingPoints:
		return true
	}
	return false
}

type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"

	// view-only states, never stored in a record
	Unset AttendanceStatus = "unset"
	Mixed AttendanceStatus = "mixed"
)

// Status is the academic standing of a student.
type Status string

const (
	StatusApproved Status = "Aprobado"
	StatusFailed   Status = "Reprobado"
	StatusNoRights Status = "Sin Derecho"
)

// NoTeam labels students without a TeamID.
const NoTeam = "Sin Equipo"

type Student struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	TeamID string `json:"teamId,omitempty"`
}

type AttendanceRecord struct {
	Date      string           `json:"date"` // YYYY-MM-DD
	StudentID string           `json:"studentId"`
	Status    AttendanceStatus `json:"status"`
}

type RubricItem struct {
	ID         string  `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Percentage float64 `json:"percentage" validate:"gte=0,lte=100"`
}

type RubricSettings struct {
	MinAttendance float64      `json:"minAttendance" validate:"gte=0,lte=100"`
	MinGrade      float64      `json:"minGrade" validate:"gte=0,lte=100"`
	Items         []RubricItem `json:"items" validate:"dive"`
}

type Activity struct {
	ID           string      `json:"id"`
	Name         string      `json:"name" validate:"required"`
	RubricItemID string      `json:"rubricItemId" validate:"required"`
	GradingType  GradingType `json:"gradingType" validate:"oneof=CHECK SCALE POINTS"`
	MaxPoints    *float64    `json:"maxPoints,omitempty"`
	IsTeam       bool        `json:"isTeam"`
}

// Max returns MaxPoints or 0 when unset.
func (a Activity) Max() float64 {
	if a.MaxPoints == nil {
		return 0
	}
	return *a.MaxPoints
}

type Grade struct {
	StudentID  string  `json:"studentId"`
	ActivityID string  `json:"activityId"`
	Value      float64 `json:"value"`
}

type Course struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	GroupName  string             `json:"groupName"`
	Students   []Student          `json:"students"`
	Attendance []AttendanceRecord `json:"attendance"`
	Rubric     RubricSettings     `json:"rubric"`
	Activities []Activity         `json:"activities"`
	Grades     []Grade            `json:"grades"`
}
