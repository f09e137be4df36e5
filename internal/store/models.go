package store

import "time"

// ReportStatus is the workflow state of a daily report.
type ReportStatus string

const (
	StatusDraft         ReportStatus = "draft"
	StatusSubmitted     ReportStatus = "submitted"
	StatusApproved      ReportStatus = "approved"
	StatusNeedsRevision ReportStatus = "needs_revision"
)

// Priority is shared by client requests and worker feedback.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type ChangeCategory string

const (
	ChangeEnvironment ChangeCategory = "environment"
	ChangeEquipment   ChangeCategory = "equipment"
	ChangeNeighbor    ChangeCategory = "neighbor"
	ChangeOther       ChangeCategory = "other"
)

type ImpactLevel string

const (
	ImpactMinor    ImpactLevel = "minor"
	ImpactCaution  ImpactLevel = "caution"
	ImpactCritical ImpactLevel = "critical"
)

type RequestType string

const (
	RequestAddition   RequestType = "addition"
	RequestChange     RequestType = "change"
	RequestComplaint  RequestType = "complaint"
	RequestQuestion   RequestType = "question"
	RequestEvaluation RequestType = "evaluation"
)

type RequestStatus string

const (
	RequestResolved  RequestStatus = "resolved"
	RequestReviewing RequestStatus = "reviewing"
	RequestOpen      RequestStatus = "open"
)

type FeedbackType string

const (
	FeedbackObservation  FeedbackType = "observation"
	FeedbackSuggestion   FeedbackType = "suggestion"
	FeedbackIssue        FeedbackType = "issue"
	FeedbackConsultation FeedbackType = "consultation"
)

type ConcernCategory string

const (
	ConcernSafety   ConcernCategory = "safety"
	ConcernQuality  ConcernCategory = "quality"
	ConcernSchedule ConcernCategory = "schedule"
	ConcernCost     ConcernCategory = "cost"
	ConcernOther    ConcernCategory = "other"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
	RiskUrgent RiskLevel = "urgent"
)

type ConcernStatus string

const (
	ConcernNew        ConcernStatus = "new"
	ConcernInProgress ConcernStatus = "in_progress"
	ConcernResolved   ConcernStatus = "resolved"
	ConcernMonitoring ConcernStatus = "monitoring"
)

type PhotoCategory string

const (
	PhotoBefore    PhotoCategory = "before_work"
	PhotoDuring    PhotoCategory = "during_work"
	PhotoAfter     PhotoCategory = "after_work"
	PhotoIssue     PhotoCategory = "issue_area"
	PhotoCompleted PhotoCategory = "completed"
	PhotoOther     PhotoCategory = "other"
)

type CommunicationType string

const (
	CommContractor CommunicationType = "contractor"
	CommClient     CommunicationType = "client"
	CommSupervisor CommunicationType = "supervisor"
	CommPrime      CommunicationType = "prime_contractor"
	CommOther      CommunicationType = "other"
)

type ContactMethod string

const (
	MethodInPerson ContactMethod = "in_person"
	MethodPhone    ContactMethod = "phone"
	MethodEmail    ContactMethod = "email"
	MethodChat     ContactMethod = "chat"
	MethodOther    ContactMethod = "other"
)

// WorkHours is the daily working window, "HH:MM" strings.
type WorkHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Progress holds planned vs actual completion percentages.
type Progress struct {
	Planned int `json:"planned"`
	Actual  int `json:"actual"`
}

type WorkItem struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
	Details     string `json:"details,omitempty"`
	TimeSpent   int    `json:"timeSpent,omitempty"` // minutes
}

type Material struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Supplier string  `json:"supplier,omitempty"`
	Notes    string  `json:"notes,omitempty"`
}

type Worker struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	HoursWorked float64  `json:"hoursWorked"`
	Tasks       []string `json:"tasks,omitempty"`
}

// ChangeRecord is a noted on-site change (environment, equipment, ...).
type ChangeRecord struct {
	ID             string         `json:"id"`
	Category       ChangeCategory `json:"category"`
	Description    string         `json:"description"`
	Impact         ImpactLevel    `json:"impact"`
	Timestamp      time.Time      `json:"timestamp"`
	PhotoID        string         `json:"photoId,omitempty"`
	ActionRequired string         `json:"actionRequired,omitempty"`
	ReportedBy     string         `json:"reportedBy"`
}

// ClientRequest is a client-originated item with priority and status.
type ClientRequest struct {
	ID            string        `json:"id"`
	Type          RequestType   `json:"type"`
	Content       string        `json:"content"`
	Priority      Priority      `json:"priority"`
	Response      string        `json:"response"`
	Status        RequestStatus `json:"status"`
	Timestamp     time.Time     `json:"timestamp"`
	ContactPerson string        `json:"contactPerson,omitempty"`
}

// WorkerFeedback is a field-worker-originated note.
type WorkerFeedback struct {
	ID          string       `json:"id"`
	Type        FeedbackType `json:"type"`
	Content     string       `json:"content"`
	WorkerName  string       `json:"workerName"`
	Timestamp   time.Time    `json:"timestamp"`
	ActionTaken string       `json:"actionTaken,omitempty"`
	Priority    Priority     `json:"priority"`
}

// Concern is a risk item with level, impact and recommended action.
type Concern struct {
	ID                string          `json:"id"`
	Category          ConcernCategory `json:"category"`
	Description       string          `json:"description"`
	RiskLevel         RiskLevel       `json:"riskLevel"`
	Timestamp         time.Time       `json:"timestamp"`
	PotentialImpact   string          `json:"potentialImpact"`
	RecommendedAction string          `json:"recommendedAction"`
	ReportedBy        string          `json:"reportedBy"`
	Status            ConcernStatus   `json:"status"`
}

type Photo struct {
	ID                 string        `json:"id"`
	Filename           string        `json:"filename"`
	URL                string        `json:"url"`
	Caption            string        `json:"caption,omitempty"`
	Category           PhotoCategory `json:"category"`
	Timestamp          time.Time     `json:"timestamp"`
	Location           string        `json:"location,omitempty"`
	AssociatedReportID string        `json:"associatedReportId,omitempty"`
}

type Communication struct {
	ID               string            `json:"id"`
	Type             CommunicationType `json:"type"`
	Content          string            `json:"content"`
	ContactPerson    string            `json:"contactPerson"`
	Timestamp        time.Time         `json:"timestamp"`
	Method           ContactMethod     `json:"method"`
	FollowUpRequired bool              `json:"followUpRequired"`
	FollowUpDate     *time.Time        `json:"followUpDate,omitempty"`
}

// DailyReport is one record of construction-site activity for a project
// and calendar day.
type DailyReport struct {
	ID             string           `json:"id"`
	Date           time.Time        `json:"date"`
	ProjectName    string           `json:"projectName"`
	Location       string           `json:"location"`
	Weather        string           `json:"weather"`
	Temperature    float64          `json:"temperature"`
	Reporter       string           `json:"reporter"`
	Supervisor     string           `json:"supervisor"`
	WorkHours      WorkHours        `json:"workHours"`
	WorkCompleted  []WorkItem       `json:"workCompleted"`
	Progress       Progress         `json:"progress"`
	Materials      []Material       `json:"materials"`
	Workers        []Worker         `json:"workers"`
	Changes        []ChangeRecord   `json:"changes"`
	ClientRequests []ClientRequest  `json:"clientRequests"`
	WorkerFeedback []WorkerFeedback `json:"workerFeedback"`
	Concerns       []Concern        `json:"concerns"`
	Photos         []Photo          `json:"photos"`
	TomorrowPlan   string           `json:"tomorrowPlan"`
	Communications []Communication  `json:"communications"`
	Notes          string           `json:"notes"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ProjectInfo is a longer-lived engagement that reports reference by name.
// There is deliberately no referential integrity: deleting a project leaves
// its reports untouched.
type ProjectInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Client      string    `json:"client"`
	Supervisor  string    `json:"supervisor"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
}

type NotificationSettings struct {
	DailyReminder bool   `json:"dailyReminder"`
	ReminderTime  string `json:"reminderTime"`
	WeeklyReport  bool   `json:"weeklyReport"`
}

type UserSettings struct {
	DefaultReporter   string               `json:"defaultReporter"`
	DefaultSupervisor string               `json:"defaultSupervisor"`
	FavoriteTemplates []string             `json:"favoriteTemplates"`
	Notifications     NotificationSettings `json:"notificationSettings"`
}

// ReportSummary is the lightweight projection used by list views.
type ReportSummary struct {
	ID          string       `json:"id"`
	Date        time.Time    `json:"date"`
	ProjectName string       `json:"projectName"`
	Status      ReportStatus `json:"status"`
	HasChanges  bool         `json:"hasChanges"`
	HasRequests bool         `json:"hasRequests"`
	HasConcerns bool         `json:"hasConcerns"`
	PhotoCount  int          `json:"photoCount"`
}

// ReportFilter selects reports for queries and export.
type ReportFilter struct {
	ProjectName string
	From        *time.Time
	To          *time.Time
}
