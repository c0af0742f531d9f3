package models

import (
	"time"
)

// Table names as the backend knows them.
const (
	JobTable            = "job_c"
	CandidateTable      = "candidate_c"
	CompanyTable        = "company_c"
	ApplicationTable    = "application_c"
	ConversationTable   = "conversation_c"
	MessageTable        = "message_c"
	SavedJobTable       = "saved_job_c"
	SavedCandidateTable = "saved_candidate_c"
)

// Base holds the system fields every table carries.
// JSON names are the record field names used over the wire.
type Base struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"Id"`
	Name       string    `gorm:"column:name" json:"Name"`
	Tags       string    `gorm:"column:tags" json:"Tags"`
	CreatedOn  time.Time `gorm:"column:created_on;autoCreateTime" json:"CreatedOn"`
	ModifiedOn time.Time `gorm:"column:modified_on;autoUpdateTime" json:"ModifiedOn"`
}

type Job struct {
	Base
	Title        string `gorm:"column:title_c;not null;default:''" json:"title_c"`
	Company      string `gorm:"column:company_c" json:"company_c"`
	Description  string `gorm:"column:description_c;type:text" json:"description_c"`
	Requirements string `gorm:"column:requirements_c;type:text" json:"requirements_c"`
	Location     string `gorm:"column:location_c" json:"location_c"`
	SalaryRange  string `gorm:"column:salary_range_c" json:"salary_range_c"`
	Type         string `gorm:"column:type_c" json:"type_c"`
	PostedDate   string `gorm:"column:posted_date_c" json:"posted_date_c"`
	Status       string `gorm:"column:status_c;default:'Active'" json:"status_c"`
}

func (Job) TableName() string { return JobTable }

type Candidate struct {
	Base
	FullName    string `gorm:"column:name_c" json:"name_c"`
	Email       string `gorm:"column:email_c;index" json:"email_c"`
	Phone       string `gorm:"column:phone_c" json:"phone_c"`
	Skills      string `gorm:"column:skills_c;type:text" json:"skills_c"`
	Experience  string `gorm:"column:experience_c;type:text" json:"experience_c"`
	Education   string `gorm:"column:education_c;type:text" json:"education_c"`
	Resume      string `gorm:"column:resume_c" json:"resume_c"`
	Location    string `gorm:"column:location_c" json:"location_c"`
	Preferences string `gorm:"column:preferences_c;type:text" json:"preferences_c"`
	Description string `gorm:"column:description_c;type:text" json:"description_c"`
}

func (Candidate) TableName() string { return CandidateTable }

type Company struct {
	Base
	CompanyName string `gorm:"column:name_c" json:"name_c"`
	Description string `gorm:"column:description_c;type:text" json:"description_c"`
	Industry    string `gorm:"column:industry_c" json:"industry_c"`
	Size        string `gorm:"column:size_c" json:"size_c"`
	Location    string `gorm:"column:location_c" json:"location_c"`
	Website     string `gorm:"column:website_c" json:"website_c"`
	Jobs        string `gorm:"column:jobs_c;type:text" json:"jobs_c"`
}

func (Company) TableName() string { return CompanyTable }

type Application struct {
	Base
	Status      string `gorm:"column:status_c;default:'Applied'" json:"status_c"`
	AppliedDate string `gorm:"column:applied_date_c" json:"applied_date_c"`
	CoverLetter string `gorm:"column:cover_letter_c;type:text" json:"cover_letter_c"`
	Notes       string `gorm:"column:notes_c;type:text" json:"notes_c"`
	Interviews  string `gorm:"column:interviews_c;type:text" json:"interviews_c"`
	JobID       int64  `gorm:"column:job_id_c;index" json:"job_id_c"`
	CandidateID int64  `gorm:"column:candidate_id_c;index" json:"candidate_id_c"`
}

func (Application) TableName() string { return ApplicationTable }

type Conversation struct {
	Base
	ParticipantName string `gorm:"column:participant_name_c" json:"participant_name_c"`
	JobTitle        string `gorm:"column:job_title_c" json:"job_title_c"`
	LastMessage     string `gorm:"column:last_message_c;type:text" json:"last_message_c"`
	LastMessageTime string `gorm:"column:last_message_time_c" json:"last_message_time_c"`
	UnreadCount     int    `gorm:"column:unread_count_c" json:"unread_count_c"`
}

func (Conversation) TableName() string { return ConversationTable }

type Message struct {
	Base
	SenderID       int64  `gorm:"column:sender_id_c" json:"sender_id_c"`
	Content        string `gorm:"column:content_c;type:text" json:"content_c"`
	Timestamp      string `gorm:"column:timestamp_c" json:"timestamp_c"`
	Read           bool   `gorm:"column:read_c" json:"read_c"`
	ConversationID int64  `gorm:"column:conversation_id_c;index" json:"conversation_id_c"`
}

func (Message) TableName() string { return MessageTable }

type SavedJob struct {
	Base
	SavedAt string `gorm:"column:saved_at_c" json:"saved_at_c"`
	UserID  int64  `gorm:"column:user_id_c;index" json:"user_id_c"`
	JobID   int64  `gorm:"column:job_id_c;index" json:"job_id_c"`
}

func (SavedJob) TableName() string { return SavedJobTable }

type SavedCandidate struct {
	Base
	UserID      int64  `gorm:"column:user_id_c;index" json:"user_id_c"`
	SavedAt     string `gorm:"column:saved_at_c" json:"saved_at_c"`
	CandidateID int64  `gorm:"column:candidate_id_c;index" json:"candidate_id_c"`
}

func (SavedCandidate) TableName() string { return SavedCandidateTable }

// Registry maps every table to a constructor for its model.
var Registry = map[string]func() any{
	JobTable:            func() any { return &Job{} },
	CandidateTable:      func() any { return &Candidate{} },
	CompanyTable:        func() any { return &Company{} },
	ApplicationTable:    func() any { return &Application{} },
	ConversationTable:   func() any { return &Conversation{} },
	MessageTable:        func() any { return &Message{} },
	SavedJobTable:       func() any { return &SavedJob{} },
	SavedCandidateTable: func() any { return &SavedCandidate{} },
}

// All returns one instance of every model, for migrations.
func All() []any {
	return []any{
		&Job{}, &Candidate{}, &Company{}, &Application{},
		&Conversation{}, &Message{}, &SavedJob{}, &SavedCandidate{},
	}
}
