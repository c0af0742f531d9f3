package dtos

// Inputs accept both the record field names (title_c) and the short names the
// web forms use (title). Services decide which one wins.

type JobInput struct {
	Name          string `json:"Name"`
	Tags          string `json:"Tags"`
	TitleC        string `json:"title_c"`
	Title         string `json:"title"`
	CompanyC      string `json:"company_c"`
	Company       string `json:"company"`
	DescriptionC  string `json:"description_c"`
	Description   string `json:"description"`
	RequirementsC string `json:"requirements_c"`
	LocationC     string `json:"location_c"`
	Location      string `json:"location"`
	SalaryRangeC  string `json:"salary_range_c"`
	TypeC         string `json:"type_c"`
	Type          string `json:"type"`
	PostedDateC   string `json:"posted_date_c"`
	StatusC       string `json:"status_c"`
	Status        string `json:"status"`
}

type CandidateInput struct {
	Name         string `json:"Name"`
	Tags         string `json:"Tags"`
	NameC        string `json:"name_c"`
	FullName     string `json:"name"`
	EmailC       string `json:"email_c"`
	Email        string `json:"email"`
	PhoneC       string `json:"phone_c"`
	Phone        string `json:"phone"`
	SkillsC      string `json:"skills_c"`
	ExperienceC  string `json:"experience_c"`
	EducationC   string `json:"education_c"`
	ResumeC      string `json:"resume_c"`
	LocationC    string `json:"location_c"`
	Location     string `json:"location"`
	PreferencesC string `json:"preferences_c"`
	DescriptionC string `json:"description_c"`
	Description  string `json:"description"`
}

type CompanyInput struct {
	Name         string `json:"Name"`
	Tags         string `json:"Tags"`
	NameC        string `json:"name_c"`
	CompanyName  string `json:"name"`
	DescriptionC string `json:"description_c"`
	IndustryC    string `json:"industry_c"`
	SizeC        string `json:"size_c"`
	LocationC    string `json:"location_c"`
	WebsiteC     string `json:"website_c"`
	JobsC        string `json:"jobs_c"`
}

type ApplicationInput struct {
	Name         string `json:"Name"`
	Tags         string `json:"Tags"`
	StatusC      string `json:"status_c"`
	Status       string `json:"status"`
	AppliedDateC string `json:"applied_date_c"`
	AppliedDate  string `json:"appliedDate"`
	CoverLetterC string `json:"cover_letter_c"`
	CoverLetter  string `json:"coverLetter"`
	NotesC       string `json:"notes_c"`
	Notes        string `json:"notes"`
	InterviewsC  string `json:"interviews_c"`
	Interviews   string `json:"interviews"`
	JobIDC       FlexID `json:"job_id_c"`
	JobID        FlexID `json:"jobId"`
	CandidateIDC FlexID `json:"candidate_id_c"`
	CandidateID  FlexID `json:"candidateId"`
}

type MessageInput struct {
	SenderIDC       FlexID `json:"sender_id_c"`
	SenderID        FlexID `json:"senderId"`
	ContentC        string `json:"content_c"`
	Content         string `json:"content"`
	ConversationIDC FlexID `json:"conversation_id_c"`
	ConversationID  FlexID `json:"conversationId"`
}

type ConversationInput struct {
	Name            string `json:"Name"`
	ParticipantName string `json:"participant_name_c" binding:"required"`
	JobTitle        string `json:"job_title_c"`
}

// JobExtractionRequest is the body of POST /jobs/extract.
type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}
