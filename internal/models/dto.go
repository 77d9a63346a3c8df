package models

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type JobRequest struct {
	Title           string `json:"title"`
	Company         string `json:"company"`
	Description     string `json:"description"`
	Requirements    string `json:"requirements"`
	SalaryMin       int    `json:"salary_min"`
	SalaryMax       int    `json:"salary_max"`
	SalaryCurrency  string `json:"salary_currency"`
	Location        string `json:"location"`
	Industry        string `json:"industry"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SkillsRequired  string `json:"skills_required"`
	IsFeatured      bool   `json:"is_featured"`
	IsActive        bool   `json:"is_active"`
	ApplyURL        string `json:"apply_url"`
}

type ApplyRequest struct {
	ResumeID    string `json:"resume_id"`
	CoverLetter string `json:"cover_letter"`
}

type UploadResponse struct {
	ID              string   `json:"id"`
	Filename        string   `json:"filename"`
	Skills          []string `json:"skills"`
	Email           string   `json:"email,omitempty"`
	Phone           string   `json:"phone,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	Education       []string `json:"education"`
	IsPrimary       bool     `json:"is_primary"`
}

type JobListResponse struct {
	Jobs           []Job           `json:"jobs"`
	AggregatedJobs []AggregatedJob `json:"aggregated_jobs,omitempty"`
	Page           int             `json:"page"`
	PerPage        int             `json:"per_page"`
	Total          int64           `json:"total"`
	Industries     []string        `json:"industries,omitempty"`
	JobTypes       []string        `json:"job_types,omitempty"`
}

type MatchedJobResponse struct {
	Job             Job     `json:"job"`
	OverallScore    float64 `json:"overall_score"`
	SkillMatch      float64 `json:"skill_match"`
	TitleMatch      float64 `json:"title_match"`
	ExperienceMatch float64 `json:"experience_match"`
}

type RecommendedResponse struct {
	ResumeID          string               `json:"resume_id"`
	Skills            []string             `json:"skills"`
	MatchedJobs       []MatchedJobResponse `json:"matched_jobs"`
	AIRecommendations string               `json:"ai_recommendations,omitempty"`
}

type DashboardStats struct {
	Users          int64 `json:"users"`
	Jobs           int64 `json:"jobs"`
	AggregatedJobs int64 `json:"aggregated_jobs"`
	Candidates     int64 `json:"candidates"`
	Employers      int64 `json:"employers"`
	Resumes        int64 `json:"resumes"`
	Applications   int64 `json:"applications"`
	UnreadMessages int64 `json:"unread_messages"`
}
