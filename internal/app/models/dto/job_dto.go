package dto

import "time"

// CreateJobRequest represents a request to post a job
type CreateJobRequest struct {
	Title       string    `json:"title" binding:"required" example:"Research Assistant"`
	Description string    `json:"description" binding:"required"`
	Company     string    `json:"company" binding:"required" example:"CS Department"`
	JobType     string    `json:"jobType" binding:"required" example:"part-time"`
	Eligibility string    `json:"eligibility"`
	Deadline    time.Time `json:"deadline" binding:"required"`
}

// UpdateJobRequest represents a request to update a job posting
type UpdateJobRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Company     *string    `json:"company,omitempty"`
	JobType     *string    `json:"jobType,omitempty"`
	Eligibility *string    `json:"eligibility,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// JobFilterRequest carries list filters for jobs
type JobFilterRequest struct {
	JobType  *string
	Search   *string
	OpenOnly bool
	Page     int
	PageSize int
}

// ApplyJobRequest represents a job application submission
type ApplyJobRequest struct {
	ResumeLink string `json:"resumeLink" binding:"required,url" example:"http://localhost:8080/uploads/resumes/abc.pdf"`
}

// UpdateApplicationStatusRequest carries a status change for an application
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPLIED REVIEWED INTERVIEW OFFERED REJECTED" example:"INTERVIEW"`
}

// JobResponse is the standard job projection
type JobResponse struct {
	ID          int64              `json:"id" example:"1"`
	Title       string             `json:"title" example:"Research Assistant"`
	Description string             `json:"description"`
	Company     string             `json:"company"`
	JobType     string             `json:"jobType"`
	Eligibility string             `json:"eligibility"`
	Deadline    time.Time          `json:"deadline"`
	PostedBy    int64              `json:"postedBy"`
	Poster      *UserBasicResponse `json:"poster,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	// ApplicationStatus is the caller's application state, empty when not applied
	ApplicationStatus string `json:"applicationStatus,omitempty" enums:"APPLIED,REVIEWED,INTERVIEW,OFFERED,REJECTED"`
}

// JobListResponse wraps a paginated list of jobs
type JobListResponse struct {
	Jobs           []JobResponse  `json:"jobs"`
	PaginationInfo PaginationInfo `json:"pagination"`
}

// JobApplicationResponse is the projection of an application row
type JobApplicationResponse struct {
	ID         int64              `json:"id"`
	JobID      int64              `json:"jobId"`
	UserID     int64              `json:"userId"`
	ResumeLink string             `json:"resumeLink"`
	Status     string             `json:"status" enums:"APPLIED,REVIEWED,INTERVIEW,OFFERED,REJECTED"`
	AppliedAt  time.Time          `json:"appliedAt"`
	User       *UserBasicResponse `json:"user,omitempty"`
	Job        *JobResponse       `json:"job,omitempty"`
}

// ResumeUploadResponse carries the stored resume's URL
type ResumeUploadResponse struct {
	ResumeLink string `json:"resumeLink" example:"http://localhost:8080/uploads/resumes/abc.pdf"`
}
