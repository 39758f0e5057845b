package models

import "time"

// Job represents a job or internship posting
type Job struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Company     string    `json:"company" db:"company"`
	JobType     string    `json:"jobType" db:"job_type"`
	Eligibility string    `json:"eligibility" db:"eligibility"`
	Deadline    time.Time `json:"deadline" db:"deadline"`
	PostedBy    int64     `json:"postedBy" db:"posted_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	// Related entities
	Poster *User `json:"poster,omitempty"`
}

// JobApplication represents a user's application to a job posting
type JobApplication struct {
	ID         int64             `json:"id" db:"id"`
	JobID      int64             `json:"jobId" db:"job_id"`
	UserID     int64             `json:"userId" db:"user_id"`
	ResumeLink string            `json:"resumeLink" db:"resume_link"`
	Status     ApplicationStatus `json:"status" db:"status"`
	AppliedAt  time.Time         `json:"appliedAt" db:"applied_at"`
	UpdatedAt  time.Time         `json:"updatedAt" db:"updated_at"`

	// Related entities
	User *User `json:"user,omitempty"`
	Job  *Job  `json:"job,omitempty"`
}
