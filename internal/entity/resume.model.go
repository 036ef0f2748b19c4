package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResumeStatus string

const (
	ResumeStatusValid   ResumeStatus = "valid"
	ResumeStatusInvalid ResumeStatus = "invalid"
	ResumeStatusPending ResumeStatus = "pending"
)

// ResumeDocument is the structured resume stored alongside the uploaded file.
type ResumeDocument struct {
	Meta         *ResumeMeta     `json:"meta,omitempty"`
	Basics       ResumeBasics    `json:"basics" binding:"required"`
	Work         []WorkEntry     `json:"work"`
	Education    []Education     `json:"education"`
	Skills       []Skill         `json:"skills,omitempty"`
	Projects     []ResumeProject `json:"projects,omitempty"`
	Publications []Publication   `json:"publications,omitempty"`
	Certificates []Certificate   `json:"certificates,omitempty"`
	Languages    []LanguageEntry `json:"languages,omitempty"`
	References   []Reference     `json:"references,omitempty"`
}

type ResumeMeta struct {
	SchemaVersion string     `json:"schemaVersion,omitempty"`
	Source        string     `json:"source,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	LastModified  *time.Time `json:"lastModified,omitempty"`
}

type ResumeBasics struct {
	Name     string          `json:"name" binding:"required"`
	Label    string          `json:"label,omitempty"`
	Email    string          `json:"email" binding:"required"`
	Phone    string          `json:"phone,omitempty"`
	Summary  string          `json:"summary,omitempty"`
	Location *ResumeLocation `json:"location,omitempty"`
	Profiles []Profile       `json:"profiles,omitempty"`
}

type ResumeLocation struct {
	Address     string `json:"address,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
	Region      string `json:"region,omitempty"`
}

type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username,omitempty"`
	URL      string `json:"url"`
}

type WorkEntry struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Location   string   `json:"location,omitempty"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate,omitempty"`
	IsCurrent  bool     `json:"isCurrent,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

type Education struct {
	Institution string   `json:"institution"`
	Area        string   `json:"area"`
	StudyType   string   `json:"studyType"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Courses     []string `json:"courses,omitempty"`
}

type Skill struct {
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Level    string   `json:"level,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
}

type ResumeProject struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Role          string   `json:"role,omitempty"`
	URL           string   `json:"url,omitempty"`
	RepositoryURL string   `json:"repositoryUrl,omitempty"`
	Technologies  []string `json:"technologiesUsed,omitempty"`
}

type Publication struct {
	Name        string `json:"name,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	URL         string `json:"url,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

type Certificate struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
	URL    string `json:"url,omitempty"`
}

type LanguageEntry struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

type Reference struct {
	Name      string `json:"name,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type Resume struct {
	gorm.Model
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CandidateID  uuid.UUID      `json:"candidate_id" gorm:"type:uuid;not null;index"`
	Candidate    Candidate      `json:"-" gorm:"foreignKey:CandidateID"`
	FileLocation string         `json:"file_location" gorm:"type:varchar(255)"`
	Status       ResumeStatus   `json:"status" gorm:"type:varchar(20);default:pending"`
	ParsedData   ResumeDocument `json:"parsed_data" gorm:"serializer:json"`
}

func (r *Resume) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ResumeStatusPending
	}
	return nil
}
