package utils

import (
	"fmt"

	"github.com/seodius/KappaRecruit/internal/appcontext"
	"github.com/seodius/KappaRecruit/internal/entity"
)

// SearchIndex is the single meilisearch index holding both jobs and
// candidates, discriminated by the "type" field and filtered by company_id.
const SearchIndex = "resources"

func JobToDocument(job *entity.Job) map[string]interface{} {
	title := ""
	if len(job.Data.Descriptions) > 0 {
		title = job.Data.Descriptions[0].Text
	}
	return map[string]interface{}{
		"id":              job.ID.String(),
		"type":            "job",
		"name":            title,
		"department":      job.Data.Department,
		"employment_type": job.Data.EmploymentType,
		"company_id":      job.CompanyID.String(),
	}
}

func CandidateToDocument(candidate *entity.Candidate, companyID string) map[string]interface{} {
	return map[string]interface{}{
		"id":         candidate.ID.String(),
		"type":       "candidate",
		"name":       candidate.FirstName + " " + candidate.LastName,
		"email":      candidate.Email,
		"job_title":  candidate.JobTitle,
		"company_id": companyID,
	}
}

// IndexDocument pushes a document into the search index. Callers treat
// failures as non-fatal: the database remains the source of truth.
func IndexDocument(ctx *appcontext.Context, document map[string]interface{}) error {
	if ctx.MeilisearchClient == nil {
		return nil
	}
	_, err := ctx.MeilisearchClient.Index(SearchIndex).AddDocuments([]map[string]interface{}{document})
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	return nil
}

func RemoveDocument(ctx *appcontext.Context, id string) error {
	if ctx.MeilisearchClient == nil {
		return nil
	}
	_, err := ctx.MeilisearchClient.Index(SearchIndex).DeleteDocument(id)
	if err != nil {
		return fmt.Errorf("failed to remove document: %w", err)
	}
	return nil
}
