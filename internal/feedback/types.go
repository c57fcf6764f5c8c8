// Package feedback provides clinician feedback storage for dosing
// recommendations. It stores agreements and corrections so that guideline
// catalog updates can be prioritized by observed disagreement. No raw
// genotype data is ever written here; the key is drug + gene + phenotype
// category only.
package feedback

import (
	"context"
	"io"
	"time"

	"github.com/pharmxd-server/internal/domain"
)

// Feedback represents a clinician's feedback on a dosing recommendation.
type Feedback struct {
	ID                      int64                 `json:"id,omitempty"`
	DrugID                  string                `json:"drug_id"`
	Gene                    string                `json:"gene"`
	PhenotypeKey            string                `json:"phenotype_key"`
	SuggestedClassification domain.Classification `json:"suggested_classification"` // System's suggestion
	UserClassification      domain.Classification `json:"user_classification"`      // Clinician's decision
	UserAgreed              bool                  `json:"user_agreed"`
	Notes                   string                `json:"notes,omitempty"`
	CreatedAt               time.Time             `json:"created_at"`
	UpdatedAt               time.Time             `json:"updated_at"`
}

// Store defines the interface for feedback storage operations.
type Store interface {
	// Save stores or updates feedback for a recommendation. If feedback for
	// the same drug+gene+phenotype exists, it will be updated.
	Save(ctx context.Context, feedback *Feedback) error

	// Get retrieves the feedback for a drug/gene/phenotype combination.
	// Returns nil without error when none exists.
	Get(ctx context.Context, drugID, gene, phenotypeKey string) (*Feedback, error)

	// List returns all feedback entries with pagination.
	List(ctx context.Context, limit, offset int) ([]*Feedback, error)

	// Count returns the total number of feedback entries.
	Count(ctx context.Context) (int64, error)

	// Delete removes a feedback entry by ID.
	Delete(ctx context.Context, id int64) error

	// ExportJSON exports all feedback to a JSON writer.
	ExportJSON(ctx context.Context, writer io.Writer) error

	// Close closes the store and releases resources.
	Close() error
}

// Export represents the JSON export format.
type Export struct {
	Version    string      `json:"version"`
	ExportedAt time.Time   `json:"exported_at"`
	Count      int         `json:"count"`
	Feedback   []*Feedback `json:"feedback"`
}
