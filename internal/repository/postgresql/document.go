package postgresql

import (
	"context"
	"fmt"

	"github.com/nova-forge/hrms-backend-go/internal/domain/document"
	"github.com/nova-forge/hrms-backend-go/internal/pkg/database"
)

type documentRepository struct {
	db *database.DB
}

func NewDocumentRepository(db *database.DB) document.DocumentRepository {
	return &documentRepository{db: db}
}

// CountByStatus implements document.DocumentRepository.
func (d *documentRepository) CountByStatus(ctx context.Context, status document.Status) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM documents
		WHERE status = $1
	`

	var n int64
	if err := d.db.QueryRow(ctx, query, string(status)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count documents by status: %w", err)
	}
	return n, nil
}
