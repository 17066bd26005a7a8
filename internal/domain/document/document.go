// Package document exposes the read-only slice of the document archive the
// core consumes.
package document

import "context"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusVerified Status = "VERIFIED"
	StatusRejected Status = "REJECTED"
)

type DocumentRepository interface {
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
