package usecase

import (
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
)

// Client-facing messages for lookup misses.
const (
	MsgOrganizationNotFound = "Organization not found"
	MsgOpportunityNotFound  = "Opportunity not found"
	MsgArticleNotFound      = "Article not found"
)

// lookupError turns a repository miss into a NOT_FOUND error with notFoundMsg
// and anything else into an INTERNAL error.
func lookupError(err error, notFoundMsg, internalMsg string) error {
	if apperrors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(notFoundMsg)
	}
	return apperrors.Internal(internalMsg, err)
}
