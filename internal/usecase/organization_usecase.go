package usecase

import (
	"context"
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/dto"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/domain/repository"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
	"go.uber.org/zap"
)

// OrganizationUseCase handles organization operations.
type OrganizationUseCase struct {
	orgRepo repository.OrganizationRepository
	logger  *zap.Logger
	now     Clock
}

func NewOrganizationUseCase(orgRepo repository.OrganizationRepository, logger *zap.Logger) *OrganizationUseCase {
	return &OrganizationUseCase{orgRepo: orgRepo, logger: logger, now: time.Now}
}

func (u *OrganizationUseCase) List(ctx context.Context) ([]*entity.Organization, error) {
	orgs, err := u.orgRepo.List(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to list organizations", err)
	}
	return orgs, nil
}

func (u *OrganizationUseCase) Get(ctx context.Context, id string) (*entity.Organization, error) {
	org, err := u.orgRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, MsgOrganizationNotFound, "failed to get organization")
	}
	return org, nil
}

// Create stores a new unverified organization with a slug derived from its name.
func (u *OrganizationUseCase) Create(ctx context.Context, req *dto.CreateOrganizationRequest) (*entity.Organization, error) {
	org := entity.NewOrganization(req.Nombre, u.now())
	org.Logo = req.Logo
	org.Web = req.Web
	org.Bio = req.Bio
	if req.Redes != nil {
		org.Redes = req.Redes
	}

	if err := u.orgRepo.Create(ctx, org); err != nil {
		return nil, apperrors.Internal("failed to create organization", err)
	}

	u.logger.Info("Organization created",
		zap.String("organization_id", org.ID),
		zap.String("slug", org.Slug))
	return org, nil
}
