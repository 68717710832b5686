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

// OpportunityUseCase handles opportunity listing, publication and lookup.
type OpportunityUseCase struct {
	oppRepo repository.OpportunityRepository
	events  eventEmitter
	logger  *zap.Logger
	now     Clock
}

func NewOpportunityUseCase(
	oppRepo repository.OpportunityRepository,
	publisher repository.EventPublisher,
	logger *zap.Logger,
) *OpportunityUseCase {
	return &OpportunityUseCase{
		oppRepo: oppRepo,
		events:  eventEmitter{publisher: publisher, logger: logger},
		logger:  logger,
		now:     time.Now,
	}
}

// List returns opportunities matching filter. Without an explicit estado
// only published opportunities are returned.
func (u *OpportunityUseCase) List(ctx context.Context, filter dto.OpportunityFilter) ([]*entity.Opportunity, error) {
	if filter.Estado == "" {
		filter.Estado = entity.OpportunityStatusPublicada
	}

	opps, err := u.oppRepo.List(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("failed to list opportunities", err)
	}

	u.logger.Debug("Opportunities listed",
		zap.String("estado", string(filter.Estado)),
		zap.Int("count", len(opps)))
	return opps, nil
}

func (u *OpportunityUseCase) Get(ctx context.Context, id string) (*entity.Opportunity, error) {
	opp, err := u.oppRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, MsgOpportunityNotFound, "failed to get opportunity")
	}
	return opp, nil
}

func (u *OpportunityUseCase) GetBySlug(ctx context.Context, slug string) (*entity.Opportunity, error) {
	opp, err := u.oppRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, lookupError(err, MsgOpportunityNotFound, "failed to get opportunity")
	}
	return opp, nil
}

// Create stores a pending opportunity. It is not listed until published.
func (u *OpportunityUseCase) Create(ctx context.Context, req *dto.CreateOpportunityRequest) (*entity.Opportunity, error) {
	opp := entity.NewOpportunity(req.Titulo, u.now())
	opp.Tipo = req.Tipo
	opp.OrganizacionID = req.OrganizacionID
	opp.OrganizacionNombre = req.OrganizacionNombre
	opp.Ubicacion = req.Ubicacion
	opp.Lat = req.Lat
	opp.Lng = req.Lng
	if req.Modalidad != "" {
		opp.Modalidad = req.Modalidad
	}
	opp.Nivel = req.Nivel
	opp.Remuneracion = req.Remuneracion
	opp.Beneficios = req.Beneficios
	opp.FechaLimite = req.FechaLimite
	opp.Descripcion = req.Descripcion
	opp.Requisitos = req.Requisitos
	opp.Contacto = req.Contacto
	if req.Tags != nil {
		opp.Tags = req.Tags
	}
	opp.Cupos = req.Cupos
	opp.EnlaceExterno = req.EnlaceExterno

	if err := u.oppRepo.Create(ctx, opp); err != nil {
		return nil, apperrors.Internal("failed to create opportunity", err)
	}

	u.logger.Info("Opportunity created",
		zap.String("opportunity_id", opp.ID),
		zap.String("slug", opp.Slug),
		zap.String("tipo", string(opp.Tipo)))

	u.events.emit(ctx, entity.NewEvent(entity.EventOpportunityCreated, opp, u.now()))
	return opp, nil
}

// UpdateStatus moves an opportunity to status. An event is emitted only when
// the status actually changes.
func (u *OpportunityUseCase) UpdateStatus(ctx context.Context, id string, status entity.OpportunityStatus) (*entity.Opportunity, error) {
	current, err := u.oppRepo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, MsgOpportunityNotFound, "failed to get opportunity")
	}

	updated, err := u.oppRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, lookupError(err, MsgOpportunityNotFound, "failed to update opportunity status")
	}

	if current.Estado != updated.Estado {
		u.logger.Info("Opportunity status changed",
			zap.String("opportunity_id", id),
			zap.String("from", string(current.Estado)),
			zap.String("to", string(updated.Estado)))

		u.events.emit(ctx, entity.NewEvent(entity.EventOpportunityStatusChanged, entity.StatusChange{
			OpportunityID: id,
			From:          current.Estado,
			To:            updated.Estado,
		}, u.now()))
	}

	return updated, nil
}
