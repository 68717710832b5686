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

// Acknowledgement messages shown to visitors.
const (
	MsgAlreadySubscribed = "Ya estás suscrito a nuestra newsletter"
	MsgSubscribed        = "¡Te has suscrito correctamente!"
	MsgContactReceived   = "Mensaje enviado correctamente. Te responderemos pronto."
)

// InboundUseCase handles visitor submissions: newsletter and contact form.
type InboundUseCase struct {
	newsletterRepo repository.NewsletterRepository
	contactRepo    repository.ContactRepository
	events         eventEmitter
	logger         *zap.Logger
	now            Clock
}

func NewInboundUseCase(
	newsletterRepo repository.NewsletterRepository,
	contactRepo repository.ContactRepository,
	publisher repository.EventPublisher,
	logger *zap.Logger,
) *InboundUseCase {
	return &InboundUseCase{
		newsletterRepo: newsletterRepo,
		contactRepo:    contactRepo,
		events:         eventEmitter{publisher: publisher, logger: logger},
		logger:         logger,
		now:            time.Now,
	}
}

// Subscribe adds email to the newsletter unless it is already subscribed.
// The lookup and insert are separate operations; concurrent duplicates are
// possible and accepted.
func (u *InboundUseCase) Subscribe(ctx context.Context, email string) (*dto.MessageResponse, error) {
	_, err := u.newsletterRepo.FindByEmail(ctx, email)
	if err == nil {
		return &dto.MessageResponse{Message: MsgAlreadySubscribed}, nil
	}
	if !apperrors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.Internal("failed to look up subscription", err)
	}

	sub := entity.NewNewsletterSubscription(email, u.now())
	if err := u.newsletterRepo.Create(ctx, sub); err != nil {
		return nil, apperrors.Internal("failed to create subscription", err)
	}

	u.logger.Info("Newsletter subscription created", zap.String("subscription_id", sub.ID))
	u.events.emit(ctx, entity.NewEvent(entity.EventNewsletterSubscribed, sub, u.now()))
	return &dto.MessageResponse{Message: MsgSubscribed}, nil
}

// SubmitContact stores a contact form. Nothing else happens with it.
func (u *InboundUseCase) SubmitContact(ctx context.Context, req *dto.ContactRequest) (*dto.MessageResponse, error) {
	form := &entity.ContactForm{
		ID:         entity.NewID(),
		Nombre:     req.Nombre,
		Email:      req.Email,
		Categoria:  req.Categoria,
		Mensaje:    req.Mensaje,
		FechaEnvio: u.now().UTC(),
	}

	if err := u.contactRepo.Create(ctx, form); err != nil {
		return nil, apperrors.Internal("failed to store contact form", err)
	}

	u.logger.Info("Contact form received",
		zap.String("contact_id", form.ID),
		zap.String("categoria", form.Categoria))
	return &dto.MessageResponse{Message: MsgContactReceived}, nil
}
