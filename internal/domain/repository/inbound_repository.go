package repository

import (
	"context"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// NewsletterRepository stores newsletter subscriptions.
type NewsletterRepository interface {
	// FindByEmail returns ErrNotFound when email is not subscribed.
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscription, error)
	Create(ctx context.Context, sub *entity.NewsletterSubscription) error
}

// ContactRepository stores submitted contact forms.
type ContactRepository interface {
	Create(ctx context.Context, form *entity.ContactForm) error
}
