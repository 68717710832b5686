package entity

import "time"

// NewsletterSubscription is one subscribed email address.
type NewsletterSubscription struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FechaSuscripcion time.Time `json:"fecha_suscripcion"`
	Activa           bool      `json:"activa"`
}

// NewNewsletterSubscription returns an active subscription for email.
func NewNewsletterSubscription(email string, now time.Time) *NewsletterSubscription {
	return &NewsletterSubscription{
		ID:               NewID(),
		Email:            email,
		FechaSuscripcion: now.UTC(),
		Activa:           true,
	}
}

// ContactForm is a submitted contact message. It is never read back.
type ContactForm struct {
	ID         string    `json:"id"`
	Nombre     string    `json:"nombre"`
	Email      string    `json:"email"`
	Categoria  string    `json:"categoria"`
	Mensaje    string    `json:"mensaje"`
	FechaEnvio time.Time `json:"fecha_envio"`
}
