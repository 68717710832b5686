package model

// OrganizationDocument is stored in the organizations collection.
type OrganizationDocument struct {
	ID            string            `bson:"id"`
	Nombre        string            `bson:"nombre"`
	Slug          string            `bson:"slug"`
	Logo          string            `bson:"logo,omitempty"`
	Web           string            `bson:"web,omitempty"`
	Bio           string            `bson:"bio,omitempty"`
	Verificada    bool              `bson:"verificada"`
	Redes         map[string]string `bson:"redes"`
	FechaCreacion string            `bson:"fecha_creacion"`
}

// OpportunityDocument is stored in the opportunities collection.
type OpportunityDocument struct {
	ID                 string   `bson:"id"`
	Titulo             string   `bson:"titulo"`
	Slug               string   `bson:"slug"`
	Tipo               string   `bson:"tipo"`
	OrganizacionID     string   `bson:"organizacion_id"`
	OrganizacionNombre string   `bson:"organizacion_nombre"`
	Ubicacion          string   `bson:"ubicacion"`
	Lat                *float64 `bson:"lat,omitempty"`
	Lng                *float64 `bson:"lng,omitempty"`
	Modalidad          string   `bson:"modalidad"`
	Nivel              string   `bson:"nivel"`
	Remuneracion       string   `bson:"remuneracion,omitempty"`
	Beneficios         string   `bson:"beneficios,omitempty"`
	FechaPublicacion   string   `bson:"fecha_publicacion"`
	FechaLimite        *string  `bson:"fecha_limite,omitempty"`
	Descripcion        string   `bson:"descripcion"`
	Requisitos         string   `bson:"requisitos,omitempty"`
	Contacto           string   `bson:"contacto"`
	Verificacion       bool     `bson:"verificacion"`
	Estado             string   `bson:"estado"`
	Tags               []string `bson:"tags"`
	Cupos              *int     `bson:"cupos,omitempty"`
	EnlaceExterno      string   `bson:"enlace_externo,omitempty"`
}

// UserDocument is stored in the users collection.
type UserDocument struct {
	ID                   string `bson:"id"`
	Nombre               string `bson:"nombre"`
	Email                string `bson:"email"`
	Rol                  string `bson:"rol"`
	Posicion             string `bson:"posicion,omitempty"`
	Altura               *int   `bson:"altura,omitempty"`
	Ciudad               string `bson:"ciudad,omitempty"`
	HighlightsURL        string `bson:"highlights_url,omitempty"`
	Bio                  string `bson:"bio,omitempty"`
	Foto                 string `bson:"foto,omitempty"`
	DisponibilidadViajar bool   `bson:"disponibilidad_viajar"`
	Verificado           bool   `bson:"verificado"`
	FechaRegistro        string `bson:"fecha_registro"`
}

// ArticleDocument is stored in the articles collection.
type ArticleDocument struct {
	ID               string `bson:"id"`
	Titulo           string `bson:"titulo"`
	Slug             string `bson:"slug"`
	Extracto         string `bson:"extracto"`
	Portada          string `bson:"portada,omitempty"`
	Cuerpo           string `bson:"cuerpo"`
	Categoria        string `bson:"categoria"`
	Autor            string `bson:"autor"`
	FechaPublicacion string `bson:"fecha_publicacion"`
}

// TestimonialDocument is stored in the testimonials collection.
type TestimonialDocument struct {
	ID     string `bson:"id"`
	Nombre string `bson:"nombre"`
	Rol    string `bson:"rol"`
	Texto  string `bson:"texto"`
	Foto   string `bson:"foto,omitempty"`
}

// PlanDocument is stored in the plans collection.
type PlanDocument struct {
	ID                  string   `bson:"id"`
	Nombre              string   `bson:"nombre"`
	Precio              float64  `bson:"precio"`
	Beneficios          []string `bson:"beneficios"`
	LimitePublicaciones *int     `bson:"limite_publicaciones,omitempty"`
	Destacar            bool     `bson:"destacar"`
}

// NewsletterDocument is stored in the newsletter collection.
type NewsletterDocument struct {
	ID               string `bson:"id"`
	Email            string `bson:"email"`
	FechaSuscripcion string `bson:"fecha_suscripcion"`
	Activa           bool   `bson:"activa"`
}

// ContactFormDocument is stored in the contact_forms collection.
type ContactFormDocument struct {
	ID         string `bson:"id"`
	Nombre     string `bson:"nombre"`
	Email      string `bson:"email"`
	Categoria  string `bson:"categoria"`
	Mensaje    string `bson:"mensaje"`
	FechaEnvio string `bson:"fecha_envio"`
}
