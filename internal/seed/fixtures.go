// Package seed loads the sample dataset into MongoDB.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the YAML document read by the seed loader.
type Fixtures struct {
	Organizations []OrganizationFixture `yaml:"organizations"`
	Opportunities []OpportunityFixture  `yaml:"opportunities"`
	Users         []UserFixture         `yaml:"users"`
	Articles      []ArticleFixture      `yaml:"articles"`
	Testimonials  []TestimonialFixture  `yaml:"testimonials"`
	Plans         []PlanFixture         `yaml:"plans"`
}

type OrganizationFixture struct {
	ID            string            `yaml:"id"`
	Nombre        string            `yaml:"nombre"`
	Slug          string            `yaml:"slug"`
	Logo          string            `yaml:"logo"`
	Web           string            `yaml:"web"`
	Bio           string            `yaml:"bio"`
	Verificada    bool              `yaml:"verificada"`
	Redes         map[string]string `yaml:"redes"`
	FechaCreacion *time.Time        `yaml:"fecha_creacion"`
}

// OpportunityFixture sets the deadline either absolutely or as a number of
// days after the seed runs.
type OpportunityFixture struct {
	ID                 string                   `yaml:"id"`
	Titulo             string                   `yaml:"titulo"`
	Slug               string                   `yaml:"slug"`
	Tipo               entity.OpportunityType   `yaml:"tipo"`
	OrganizacionID     string                   `yaml:"organizacion_id"`
	OrganizacionNombre string                   `yaml:"organizacion_nombre"`
	Ubicacion          string                   `yaml:"ubicacion"`
	Lat                *float64                 `yaml:"lat"`
	Lng                *float64                 `yaml:"lng"`
	Modalidad          string                   `yaml:"modalidad"`
	Nivel              entity.OpportunityLevel  `yaml:"nivel"`
	Remuneracion       string                   `yaml:"remuneracion"`
	Beneficios         string                   `yaml:"beneficios"`
	FechaPublicacion   *time.Time               `yaml:"fecha_publicacion"`
	FechaLimite        *time.Time               `yaml:"fecha_limite"`
	DiasLimite         *int                     `yaml:"dias_limite"`
	Descripcion        string                   `yaml:"descripcion"`
	Requisitos         string                   `yaml:"requisitos"`
	Contacto           string                   `yaml:"contacto"`
	Verificacion       bool                     `yaml:"verificacion"`
	Estado             entity.OpportunityStatus `yaml:"estado"`
	Tags               []string                 `yaml:"tags"`
	Cupos              *int                     `yaml:"cupos"`
	EnlaceExterno      string                   `yaml:"enlace_externo"`
}

type UserFixture struct {
	ID                   string          `yaml:"id"`
	Nombre               string          `yaml:"nombre"`
	Email                string          `yaml:"email"`
	Rol                  entity.UserRole `yaml:"rol"`
	Posicion             string          `yaml:"posicion"`
	Altura               *int            `yaml:"altura"`
	Ciudad               string          `yaml:"ciudad"`
	HighlightsURL        string          `yaml:"highlights_url"`
	Bio                  string          `yaml:"bio"`
	Foto                 string          `yaml:"foto"`
	DisponibilidadViajar *bool           `yaml:"disponibilidad_viajar"`
	Verificado           bool            `yaml:"verificado"`
	FechaRegistro        *time.Time      `yaml:"fecha_registro"`
}

// ArticleFixture sets the publication date either absolutely or as a number
// of days before the seed runs.
type ArticleFixture struct {
	ID               string     `yaml:"id"`
	Titulo           string     `yaml:"titulo"`
	Slug             string     `yaml:"slug"`
	Extracto         string     `yaml:"extracto"`
	Portada          string     `yaml:"portada"`
	Cuerpo           string     `yaml:"cuerpo"`
	Categoria        string     `yaml:"categoria"`
	Autor            string     `yaml:"autor"`
	FechaPublicacion *time.Time `yaml:"fecha_publicacion"`
	DiasAntiguedad   int        `yaml:"dias_antiguedad"`
}

type TestimonialFixture struct {
	ID     string `yaml:"id"`
	Nombre string `yaml:"nombre"`
	Rol    string `yaml:"rol"`
	Texto  string `yaml:"texto"`
	Foto   string `yaml:"foto"`
}

type PlanFixture struct {
	ID                  string   `yaml:"id"`
	Nombre              string   `yaml:"nombre"`
	Precio              float64  `yaml:"precio"`
	Beneficios          []string `yaml:"beneficios"`
	LimitePublicaciones *int     `yaml:"limite_publicaciones"`
	Destacar            bool     `yaml:"destacar"`
}

// DefaultFixtures returns the embedded dataset.
func DefaultFixtures() (*Fixtures, error) {
	return ParseFixtures(defaultFixtures)
}

// LoadFixtures reads a fixtures file from disk.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures file: %w", err)
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes and validates a fixtures document. Unknown keys are
// rejected.
func ParseFixtures(data []byte) (*Fixtures, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixtures
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("unmarshal fixtures yaml: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks required fields, enum tokens, unique ids and that every
// opportunity references a known organization.
func (f *Fixtures) Validate() error {
	orgs := make(map[string]bool, len(f.Organizations))
	for i, o := range f.Organizations {
		if o.ID == "" || o.Nombre == "" {
			return fmt.Errorf("organizations[%d]: id and nombre are required", i)
		}
		if orgs[o.ID] {
			return fmt.Errorf("organizations[%d]: duplicate id %q", i, o.ID)
		}
		orgs[o.ID] = true
	}

	oppIDs := make(map[string]bool, len(f.Opportunities))
	for i, o := range f.Opportunities {
		if o.ID == "" || o.Titulo == "" {
			return fmt.Errorf("opportunities[%d]: id and titulo are required", i)
		}
		if oppIDs[o.ID] {
			return fmt.Errorf("opportunities[%d]: duplicate id %q", i, o.ID)
		}
		oppIDs[o.ID] = true
		if !o.Tipo.IsValid() {
			return fmt.Errorf("opportunities[%d]: invalid tipo %q", i, o.Tipo)
		}
		if !o.Nivel.IsValid() {
			return fmt.Errorf("opportunities[%d]: invalid nivel %q", i, o.Nivel)
		}
		if o.Estado != "" && !o.Estado.IsValid() {
			return fmt.Errorf("opportunities[%d]: invalid estado %q", i, o.Estado)
		}
		if !orgs[o.OrganizacionID] {
			return fmt.Errorf("opportunities[%d]: unknown organizacion_id %q", i, o.OrganizacionID)
		}
		if o.FechaLimite != nil && o.DiasLimite != nil {
			return fmt.Errorf("opportunities[%d]: fecha_limite and dias_limite are exclusive", i)
		}
	}

	for i, u := range f.Users {
		if u.ID == "" || u.Nombre == "" || u.Email == "" {
			return fmt.Errorf("users[%d]: id, nombre and email are required", i)
		}
		if !u.Rol.IsValid() {
			return fmt.Errorf("users[%d]: invalid rol %q", i, u.Rol)
		}
	}

	for i, a := range f.Articles {
		if a.ID == "" || a.Titulo == "" {
			return fmt.Errorf("articles[%d]: id and titulo are required", i)
		}
	}
	for i, t := range f.Testimonials {
		if t.ID == "" || t.Nombre == "" {
			return fmt.Errorf("testimonials[%d]: id and nombre are required", i)
		}
	}
	for i, p := range f.Plans {
		if p.ID == "" || p.Nombre == "" {
			return fmt.Errorf("plans[%d]: id and nombre are required", i)
		}
		if p.Precio < 0 {
			return fmt.Errorf("plans[%d]: precio must not be negative", i)
		}
	}
	return nil
}
