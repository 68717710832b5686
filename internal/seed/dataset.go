package seed

import (
	"time"

	"github.com/workhoops/workhoops-api/internal/domain/entity"
)

// Dataset is the set of entities inserted by the loader.
type Dataset struct {
	Organizations []*entity.Organization
	Opportunities []*entity.Opportunity
	Users         []*entity.User
	Articles      []*entity.Article
	Testimonials  []*entity.Testimonial
	Plans         []*entity.Plan
}

func orNow(t *time.Time, now time.Time) time.Time {
	if t == nil {
		return now
	}
	return t.UTC()
}

func orSlug(slug, title string) string {
	if slug == "" {
		return entity.Slugify(title)
	}
	return slug
}

// Build converts the fixtures into entities. Missing timestamps are set to
// now and relative dates are resolved against it.
func (f *Fixtures) Build(now time.Time) *Dataset {
	now = now.UTC()
	ds := &Dataset{}

	orgNames := make(map[string]string, len(f.Organizations))
	for _, o := range f.Organizations {
		redes := o.Redes
		if redes == nil {
			redes = map[string]string{}
		}
		orgNames[o.ID] = o.Nombre
		ds.Organizations = append(ds.Organizations, &entity.Organization{
			ID:            o.ID,
			Nombre:        o.Nombre,
			Slug:          orSlug(o.Slug, o.Nombre),
			Logo:          o.Logo,
			Web:           o.Web,
			Bio:           o.Bio,
			Verificada:    o.Verificada,
			Redes:         redes,
			FechaCreacion: orNow(o.FechaCreacion, now),
		})
	}

	for _, o := range f.Opportunities {
		opp := &entity.Opportunity{
			ID:                 o.ID,
			Titulo:             o.Titulo,
			Slug:               orSlug(o.Slug, o.Titulo),
			Tipo:               o.Tipo,
			OrganizacionID:     o.OrganizacionID,
			OrganizacionNombre: o.OrganizacionNombre,
			Ubicacion:          o.Ubicacion,
			Lat:                o.Lat,
			Lng:                o.Lng,
			Modalidad:          o.Modalidad,
			Nivel:              o.Nivel,
			Remuneracion:       o.Remuneracion,
			Beneficios:         o.Beneficios,
			FechaPublicacion:   orNow(o.FechaPublicacion, now),
			FechaLimite:        o.FechaLimite,
			Descripcion:        o.Descripcion,
			Requisitos:         o.Requisitos,
			Contacto:           o.Contacto,
			Verificacion:       o.Verificacion,
			Estado:             o.Estado,
			Tags:               o.Tags,
			Cupos:              o.Cupos,
			EnlaceExterno:      o.EnlaceExterno,
		}
		if opp.OrganizacionNombre == "" {
			opp.OrganizacionNombre = orgNames[o.OrganizacionID]
		}
		if opp.Modalidad == "" {
			opp.Modalidad = entity.DefaultModalidad
		}
		if opp.Estado == "" {
			opp.Estado = entity.OpportunityStatusPublicada
		}
		if opp.Tags == nil {
			opp.Tags = []string{}
		}
		if o.DiasLimite != nil {
			deadline := now.AddDate(0, 0, *o.DiasLimite)
			opp.FechaLimite = &deadline
		}
		ds.Opportunities = append(ds.Opportunities, opp)
	}

	for _, u := range f.Users {
		travel := true
		if u.DisponibilidadViajar != nil {
			travel = *u.DisponibilidadViajar
		}
		ds.Users = append(ds.Users, &entity.User{
			ID:                   u.ID,
			Nombre:               u.Nombre,
			Email:                u.Email,
			Rol:                  u.Rol,
			Posicion:             u.Posicion,
			Altura:               u.Altura,
			Ciudad:               u.Ciudad,
			HighlightsURL:        u.HighlightsURL,
			Bio:                  u.Bio,
			Foto:                 u.Foto,
			DisponibilidadViajar: travel,
			Verificado:           u.Verificado,
			FechaRegistro:        orNow(u.FechaRegistro, now),
		})
	}

	for _, a := range f.Articles {
		published := orNow(a.FechaPublicacion, now)
		if a.FechaPublicacion == nil && a.DiasAntiguedad > 0 {
			published = now.AddDate(0, 0, -a.DiasAntiguedad)
		}
		ds.Articles = append(ds.Articles, &entity.Article{
			ID:               a.ID,
			Titulo:           a.Titulo,
			Slug:             orSlug(a.Slug, a.Titulo),
			Extracto:         a.Extracto,
			Portada:          a.Portada,
			Cuerpo:           a.Cuerpo,
			Categoria:        a.Categoria,
			Autor:            a.Autor,
			FechaPublicacion: published,
		})
	}

	for _, t := range f.Testimonials {
		ds.Testimonials = append(ds.Testimonials, &entity.Testimonial{
			ID:     t.ID,
			Nombre: t.Nombre,
			Rol:    t.Rol,
			Texto:  t.Texto,
			Foto:   t.Foto,
		})
	}

	for _, p := range f.Plans {
		beneficios := p.Beneficios
		if beneficios == nil {
			beneficios = []string{}
		}
		ds.Plans = append(ds.Plans, &entity.Plan{
			ID:                  p.ID,
			Nombre:              p.Nombre,
			Precio:              p.Precio,
			Beneficios:          beneficios,
			LimitePublicaciones: p.LimitePublicaciones,
			Destacar:            p.Destacar,
		})
	}

	return ds
}
