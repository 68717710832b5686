package mapper

import (
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	"github.com/workhoops/workhoops-api/internal/infrastructure/database/model"
)

// UserToDocument converts a user into its stored form.
func UserToDocument(user *entity.User) *model.UserDocument {
	if user == nil {
		return nil
	}

	return &model.UserDocument{
		ID:                   user.ID,
		Nombre:               user.Nombre,
		Email:                user.Email,
		Rol:                  string(user.Rol),
		Posicion:             user.Posicion,
		Altura:               user.Altura,
		Ciudad:               user.Ciudad,
		HighlightsURL:        user.HighlightsURL,
		Bio:                  user.Bio,
		Foto:                 user.Foto,
		DisponibilidadViajar: user.DisponibilidadViajar,
		Verificado:           user.Verificado,
		FechaRegistro:        model.FormatTimestamp(user.FechaRegistro),
	}
}

// UserFromDocument converts a stored user into an entity.
func UserFromDocument(doc *model.UserDocument) *entity.User {
	if doc == nil {
		return nil
	}

	return &entity.User{
		ID:                   doc.ID,
		Nombre:               doc.Nombre,
		Email:                doc.Email,
		Rol:                  entity.UserRole(doc.Rol),
		Posicion:             doc.Posicion,
		Altura:               doc.Altura,
		Ciudad:               doc.Ciudad,
		HighlightsURL:        doc.HighlightsURL,
		Bio:                  doc.Bio,
		Foto:                 doc.Foto,
		DisponibilidadViajar: doc.DisponibilidadViajar,
		Verificado:           doc.Verificado,
		FechaRegistro:        model.ParseTimestamp(doc.FechaRegistro),
	}
}

// UsersFromDocuments never returns nil.
func UsersFromDocuments(docs []model.UserDocument) []*entity.User {
	users := make([]*entity.User, len(docs))
	for i := range docs {
		users[i] = UserFromDocument(&docs[i])
	}
	return users
}
