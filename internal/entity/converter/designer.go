package converter

import (
	"designers/internal/entity/db"
	"designers/internal/entity/dto"
)

// DesignerToDTO converts db.Designer to dto.Designer.
func DesignerToDTO(d *db.Designer) dto.Designer {
	if d == nil {
		return dto.Designer{}
	}
	return dto.Designer{
		ID:          d.ID,
		Name:        d.Name,
		Nationality: d.Nationality,
		Style:       d.Style,
		FamousWorks: d.FamousWorks,
		Website:     d.Website,
	}
}

// DesignersToDTOs converts a slice of db.Designer. The result is never nil so
// it always serialises as a JSON array.
func DesignersToDTOs(designers []db.Designer) []dto.Designer {
	dtos := make([]dto.Designer, len(designers))
	for i := range designers {
		dtos[i] = DesignerToDTO(&designers[i])
	}
	return dtos
}

// DesignerFromRequest builds the row to insert. Callers validate first.
func DesignerFromRequest(req dto.CreateDesignerRequest) db.Designer {
	return db.Designer{
		Name:        deref(req.Name),
		Nationality: deref(req.Nationality),
		Style:       deref(req.Style),
		FamousWorks: deref(req.FamousWorks),
		Website:     deref(req.Website),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
