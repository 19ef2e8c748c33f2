package dto

// Designer is the response representation of a catalog row.
type Designer struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	Style       string `json:"style"`
	FamousWorks string `json:"famous_works"`
	Website     string `json:"website"`
}

// CreateDesignerRequest is the payload for adding a designer. Pointer fields
// tell an absent (or null) key apart from an empty string.
type CreateDesignerRequest struct {
	Name        *string `json:"name"`
	Nationality *string `json:"nationality"`
	Style       *string `json:"style"`
	FamousWorks *string `json:"famous_works"`
	Website     *string `json:"website"`
}

// MissingField returns the first required field that was not submitted, or
// an empty string when the payload is complete.
func (r CreateDesignerRequest) MissingField() string {
	required := []struct {
		name  string
		value *string
	}{
		{"name", r.Name},
		{"nationality", r.Nationality},
		{"style", r.Style},
		{"famous_works", r.FamousWorks},
		{"website", r.Website},
	}
	for _, field := range required {
		if field.value == nil {
			return field.name
		}
	}
	return ""
}

// CreateDesignerResponse echoes the submitted JSON object, extra keys
// included, with the assigned id.
type CreateDesignerResponse struct {
	Message  string         `json:"message"`
	ID       uint           `json:"id"`
	Designer map[string]any `json:"designer"`
}
