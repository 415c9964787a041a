package profile

import "strings"

// DefaultRadiusKm es el radio de búsqueda por defecto del perfil.
const DefaultRadiusKm = 5.0

// Profile guarda las preferencias del usuario (singleton por sesión).
type Profile struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	City     string `json:"city,omitempty"`
	Phone    string `json:"phone,omitempty"`

	// RadiusKm preferido; nil = no definido.
	RadiusKm    *float64 `json:"radiusKm,omitempty"`
	PushEnabled bool     `json:"pushEnabled"`
}

func Default() Profile {
	r := DefaultRadiusKm
	return Profile{RadiusKm: &r, PushEnabled: false}
}

// Patch: punteros para PATCH real, nil = no tocar.
type Patch struct {
	FullName    *string
	Email       *string
	City        *string
	Phone       *string
	RadiusKm    *float64
	PushEnabled *bool
}

// Apply hace merge superficial; los campos no enviados quedan igual.
func (p Profile) Apply(patch Patch) Profile {
	if patch.FullName != nil {
		p.FullName = strings.TrimSpace(*patch.FullName)
	}
	if patch.Email != nil {
		p.Email = strings.TrimSpace(*patch.Email)
	}
	if patch.City != nil {
		p.City = strings.TrimSpace(*patch.City)
	}
	if patch.Phone != nil {
		p.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.RadiusKm != nil {
		r := *patch.RadiusKm
		p.RadiusKm = &r
	}
	if patch.PushEnabled != nil {
		p.PushEnabled = *patch.PushEnabled
	}
	return p
}

// Clone evita compartir el puntero de RadiusKm.
func (p Profile) Clone() Profile {
	if p.RadiusKm != nil {
		r := *p.RadiusKm
		p.RadiusKm = &r
	}
	return p
}
