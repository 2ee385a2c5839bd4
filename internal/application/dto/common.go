package dto

// ActionResult es el sobre uniforme de respuesta del módulo: toda operación
// devuelve {success, data} o {success, error, code}. Ningún error cruza el
// borde HTTP sin normalizarse a esta forma.
type ActionResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// OK construye el resultado exitoso.
func OK(data any) ActionResult {
	return ActionResult{Success: true, Data: data}
}

// Fail construye el resultado fallido con código estable.
func Fail(code, message string) ActionResult {
	return ActionResult{Success: false, Error: message, Code: code}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}
