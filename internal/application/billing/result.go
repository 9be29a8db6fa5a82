package billing

import "github.com/jhoicas/invoices-dashboard/internal/application/dto"

// ActionKind variante de ActionResult.
type ActionKind uint8

const (
	// ActionKindState la acción no persistió; el caller debe mostrar State.
	ActionKindState ActionKind = iota + 1
	// ActionKindRedirect la acción persistió; el caller debe navegar a Location.
	ActionKindRedirect
)

// ActionResult resultado de una acción de mutación. El caller debe revisar Kind:
// una redirección es terminal.
type ActionResult struct {
	Kind     ActionKind
	State    dto.FormState
	Location string
}

// StateResult construye el resultado con errores de formulario.
func StateResult(state dto.FormState) ActionResult {
	return ActionResult{Kind: ActionKindState, State: state}
}

// RedirectResult construye el resultado de navegación.
func RedirectResult(location string) ActionResult {
	return ActionResult{Kind: ActionKindRedirect, Location: location}
}

// IsRedirect indica si el caller debe navegar a Location.
func (r ActionResult) IsRedirect() bool {
	return r.Kind == ActionKindRedirect
}
