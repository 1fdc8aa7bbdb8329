package reconcile

import "github.com/iudanet/keitarosync/internal/keitaro"

// Default action keys used when the installation reports no action types.
const (
	DefaultRedirectAction = "redirect"
	DefaultOffersAction   = "offers"
)

// SchemaRedirect is the flow schema for plain redirects.
const SchemaRedirect = "redirect"

const (
	actionTypeRedirect = "redirect"
	actionTypeOther    = "other"
)

// PickAction chooses the action type key for a new flow with the given
// schema. Redirect schemas prefer actions of type "redirect", everything
// else prefers type "other". Without a match the first action wins.
// The result depends on the order of actions.
func PickAction(actions []keitaro.FlowAction, schema string) string {
	fallback := DefaultOffersAction
	targetType := actionTypeOther
	if schema == SchemaRedirect {
		fallback = DefaultRedirectAction
		targetType = actionTypeRedirect
	}

	if len(actions) == 0 {
		return fallback
	}

	for _, action := range actions {
		if action.Type == targetType {
			return keyOr(action, fallback)
		}
	}
	return keyOr(actions[0], fallback)
}

func keyOr(action keitaro.FlowAction, fallback string) string {
	if action.Key == "" {
		return fallback
	}
	return action.Key
}
