package roster

import "github.com/MikimikeDevloppAI/CVAL-sub005/pkg/core/model"

// IsEligible decides whether a person holding the granted role codes may
// fill a requirement for requiredRole.
//
// The mapping is a closed table with two umbrella roles:
//   - "instrumentiste_aide_salle" is satisfied by either specialization
//     or by the umbrella grant itself
//   - "accueil" is satisfied by the generic grant or either reception
//     specialization
//
// The reverse never holds: a generic "accueil" grant does not satisfy
// "accueil_dermato". An empty or unrecognized required role is never
// eligible. Extend only by adding explicit arms, never by inference.
func IsEligible(granted []model.RoleCode, requiredRole model.RoleCode) bool {
	switch requiredRole {
	case model.RoleInstrumentiste:
		return hasRole(granted, model.RoleInstrumentiste)
	case model.RoleAideSalle:
		return hasRole(granted, model.RoleAideSalle)
	case model.RoleInstrumentisteAideSalle:
		return hasRole(granted, model.RoleInstrumentiste) ||
			hasRole(granted, model.RoleAideSalle) ||
			hasRole(granted, model.RoleInstrumentisteAideSalle)
	case model.RoleAnesthesiste:
		return hasRole(granted, model.RoleAnesthesiste)
	case model.RoleAccueilDermato:
		return hasRole(granted, model.RoleAccueilDermato)
	case model.RoleAccueilOphtalmo:
		return hasRole(granted, model.RoleAccueilOphtalmo)
	case model.RoleAccueil:
		return hasRole(granted, model.RoleAccueil) ||
			hasRole(granted, model.RoleAccueilDermato) ||
			hasRole(granted, model.RoleAccueilOphtalmo)
	default:
		return false
	}
}

func hasRole(granted []model.RoleCode, role model.RoleCode) bool {
	for _, g := range granted {
		if g == role {
			return true
		}
	}
	return false
}
