package wizard

import "mediflow-onboarding/internal/app/models"

// allowedTransitions is the explicit edge list of the wizard state machine.
// Anything absent here is rejected as an illegal transition.
var allowedTransitions = map[models.WizardState][]models.WizardState{
	models.StateRoleSelect:   {models.StateBasicInfo},
	models.StateBasicInfo:    {models.StateRoleSelect, models.StateAdvancedInfo},
	models.StateAdvancedInfo: {models.StateBasicInfo, models.StateSubmitting},
	models.StateSubmitting:   {models.StateSucceeded, models.StateFailed},
	models.StateFailed:       {models.StateAdvancedInfo, models.StateSubmitting},
}

func canTransition(from, to models.WizardState) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// previousState is the onBack edge for each state that has one. Terminal and
// in-flight states have no backward edge.
var previousState = map[models.WizardState]models.WizardState{
	models.StateBasicInfo:    models.StateRoleSelect,
	models.StateAdvancedInfo: models.StateBasicInfo,
}
