package domain

import "fmt"

type ParentAction int

const (
	ParentScolding ParentAction = iota
	ParentIgnoring
	ParentExplaining
	ParentHugging
	ParentGettingAngry
	ParentSighing
	ParentForcing
	ParentComforting
	ParentGivingIn
	ParentThreatening
	ParentPunishing
	ParentNegotiating
	ParentPraising
	ParentApologizing
	ParentWalkingAway
	ParentChangingTopic
	ParentConsulting
	ParentGettingSilent
	ParentEncouraging
	ParentListening
	ParentAppreciating
	ParentSupporting
	ParentPlayingTogether
)

var parentActionText = [...]struct {
	slug  string
	label string
}{
	ParentScolding:        {"scolding", "Scolding"},
	ParentIgnoring:        {"ignoring", "Ignoring"},
	ParentExplaining:      {"explaining", "Explaining"},
	ParentHugging:         {"hugging", "Hugging"},
	ParentGettingAngry:    {"getting-angry", "Getting angry"},
	ParentSighing:         {"sighing", "Sighing"},
	ParentForcing:         {"forcing", "Forcing"},
	ParentComforting:      {"comforting", "Comforting"},
	ParentGivingIn:        {"giving-in", "Giving in"},
	ParentThreatening:     {"threatening", "Threatening"},
	ParentPunishing:       {"punishing", "Punishing"},
	ParentNegotiating:     {"negotiating", "Negotiating"},
	ParentPraising:        {"praising", "Praising"},
	ParentApologizing:     {"apologizing", "Apologizing"},
	ParentWalkingAway:     {"walking-away", "Walking away"},
	ParentChangingTopic:   {"changing-topic", "Changing the topic"},
	ParentConsulting:      {"consulting", "Asking someone for advice"},
	ParentGettingSilent:   {"getting-silent", "Going silent"},
	ParentEncouraging:     {"encouraging", "Encouraging"},
	ParentListening:       {"listening", "Listening"},
	ParentAppreciating:    {"appreciating", "Saying thank you"},
	ParentSupporting:      {"supporting", "Supporting"},
	ParentPlayingTogether: {"playing-together", "Playing together"},
}

func (a ParentAction) Valid() bool {
	return a >= 0 && int(a) < len(parentActionText)
}

func (a ParentAction) Code() int {
	return int(a)
}

func (a ParentAction) Label() string {
	if !a.Valid() {
		return fmt.Sprintf("ParentAction(%d)", int(a))
	}

	return parentActionText[a].label
}

func (a ParentAction) Slug() string {
	if !a.Valid() {
		return fmt.Sprintf("parent-%d", int(a))
	}

	return parentActionText[a].slug
}

func (a ParentAction) String() string {
	return a.Slug()
}

var parentCatalog = newCatalog(DomainParent, allParentActions(),
	[]ParentAction{
		ParentHugging,
		ParentComforting,
		ParentPraising,
		ParentEncouraging,
		ParentListening,
		ParentAppreciating,
		ParentSupporting,
		ParentPlayingTogether,
	},
	[]ParentAction{
		ParentScolding,
		ParentIgnoring,
		ParentGettingAngry,
		ParentSighing,
		ParentForcing,
		ParentThreatening,
		ParentPunishing,
		ParentWalkingAway,
		ParentGettingSilent,
	},
)

func ParentCatalog() Catalog[ParentAction] {
	return parentCatalog
}

func allParentActions() []ParentAction {
	actions := make([]ParentAction, len(parentActionText))
	for i := range parentActionText {
		actions[i] = ParentAction(i)
	}

	return actions
}
