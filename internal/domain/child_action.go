package domain

import "fmt"

type ChildAction int

const (
	ChildCrying ChildAction = iota
	ChildScreaming
	ChildThrowingThings
	ChildHitting
	ChildSulking
	ChildIgnoring
	ChildClinging
	ChildFoolingAround
	ChildRefusing
	ChildRunningAway
	ChildArguing
	ChildBreakingRules
	ChildHiding
	ChildGettingExcited
	ChildTeasing
	ChildLying
	ChildNotCleaningUp
	ChildInterrupting
	ChildLaughing
	ChildHelping
	ChildSharing
	ChildConcentrating
	ChildBeingKind
	ChildApologizing
	ChildComplimenting
)

var childActionText = [...]struct {
	slug  string
	label string
}{
	ChildCrying:         {"crying", "Crying"},
	ChildScreaming:      {"screaming", "Screaming"},
	ChildThrowingThings: {"throwing-things", "Throwing things"},
	ChildHitting:        {"hitting", "Hitting or kicking"},
	ChildSulking:        {"sulking", "Sulking"},
	ChildIgnoring:       {"ignoring", "Ignoring"},
	ChildClinging:       {"clinging", "Clinging"},
	ChildFoolingAround:  {"fooling-around", "Fooling around"},
	ChildRefusing:       {"refusing", "Refusing"},
	ChildRunningAway:    {"running-away", "Running away"},
	ChildArguing:        {"arguing", "Talking back"},
	ChildBreakingRules:  {"breaking-rules", "Breaking rules"},
	ChildHiding:         {"hiding", "Hiding"},
	ChildGettingExcited: {"getting-excited", "Getting excited"},
	ChildTeasing:        {"teasing", "Teasing"},
	ChildLying:          {"lying", "Lying"},
	ChildNotCleaningUp:  {"not-cleaning-up", "Not cleaning up"},
	ChildInterrupting:   {"interrupting", "Interrupting"},
	ChildLaughing:       {"laughing", "Laughing"},
	ChildHelping:        {"helping", "Helping"},
	ChildSharing:        {"sharing", "Sharing"},
	ChildConcentrating:  {"concentrating", "Concentrating"},
	ChildBeingKind:      {"being-kind", "Being kind"},
	ChildApologizing:    {"apologizing", "Apologizing"},
	ChildComplimenting:  {"complimenting", "Complimenting"},
}

func (a ChildAction) Valid() bool {
	return a >= 0 && int(a) < len(childActionText)
}

func (a ChildAction) Code() int {
	return int(a)
}

func (a ChildAction) Label() string {
	if !a.Valid() {
		return fmt.Sprintf("ChildAction(%d)", int(a))
	}

	return childActionText[a].label
}

func (a ChildAction) Slug() string {
	if !a.Valid() {
		return fmt.Sprintf("child-%d", int(a))
	}

	return childActionText[a].slug
}

func (a ChildAction) String() string {
	return a.Slug()
}

var childCatalog = newCatalog(DomainChild, allChildActions(),
	[]ChildAction{
		ChildLaughing,
		ChildHelping,
		ChildSharing,
		ChildConcentrating,
		ChildBeingKind,
		ChildApologizing,
		ChildComplimenting,
	},
	[]ChildAction{
		ChildCrying,
		ChildScreaming,
		ChildThrowingThings,
		ChildHitting,
		ChildSulking,
		ChildIgnoring,
		ChildRefusing,
		ChildBreakingRules,
		ChildTeasing,
		ChildLying,
		ChildNotCleaningUp,
		ChildInterrupting,
	},
)

func ChildCatalog() Catalog[ChildAction] {
	return childCatalog
}

func allChildActions() []ChildAction {
	actions := make([]ChildAction, len(childActionText))
	for i := range childActionText {
		actions[i] = ChildAction(i)
	}

	return actions
}
