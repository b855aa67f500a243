package match

// Action is one step a participant can take on a match.
type Action int

const (
	Accept Action = iota + 1
	Reject
	CompleteDropOff
	CompletePickUp
	CompleteDestinationDropOff
	CompleteDestinationPickUp
)

// Role names the participant an action belongs to.
type Role int

const (
	NoRole Role = iota
	TravelerRole
	SenderRole
	ReceiverRole
)

func (r Role) String() string {
	switch r {
	case TravelerRole:
		return "traveler"
	case SenderRole:
		return "sender"
	case ReceiverRole:
		return "receiver"
	default:
		return "none"
	}
}

type actionRule struct {
	name string
	role Role
}

var actionRules = map[Action]actionRule{
	Accept:                     {name: "accept", role: TravelerRole},
	Reject:                     {name: "reject", role: TravelerRole},
	CompleteDropOff:            {name: "dropoff-complete", role: SenderRole},
	CompletePickUp:             {name: "pickup-complete", role: TravelerRole},
	CompleteDestinationDropOff: {name: "destination-dropoff-complete", role: TravelerRole},
	CompleteDestinationPickUp:  {name: "destination-pickup-complete", role: ReceiverRole},
}

func (a Action) String() string {
	if r, ok := actionRules[a]; ok {
		return r.name
	}
	return "unknown"
}

// Role returns who is allowed to perform the action.
func (a Action) Role() Role {
	return actionRules[a].role
}
