package notification

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionUpdate Action = "UPDATE"
	ActionCancel Action = "CANCEL"
)

func (a Action) String() string {
	return string(a)
}

func (a Action) IsValid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionCancel:
		return true
	}
	return false
}

type ReadState string

const (
	ReadStateUnread ReadState = "UNREAD"
	ReadStateRead   ReadState = "READ"
)

func (r ReadState) String() string {
	return string(r)
}

func (r ReadState) IsValid() bool {
	return r == ReadStateUnread || r == ReadStateRead
}
