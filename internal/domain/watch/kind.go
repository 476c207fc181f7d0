package watch

// Type is the movement or display style of a watch.
type Type string

const (
	TypeAnalog  Type = "analog"
	TypeDigital Type = "digital"
	TypeSmart   Type = "smart"
	TypeHybrid  Type = "hybrid"
)

// IsValid returns true if the type is one of the defined constants.
func (t Type) IsValid() bool {
	switch t {
	case TypeAnalog, TypeDigital, TypeSmart, TypeHybrid:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

// AvailableStatus tells whether a watch is offered for sale.
type AvailableStatus string

const (
	StatusAvailable   AvailableStatus = "available"
	StatusUnavailable AvailableStatus = "unavailable"
)

// IsValid returns true if the status is one of the defined constants.
func (s AvailableStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusUnavailable:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s AvailableStatus) String() string {
	return string(s)
}

// Filter holds optional filter criteria for listing watches.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	Brand  string
	Type   Type
	Status AvailableStatus
}
