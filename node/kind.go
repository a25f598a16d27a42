package node

//go:generate go tool stringer -type=TargetEnum -output=target_string.go

// TargetEnum is the runtime shape of a processed value.
type TargetEnum int

const (
	TargetUnknown TargetEnum = iota // exposes no names at all
	TargetObject                    // implements Object
	TargetStruct                    // struct or pointer to struct
	TargetMap                       // map with a string kinded key

	// TargetTotal is a constant that represents the total number of target shapes defined
	TargetTotal = int(iota)
)
