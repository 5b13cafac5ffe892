package apitype

// Command is anything published on the event broker
type Command interface {
	String() string
}
