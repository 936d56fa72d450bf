package commands

// Result carries the user-facing outcome of an executed command.
type Result struct {
	Message string
}

// Handlers wires each command verb to an application callback. Any nil
// handler turns the matching verb into a handler_missing error at execute
// time rather than a panic.
type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Suggest func(SuggestArgs) (Result, error)
	Filter  func(FilterArgs) (Result, error)
	Sync    func(SyncArgs) (Result, error)
	Delete  func(DeleteArgs) (Result, error)
}

func Execute(cmd Command, h Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if h.Add == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Add(*cmd.Add)
	case TypeSuggest:
		if h.Suggest == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Suggest(*cmd.Suggest)
	case TypeFilter:
		if h.Filter == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Filter(*cmd.Filter)
	case TypeSync:
		if h.Sync == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Sync(*cmd.Sync)
	case TypeDelete:
		if h.Delete == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return h.Delete(*cmd.Delete)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: "unsupported command: " + string(cmd.Type)}
	}
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: "no handler registered for " + string(t)}
}
