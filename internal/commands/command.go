package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeSuggest Type = "suggest"
	TypeFilter  Type = "filter"
	TypeSync    Type = "sync"
	TypeDelete  Type = "delete"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type SuggestArgs struct {
	Text string
}

type FilterArgs struct {
	Filter string
}

type SyncArgs struct {
	Target string
}

type DeleteArgs struct {
	Target string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Suggest *SuggestArgs
	Filter  *FilterArgs
	Sync    *SyncArgs
	Delete  *DeleteArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSuggest:
		return parseSuggest(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeSync:
		return parseSync(input, args)
	case TypeDelete:
		return parseDelete(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseSuggest(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "suggest requires task text"}
	}
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "suggest requires task text"}
	}
	return Command{Type: TypeSuggest, Raw: raw, Suggest: &SuggestArgs{Text: text}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires one of: all, active, completed"}
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Filter: strings.ToLower(args[0])}}, nil
}

func parseSync(raw string, args []string) (Command, error) {
	target := "selected"
	if len(args) > 0 {
		target = strings.ToLower(args[0])
	}
	return Command{Type: TypeSync, Raw: raw, Sync: &SyncArgs{Target: target}}, nil
}

func parseDelete(raw string, args []string) (Command, error) {
	target := "selected"
	if len(args) > 0 {
		target = strings.ToLower(args[0])
	}
	return Command{Type: TypeDelete, Raw: raw, Delete: &DeleteArgs{Target: target}}, nil
}
