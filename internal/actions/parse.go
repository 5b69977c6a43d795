package actions

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAction is returned by ParseLine for input that is not a form event.
var ErrNotAction = errors.New("not a form action")

// ParseLine reads a console command such as
//
//	set fullName Ada Lovelace
//	add experience
//	update experience 1 description Led the team\nShipped v2
//	remove skills last
//	goto education
//
// The value is the rest of the line; \n inside it becomes a line break.
func ParseLine(line string) (Action, error) {
	head, rest := cutField(line)
	op := Op(strings.ToLower(head))

	switch op {
	case OpSet:
		field, value := cutField(rest)
		if field == "" {
			return Action{}, fmt.Errorf("usage: set <field> <value>")
		}
		return Action{Op: op, Field: field, Value: unescape(value)}, nil

	case OpAdd, OpGoTo:
		section, extra := cutField(rest)
		if section == "" || extra != "" {
			return Action{}, fmt.Errorf("usage: %s <section>", op)
		}
		return Action{Op: op, Section: section}, nil

	case OpRemove:
		section, rest := cutField(rest)
		ref, extra := cutField(rest)
		if ref == "" || extra != "" {
			return Action{}, fmt.Errorf("usage: remove <section> <id|position|last>")
		}
		return Action{Op: op, Section: section, Ref: ref}, nil

	case OpUpdate:
		section, rest := cutField(rest)
		ref, rest := cutField(rest)
		field, value := cutField(rest)
		if field == "" {
			return Action{}, fmt.Errorf("usage: update <section> <id|position|last> <field> <value>")
		}
		return Action{Op: op, Section: section, Ref: ref, Field: field, Value: unescape(value)}, nil

	case OpNext, OpBack, OpReset, OpExport:
		if rest != "" {
			return Action{}, fmt.Errorf("usage: %s", op)
		}
		return Action{Op: op}, nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrNotAction, head)
}

// cutField splits off the first whitespace-delimited word.
func cutField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return strings.TrimRight(s, " \t\r\n"), ""
	}
	return s[:i], strings.TrimSpace(s[i+1:])
}

var unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t")

func unescape(s string) string {
	return unescaper.Replace(s)
}
