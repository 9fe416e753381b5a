package main

import (
	"errors"
	"sort"
	"strings"

	"github.com/bawdo/sqlcraft/nodes"
)

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- display ---
		{prefix: "sql", handler: func(_ string) error { return s.cmdSQL() }},
		{prefix: "tosql", handler: func(_ string) error { return s.cmdSQL() }, hidden: true},
		{prefix: "reset", handler: func(_ string) error { return s.cmdReset() }},
		{prefix: "tables", handler: func(_ string) error { return s.cmdTables() }},
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},

		// --- query building ---
		{prefix: "from ", handler: s.cmdFrom, completer: completeTableArgs},
		{prefix: "select ", handler: s.cmdSelect, completer: completeColumnArgs},
		{prefix: "distinct", handler: func(_ string) error { return s.cmdDistinct() }},
		{prefix: "where ", handler: s.cmdWhere, completer: completeColumnArgs},
		{prefix: "group ", handler: s.cmdGroup, completer: completeColumnArgs},
		{prefix: "order ", handler: s.cmdOrder, completer: completeOrderArgs},
		{prefix: "limit ", handler: s.cmdLimit},
		{prefix: "offset ", handler: s.cmdOffset},
		{prefix: "for update", handler: func(_ string) error { return s.cmdLock(true) }},
		{prefix: "for share", handler: func(_ string) error { return s.cmdLock(false) }},

		// --- joins ---
		{prefix: "left join ", handler: func(a string) error { return s.cmdJoin(a, nodes.LeftOuterJoin) }, completer: completeJoinArgs},
		{prefix: "right join ", handler: func(a string) error { return s.cmdJoin(a, nodes.RightOuterJoin) }, completer: completeJoinArgs},
		{prefix: "join ", handler: func(a string) error { return s.cmdJoin(a, nodes.InnerJoin) }, completer: completeJoinArgs},

		// --- DML builders ---
		{prefix: "insert into ", handler: s.cmdInsert, completer: completeTableArgs},
		{prefix: "values ", handler: s.cmdValues},
		{prefix: "update ", handler: s.cmdUpdate, completer: completeTableArgs},
		{prefix: "delete from ", handler: s.cmdDelete, completer: completeTableArgs},
		{prefix: "insert ", handler: s.cmdInsert, completer: completeTableArgs, hidden: true},
		{prefix: "delete ", handler: s.cmdDelete, completer: completeTableArgs, hidden: true},
		{prefix: "returning ", handler: s.cmdReturning, completer: completeColumnArgs},

		// --- dialect ---
		{prefix: "engine ", handler: s.cmdEngine, completer: completeEngineArgs},
		{prefix: "dialect-file ", handler: s.cmdDialectFile},

		// --- database connectivity ---
		{prefix: "connect ", handler: s.cmdConnect},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "exec", handler: func(_ string) error { return s.cmdExec() }},
		{prefix: "run", handler: func(_ string) error { return s.cmdExec() }, hidden: true},

		// --- plugins ---
		{prefix: "softdelete ", handler: s.cmdSoftdelete, completer: completeSoftdeleteArgs},
		{prefix: "softdelete", handler: func(_ string) error { return s.cmdSoftdelete("") }},
		{prefix: "plugins", handler: func(_ string) error { s.cmdPlugins(); return nil }},
	}

	for _, usage := range []string{"from", "select", "where", "order", "limit", "offset", "engine", "dialect-file"} {
		msg := "usage: " + usage + " <args>"
		s.commands = append(s.commands, commandEntry{
			prefix:  usage,
			handler: func(_ string) error { return errors.New(msg) },
			hidden:  true,
		})
	}

	// Longest prefixes match first.
	sort.SliceStable(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// exit/quit are handled by the REPL loop, not Execute().
	for _, extra := range []string{"exit", "quit"} {
		if !seen[extra] {
			names = append(names, extra)
		}
	}
	sort.Strings(names)
	return names
}

// --- Shared completion helpers ---

// completeJoinArgs handles completion for join prefixes:
// table name, then column refs for the ON clause.
func completeJoinArgs(args string) (completionContext, string) {
	words := strings.Fields(args)
	if len(words) == 0 {
		return contextTableName, ""
	}
	if strings.Contains(args, " ") {
		if strings.HasSuffix(args, " ") {
			if strings.EqualFold(words[len(words)-1], "on") {
				return contextColumnRef, ""
			}
			return contextOperator, ""
		}
		return contextColumnRef, words[len(words)-1]
	}
	return contextTableName, args
}

// completeTableArgs handles completion for commands whose first argument is a table.
func completeTableArgs(args string) (completionContext, string) {
	arg := strings.TrimSpace(args)
	if !strings.Contains(arg, " ") && !strings.HasSuffix(args, " ") {
		return contextTableName, arg
	}
	return contextCommand, ""
}

// completeColumnArgs handles completion for column-ref commands.
func completeColumnArgs(args string) (completionContext, string) {
	if strings.HasSuffix(args, " ") {
		prev := strings.Fields(args)
		if len(prev) > 0 && isIdentifier(prev[len(prev)-1]) && strings.Contains(prev[len(prev)-1], ".") {
			return contextOperator, ""
		}
		return contextColumnRef, ""
	}
	return contextColumnRef, lastToken(args)
}

// completeOrderArgs completes a column, then a direction.
func completeOrderArgs(args string) (completionContext, string) {
	if strings.HasSuffix(args, " ") && len(strings.Fields(args)) == 1 {
		return contextOrderDir, ""
	}
	if parts := strings.Fields(args); len(parts) == 2 {
		return contextOrderDir, parts[1]
	}
	return contextColumnRef, lastToken(args)
}

func completeEngineArgs(args string) (completionContext, string) {
	return contextEngine, strings.TrimSpace(args)
}

func completeSoftdeleteArgs(args string) (completionContext, string) {
	if strings.Contains(strings.TrimSpace(args), " ") {
		return contextTableName, lastToken(args)
	}
	return contextSoftdelete, strings.TrimSpace(args)
}
