package command

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// travelKeyword introduces an explicit destination at the hub ("viajar 2").
const travelKeyword = "viajar"

// Rule maps aliases to an intent within one context.
type Rule struct {
	Intent   Intent
	Aliases  []string                 // Whole-input matches
	Contains []string                 // Substring matches
	Target   func(string) (int, bool) // Matches input carrying a numeric argument
}

func (r Rule) match(input string) (int, bool) {
	for _, a := range r.Aliases {
		if input == a {
			return 0, true
		}
	}
	for _, c := range r.Contains {
		if strings.Contains(input, c) {
			return 0, true
		}
	}
	if r.Target != nil {
		return r.Target(input)
	}
	return 0, false
}

var helpRule = Rule{Intent: IntentHelp, Aliases: []string{"ajuda", "ajudar"}}

// rules is the intent table. Within a context, rules are tried in order.
var rules = map[Context][]Rule{
	ContextHub: {
		helpRule,
		{Intent: IntentTravel, Target: parseTravel},
		{Intent: IntentStatus, Aliases: []string{"status"}},
	},
	ContextRegion: {
		helpRule,
		{Intent: IntentTalk, Aliases: []string{"1", "conversar"}},
		{Intent: IntentConfront, Aliases: []string{"2"}, Contains: []string{"enfrentar"}},
		{Intent: IntentReturn, Aliases: []string{"3"}, Contains: []string{"voltar"}},
		{Intent: IntentStatus, Aliases: []string{"status"}},
	},
	ContextBattle: {
		helpRule,
		{Intent: IntentAttack, Aliases: []string{"1", "atacar"}},
		{Intent: IntentPotion, Aliases: []string{"2", "usar pocao", "pocao"}},
		{Intent: IntentFlee, Aliases: []string{"3", "fugir"}},
	},
	ContextDodge: {
		helpRule,
		{Intent: IntentDodge, Aliases: []string{"s", "sim"}},
	},
}

// fallback is the intent for input no rule matches. Anything but a dodge
// while a blow is pending means taking the hit.
func fallback(ctx Context) Intent {
	if ctx == ContextDodge {
		return IntentTakeHit
	}
	return IntentInvalid
}

// Parse resolves raw input against the given context.
func Parse(ctx Context, raw string) Command {
	input := Normalize(raw)
	cmd := Command{Intent: fallback(ctx), Input: input}

	for _, rule := range rules[ctx] {
		if target, ok := rule.match(input); ok {
			cmd.Intent = rule.Intent
			cmd.Target = target
			return cmd
		}
	}
	return cmd
}

// Aliases lists every whole-input alias accepted in a context, in table order.
func Aliases(ctx Context) []string {
	var out []string
	for _, rule := range rules[ctx] {
		out = append(out, rule.Aliases...)
	}
	return out
}

// Rules returns a copy of the rules for a context.
func Rules(ctx Context) []Rule {
	return append([]Rule(nil), rules[ctx]...)
}

// parseTravel accepts "<n>" or "viajar <n>", where only the leading digits of
// the number token count ("2a" is 2). A sign is kept, so "-1" is a destination
// that does not exist rather than an unknown command.
func parseTravel(input string) (int, bool) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, false
	}
	token := fields[0]
	if token == travelKeyword {
		if len(fields) < 2 {
			return 0, false
		}
		token = fields[1]
	}
	return leadingInt(token)
}

func leadingInt(s string) (int, bool) {
	sign := 1
	switch {
	case strings.HasPrefix(s, "-"):
		sign, s = -1, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		digits++
		if digits > 6 {
			break
		}
	}
	return sign * n, digits > 0
}

// Normalize lowercases, trims, folds diacritics ("poção" becomes "pocao") and
// collapses runs of whitespace.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err == nil {
		s = folded
	}
	return strings.Join(strings.Fields(s), " ")
}
