// SPDX-License-Identifier: Unlicense OR MIT

package key

import "strings"

// Set is an expression for matching sets of key combinations.
//
// A set is one or more alternatives separated by "|". Each alternative
// is a key name, or a list of names "[A,B,C]", prefixed by zero or
// more modifiers separated by "-". A modifier wrapped in parentheses
// is optional. The special modifier "Short" denotes ModShortcut.
//
// For example, the set
//
//	"Short-[C,V]|(Shift)-⏎"
//
// matches C and V with the shortcut modifier held, and Return with or
// without shift.
type Set string

// Contains reports whether the key combination of name and modifiers
// is contained in the set.
func (s Set) Contains(name Name, mods Modifiers) bool {
	for _, alt := range strings.Split(string(s), "|") {
		var req, opt Modifiers
		tokens := strings.Split(alt, "-")
		names := tokens[len(tokens)-1]
		ok := true
		for _, tok := range tokens[:len(tokens)-1] {
			m := &req
			if strings.HasPrefix(tok, "(") && strings.HasSuffix(tok, ")") {
				tok = tok[1 : len(tok)-1]
				m = &opt
			}
			switch Name(tok) {
			case NameCtrl:
				*m |= ModCtrl
			case NameShift:
				*m |= ModShift
			case NameAlt:
				*m |= ModAlt
			case NameSuper:
				*m |= ModSuper
			case NameCommand:
				*m |= ModCommand
			case "Short":
				*m |= ModShortcut
			default:
				ok = false
			}
		}
		if !ok || !mods.Contain(req) || !(req | opt).Contain(mods) {
			continue
		}
		if strings.HasPrefix(names, "[") && strings.HasSuffix(names, "]") {
			for _, n := range strings.Split(names[1:len(names)-1], ",") {
				if Name(n) == name {
					return true
				}
			}
		} else if Name(names) == name {
			return true
		}
	}
	return false
}
