package gro

import "github.com/andthum/transfer-Li/simbox"

// Filter is a predicate over one atom. Filters compose with And and Not
// and feed Structure.Select, mirroring the selection strings of
// trajectory toolkits ("name Li and prop z > 42") without a string
// parser.
type Filter func(*Atom) bool

// ByName matches atoms whose name equals name exactly.
func ByName(name string) Filter {
	return func(a *Atom) bool { return a.Name == name }
}

// ByResPrefix matches atoms whose residue name starts with prefix
// ("gra" matches gra1, gra2, ...).
func ByResPrefix(prefix string) Filter {
	return func(a *Atom) bool {
		return len(a.ResName) >= len(prefix) && a.ResName[:len(prefix)] == prefix
	}
}

// ZAbove matches atoms strictly above z (Ångström).
func ZAbove(z float64) Filter {
	return func(a *Atom) bool { return a.Pos[simbox.Z] > z }
}

// ZBetween matches atoms with lo <= z <= hi (Ångström), both bounds
// inclusive.
func ZBetween(lo, hi float64) Filter {
	return func(a *Atom) bool {
		return a.Pos[simbox.Z] >= lo && a.Pos[simbox.Z] <= hi
	}
}

// Not inverts f.
func Not(f Filter) Filter {
	return func(a *Atom) bool { return !f(a) }
}

// And matches atoms that every given filter matches. With no arguments
// it matches everything.
func And(fs ...Filter) Filter {
	return func(a *Atom) bool {
		for _, f := range fs {
			if !f(a) {
				return false
			}
		}
		return true
	}
}

// Select returns the indices of all atoms matching f, in file order.
func (s *Structure) Select(f Filter) []int {
	var idx []int
	for i := range s.Atoms {
		if f(&s.Atoms[i]) {
			idx = append(idx, i)
		}
	}
	return idx
}

// Positions gathers the positions of the atoms at the given indices.
func (s *Structure) Positions(idx []int) []simbox.Vec {
	ps := make([]simbox.Vec, len(idx))
	for i, j := range idx {
		ps[i] = s.Atoms[j].Pos
	}
	return ps
}
