// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package modhost

import "strings"

// CoreGroupName is the reserved module name the host special-cases itself,
// rather than dispatching it to any loaded module (spec section 4.8: "The
// special name core is consumed by the host itself").
const CoreGroupName = "core"

// ArgGroup is one "+name arg arg ..." run of a routed command line.
type ArgGroup struct {
	Name string   // module name, or "" for the leading global group
	Args []string // arguments following the +name token, exclusive of it
}

// RouteArgs splits a host command line into a leading global group (any
// arguments before the first "+name" token) and the module groups
// introduced by each "+name" token, preserving the order in which names
// first appear (spec section 4.8, "Command-line routing").
//
// A bare "+" or a "+" followed immediately by another "+" is rejected as a
// malformed group name.
func RouteArgs(argv []string) ([]ArgGroup, error) {
	var groups []ArgGroup
	var cur *ArgGroup

	for _, tok := range argv {
		if strings.HasPrefix(tok, "+") {
			name := tok[1:]
			if name == "" {
				return nil, ArgumentError("empty module name in " + tok)
			}
			if strings.HasPrefix(name, "+") {
				return nil, ArgumentError("malformed group token " + tok)
			}
			groups = append(groups, ArgGroup{Name: name})
			cur = &groups[len(groups)-1]
			continue
		}
		if cur == nil {
			groups = append(groups, ArgGroup{Name: ""})
			cur = &groups[0]
		}
		cur.Args = append(cur.Args, tok)
	}
	return groups, nil
}
