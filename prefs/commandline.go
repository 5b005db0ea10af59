// This file is part of Hakka.
//
// Hakka is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hakka is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hakka.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// the command-line stack holds preference values specified by the user on
// the command line. each entry in the stack is a group of key/value pairs.
var commandLineStack []map[string]string

// PushCommandLineStack parses a prefs string and pushes the values onto the
// stack. The format of the string is "key::value; key::value".
func PushCommandLineStack(prefs string) {
	cl := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			cl[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	commandLineStack = append(commandLineStack, cl)
}

// PopCommandLineStack removes the top of the stack and returns the values
// that were not consumed by GetCommandLinePref(), in the same format accepted
// by PushCommandLineStack().
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, top[k]))
	}

	return strings.Join(s, "; ")
}

// SizeCommandLineStack returns the number of entries in the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// GetCommandLinePref returns the value for the key from the top of the stack.
// A value can only be retrieved once.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	top := commandLineStack[len(commandLineStack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, ""
}
