// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package environment

import (
	"io"
	"strings"
	"sync"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/osd/logger"
)

// a single variable. the name is block[:split] and the value is
// block[split+1:]
type variable struct {
	block string
	split int
}

func (v variable) name() string {
	return v.block[:v.split]
}

func (v variable) value() string {
	return v.block[v.split+1:]
}

// Store is a collection of environment variables.
type Store struct {
	crit sync.RWMutex

	// variables in the order they were first set
	vars []variable
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore() *Store {
	return &Store{}
}

// foldEqual compares two strings with ASCII case folding. unlike
// strings.EqualFold() no unicode folding is performed
func foldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca == cb {
			continue
		}
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// find returns the index of the named variable or -1. must be called with
// the critical section held
func (s *Store) find(name string) int {
	for i, v := range s.vars {
		if foldEqual(v.name(), name) {
			return i
		}
	}
	return -1
}

// Get returns the value of the named variable. The bool result is false if
// the variable has not been set.
func (s *Store) Get(name string) (string, bool) {
	s.crit.RLock()
	defer s.crit.RUnlock()

	i := s.find(name)
	if i == -1 {
		return "", false
	}

	v := s.vars[i].value()
	logger.Logf(logger.Allow, "environment", "get %s = %s", name, v)
	return v, true
}

// Entry returns the "name=value" block for the named variable. The name part
// of the block is spelled as it was when the variable was last set.
func (s *Store) Entry(name string) (string, bool) {
	s.crit.RLock()
	defer s.crit.RUnlock()

	i := s.find(name)
	if i == -1 {
		return "", false
	}
	return s.vars[i].block, true
}

// Set the named variable to the value. If overwrite is false and the
// variable already exists the store is not changed.
//
// Returns false if the name is empty or contains the '=' character. An
// unchanged store because of the overwrite flag is not a failure.
func (s *Store) Set(name string, value string, overwrite bool) bool {
	if name == "" || strings.IndexByte(name, '=') != -1 {
		return false
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	i := s.find(name)
	if i != -1 && !overwrite {
		return true
	}

	var b strings.Builder
	b.Grow(len(name) + len(value) + 1)
	b.WriteString(name)
	b.WriteByte('=')
	b.WriteString(value)

	v := variable{
		block: b.String(),
		split: len(name),
	}

	if i == -1 {
		s.vars = append(s.vars, v)
	} else {
		s.vars[i] = v
	}

	logger.Logf(logger.Allow, "environment", "set %s", v.block)

	return true
}

// Block returns every "name=value" block in the order the variables were
// first set.
func (s *Store) Block() []string {
	s.crit.RLock()
	defer s.crit.RUnlock()

	b := make([]string, len(s.vars))
	for i, v := range s.vars {
		b[i] = v.block
	}
	return b
}

// Len returns the number of variables in the store.
func (s *Store) Len() int {
	s.crit.RLock()
	defer s.crit.RUnlock()
	return len(s.vars)
}

// Visualise writes a graphviz description of the store to io.Writer.
func (s *Store) Visualise(w io.Writer) {
	s.crit.RLock()
	defer s.crit.RUnlock()

	vars := make([]variable, len(s.vars))
	copy(vars, s.vars)
	memviz.Map(w, &vars)
}
