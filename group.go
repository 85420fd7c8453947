package flubber

import "fmt"

// Group combines animations. A parallel group starts all members together
// and completes when the last one completes. A sequential group starts each
// member only after its predecessor's completion callbacks have run.
//
// Members are owned by the group: do not start them individually.
type Group struct {
	handle
	members  []Animation
	parallel bool
	cursor   int
}

// Parallel returns an unstarted group running members simultaneously.
func Parallel(members ...Animation) *Group {
	return newGroup(true, members)
}

// Sequence returns an unstarted group running first, then each of then in
// order.
func Sequence(first Animation, then ...Animation) *Group {
	members := make([]Animation, 0, len(then)+1)
	members = append(members, first)
	members = append(members, then...)
	return newGroup(false, members)
}

func newGroup(parallel bool, members []Animation) *Group {
	g := &Group{members: members, parallel: parallel}
	for _, m := range members {
		if e := m.engine(); e != nil {
			g.eng = e
			break
		}
	}
	kind := "sequence"
	if parallel {
		kind = "parallel"
	}
	g.name = fmt.Sprintf("%s[%d]", kind, len(members))
	return g
}

// Named sets the label used in traces and returns g.
func (g *Group) Named(name string) *Group {
	g.name = name
	return g
}

// Members returns the group's members. The returned slice MUST NOT be
// mutated by the caller.
func (g *Group) Members() []Animation {
	return g.members
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.members)
}

// IsParallel reports whether the group runs its members simultaneously.
func (g *Group) IsParallel() bool {
	return g.parallel
}

// Duration is the longest member duration for a parallel group and the sum
// of member durations for a sequential one.
func (g *Group) Duration() float32 {
	var d float32
	for _, m := range g.members {
		md := m.Duration()
		if g.parallel {
			if md > d {
				d = md
			}
		} else {
			d += md
		}
	}
	return d
}

// Start begins the group and registers it with its engine. An empty group
// completes immediately.
func (g *Group) Start() {
	if g.started {
		return
	}
	g.begin()
	if g.eng != nil {
		g.eng.register(g)
	}
}

func (g *Group) begin() {
	if !g.markStarted() {
		return
	}
	if len(g.members) == 0 {
		g.finish()
		return
	}
	if g.parallel {
		for _, m := range g.members {
			m.begin()
		}
		return
	}
	g.members[0].begin()
}

func (g *Group) update(dt float32) float32 {
	if g.done {
		return dt
	}
	if g.parallel {
		return g.updateParallel(dt)
	}
	return g.updateSequence(dt)
}

func (g *Group) updateParallel(dt float32) float32 {
	left := dt
	all := true
	for _, m := range g.members {
		if m.Done() {
			continue
		}
		ml := m.update(dt)
		if !m.Done() {
			all = false
			continue
		}
		if ml < left {
			left = ml
		}
	}
	if !all {
		return 0
	}
	g.finish()
	return left
}

func (g *Group) updateSequence(dt float32) float32 {
	remaining := dt
	for g.cursor < len(g.members) {
		m := g.members[g.cursor]
		remaining = m.update(remaining)
		if !m.Done() {
			return 0
		}
		g.cursor++
		if g.cursor < len(g.members) {
			g.members[g.cursor].begin()
		}
	}
	g.finish()
	return remaining
}
