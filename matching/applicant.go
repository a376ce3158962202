package matching

// Applicant is the closed sum type of *Student and *Couple (spec §3,
// Design Note "Variant types"). Go has no tagged unions, so the variant
// is closed by an unexported marker method: only types in this package
// can implement Applicant, and every call site that must exhaust the
// variant does so with a type switch that the compiler can check is
// complete in spirit (adding a third concrete type here would force a
// review of every switch, per the Design Note).
type Applicant interface {
	applicantMarker()

	// key returns a canonical, comparable identifier used for couple
	// dedup in the stability checker, couple ordering in the driver, and
	// cycle-detection snapshots (§4.5, §9: "matching sorted by
	// applicant id"). Singles use their student id; couples use the
	// ordered pair of member ids.
	key() applicantKey

	// resetCursorTo0 rewinds the applicant's cursor(s) to the head of
	// its preference list (§4.4 repair step).
	resetCursorTo0()

	// currentPrograms returns the program id(s) the applicant is
	// presently matched to, used by the repair loop (§4.4) to push the
	// applicant's about-to-be-vacated program(s) onto the program stack.
	currentPrograms(m *Matching) []int
}

// applicantKey canonically identifies an applicant for snapshot/stack
// bookkeeping. Couple keys are stored with the smaller member id first so
// that a couple always hashes identically regardless of which member
// surfaced it (e.g. via partner withdrawal).
type applicantKey struct {
	a, b    int
	isCouple bool
}

func (s *Student) key() applicantKey { return applicantKey{a: s.ID} }

// Couple is two Students whose preferences are considered jointly: the
// joint preference list is the position-wise zip of the two members' own
// Preferences (spec §3). The two members must have preference lists of
// equal length; NewMarket validates this.
type Couple struct {
	Members [2]*Student
}

// NewCouple constructs a Couple from two students. It does not validate
// the equal-length invariant; NewMarket does, aggregating the error with
// every other validation problem found.
func NewCouple(a, b *Student) *Couple {
	return &Couple{Members: [2]*Student{a, b}}
}

func (c *Couple) applicantMarker() {}

func (c *Couple) currentPrograms(m *Matching) []int {
	var out []int
	if pid, ok := m.ProgramOf(c.Members[0].ID); ok {
		out = append(out, pid)
	}
	if pid, ok := m.ProgramOf(c.Members[1].ID); ok {
		out = append(out, pid)
	}
	return out
}

func (c *Couple) resetCursorTo0() { c.resetCursor() }

func (c *Couple) key() applicantKey {
	a, b := c.Members[0].ID, c.Members[1].ID
	if a > b {
		a, b = b, a
	}
	return applicantKey{a: a, b: b, isCouple: true}
}

// cursor returns the couple's shared cursor. Both members' bestUnrejected
// are kept in lockstep by the engine (spec §3: "synchronized across both
// members"), so either member's value is authoritative.
func (c *Couple) cursor() int { return c.Members[0].bestUnrejected }

// exhausted reports whether the couple has run past the end of its joint
// preference list.
func (c *Couple) exhausted() bool { return c.cursor() >= len(c.Members[0].Preferences) }

// pair returns the i'th joint preference pair (p_i, q_i): the program
// each member would apply to at joint-list position i. The two
// coordinates may repeat the same program (spec §3).
func (c *Couple) pair(i int) (p, q int) {
	return c.Members[0].Preferences[i], c.Members[1].Preferences[i]
}

// advance moves both members' cursors forward by one position,
// preserving the synchronization invariant.
func (c *Couple) advance() {
	c.Members[0].bestUnrejected++
	c.Members[1].bestUnrejected++
}

// resetCursor rewinds both members' cursors to the head of their
// preference lists (used by the repair loop, §4.4: "cursor reset to the
// top of its preference list").
func (c *Couple) resetCursor() {
	c.Members[0].bestUnrejected = 0
	c.Members[1].bestUnrejected = 0
}
