package experience

import (
	"strings"
	"time"
)

type state int

const (
	searching state = iota
	inBlock
)

func (s state) String() string {
	switch s {
	case searching:
		return "SEARCHING"
	case inBlock:
		return "IN_BLOCK"
	default:
		return "UNKNOWN"
	}
}

// headerLines is how many lines before a date line may hold role and company.
const headerLines = 2

type machine struct {
	state    state
	backfill bool
	parser   DateParser
	now      time.Time

	current Block
	blocks  []Block
	// lines seen since the last date line, newest last
	pending []string
}

func newMachine(backfill bool, parser DateParser, now time.Time) *machine {
	return &machine{
		state:    searching,
		backfill: backfill,
		parser:   parser,
		now:      now,
		current:  emptyBlock(),
	}
}

func emptyBlock() Block {
	return Block{Description: []string{}}
}

func (m *machine) feed(line string) {
	if m.state == searching {
		if !jobTitlePattern.MatchString(line) {
			return
		}
		m.state = inBlock
	}

	loc := dateRangePattern.FindStringSubmatchIndex(line)
	if loc == nil {
		if m.current.StartDate != nil {
			m.current.Description = append(m.current.Description, line)
		}
		m.remember(line)
		return
	}

	m.openBlock(line, loc)
}

func (m *machine) openBlock(line string, loc []int) {
	startText := line[loc[2]:loc[3]]
	endText := line[loc[4]:loc[5]]

	next := emptyBlock()
	role := strings.Trim(strings.TrimSpace(line[:loc[0]]+" "+line[loc[1]:]), " ,|-–—()")
	if len(role) > 2 {
		next.Role = role
	}

	if next.Role == "" && m.backfill {
		m.backfillHeader(&next)
	}

	m.close()
	m.pending = nil

	if start, ok := m.parser.ParseDate(startText); ok {
		next.StartDate = &start
	}
	if ongoingPattern.MatchString(strings.TrimSpace(endText)) {
		now := m.now
		next.EndDate = &now
	} else if end, ok := m.parser.ParseDate(endText); ok {
		next.EndDate = &end
	}

	m.current = next
}

// backfillHeader moves the trailing header lines buffered before the date
// line from the open block's description into b. Bullet lines are never
// treated as headers.
func (m *machine) backfillHeader(b *Block) {
	start := len(m.pending)
	for start > 0 && !bulletPattern.MatchString(m.pending[start-1]) {
		start--
	}
	header := m.pending[start:]
	if len(header) == 0 {
		return
	}

	if m.current.StartDate != nil {
		desc := m.current.Description
		m.current.Description = desc[:len(desc)-len(header)]
	}

	b.Role = header[0]
	if len(header) > 1 {
		b.Company = header[1]
	}
}

func (m *machine) remember(line string) {
	m.pending = append(m.pending, line)
	if len(m.pending) > headerLines {
		m.pending = m.pending[len(m.pending)-headerLines:]
	}
}

func (m *machine) close() {
	if m.current.StartDate != nil {
		m.blocks = append(m.blocks, m.current)
	}
	m.current = emptyBlock()
}

func (m *machine) finish() []Block {
	m.close()
	if m.blocks == nil {
		return []Block{}
	}
	return m.blocks
}
