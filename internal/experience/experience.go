// Package experience reconstructs the work-history timeline of a résumé.
package experience

import (
	"math"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/ats-analyzer/internal/logger"
)

const (
	monthYear = `\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s*(?:19|20)\d{2}`
	bareYear  = `\b(?:19|20)\d{2}\b`
)

var (
	dateRangePattern = regexp.MustCompile(`(?i)(` + monthYear + `|` + bareYear + `)\s*(?:-|–|—|to)\s*(` + monthYear + `|` + bareYear + `|present|current|now)`)
	ongoingPattern   = regexp.MustCompile(`(?i)^(present|current|now)$`)
	educationPattern = regexp.MustCompile(`(?i)\b(b\.?\s?tech|m\.?\s?tech|bachelor|school|college|university|cbse|hsc|ssc|higher secondary|diploma)\b`)
	bulletPattern    = regexp.MustCompile(`^[-•*➢➤●]\s`)
	jobTitlePattern  = regexp.MustCompile(`(?i)\b(intern|developer|engineer|manager|specialist|analyst|designer|consultant|architect|administrator|forums|technologies|solutions|labs)`)
)

// Block is one position in the work history.
type Block struct {
	Role        string     `json:"role"`
	Company     string     `json:"company"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description []string   `json:"description"`
}

// Result is the parsed timeline together with the accumulated tenure.
type Result struct {
	Blocks     []Block `json:"blocks"`
	TotalYears float64 `json:"totalExperienceYears"`
}

// Config tunes the extractor.
type Config struct {
	// BackfillRole takes the role and company of a block from the lines right
	// before its date line when the date line carries no text of its own.
	BackfillRole bool `mapstructure:"backfill-role"`
}

// Extractor parses experience text into blocks.
type Extractor struct {
	cfg    Config
	parser DateParser
	now    func() time.Time
	logger *zap.Logger
}

// New creates an Extractor. A nil parser selects LayoutParser.
func New(cfg Config, parser DateParser, log *zap.Logger) *Extractor {
	if parser == nil {
		parser = LayoutParser{}
	}
	return &Extractor{
		cfg:    cfg,
		parser: parser,
		now:    time.Now,
		logger: logger.OrNop(log),
	}
}

// Extract runs the block state machine over text and sums the tenure of
// every block with both dates set.
func (e *Extractor) Extract(text string) Result {
	m := newMachine(e.cfg.BackfillRole, e.parser, e.now())

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || educationPattern.MatchString(line) {
			continue
		}
		m.feed(line)
	}

	blocks := m.finish()
	total := TotalYears(blocks)

	e.logger.Debug("experience extracted",
		zap.Int("blocks", len(blocks)),
		zap.Float64("total_years", total),
	)

	return Result{Blocks: blocks, TotalYears: total}
}

// TotalYears sums the whole-month spans of blocks, in years rounded to one decimal.
func TotalYears(blocks []Block) float64 {
	months := 0
	for _, b := range blocks {
		if b.StartDate == nil || b.EndDate == nil {
			continue
		}
		months += max(0, monthsBetween(*b.StartDate, *b.EndDate))
	}
	return math.Round(float64(months)/12*10) / 10
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
