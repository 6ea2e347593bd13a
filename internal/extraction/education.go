package extraction

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// degreeKeyword binds a recognizable degree mention to its education level.
type degreeKeyword struct {
	keyword string
	level   types.EducationLevel
}

// degreeKeywords are scanned in order; multi-word and dotted forms come before
// the bare forms they contain so the most specific mention is recorded.
var degreeKeywords = []degreeKeyword{
	{"Doctor of Philosophy", types.EducationDoctorate},
	{"Doctorate", types.EducationDoctorate},
	{"Doctoral", types.EducationDoctorate},
	{"Ph.D", types.EducationDoctorate},
	{"PhD", types.EducationDoctorate},

	{"Master of Science", types.EducationMasters},
	{"Master of Arts", types.EducationMasters},
	{"Master's", types.EducationMasters},
	{"Masters", types.EducationMasters},
	{"Master", types.EducationMasters},
	{"M.Sc", types.EducationMasters},
	{"M.S.", types.EducationMasters},
	{"M.A.", types.EducationMasters},
	{"MBA", types.EducationMasters},
	{"MSc", types.EducationMasters},

	{"Bachelor of Science", types.EducationBachelors},
	{"Bachelor of Arts", types.EducationBachelors},
	{"Bachelor's", types.EducationBachelors},
	{"Bachelors", types.EducationBachelors},
	{"Bachelor", types.EducationBachelors},
	{"B.Sc", types.EducationBachelors},
	{"B.S.", types.EducationBachelors},
	{"B.A.", types.EducationBachelors},
	{"B.Tech", types.EducationBachelors},
	{"B.E.", types.EducationBachelors},
	{"BSc", types.EducationBachelors},

	{"Associate Degree", types.EducationAssociate},
	{"Associate's", types.EducationAssociate},
	{"A.S.", types.EducationAssociate},
	{"A.A.", types.EducationAssociate},

	{"High School", types.EducationHighSchool},
	{"Secondary School", types.EducationHighSchool},
}

// ExtractEducation scans for degree-level keywords and returns the education
// record. The highest level across all recognized mentions wins; with no
// recognized mention the record defaults to level none, which is a degraded
// extraction rather than an error. Each level is recorded at most once, using
// the mention that appears earliest in the text.
func ExtractEducation(text string) types.EducationRecord {
	textUpper := strings.ToUpper(text)

	type mention struct {
		pos     int
		keyword string
		level   types.EducationLevel
	}
	var mentions []mention
	seenLevel := map[types.EducationLevel]bool{}

	for _, dk := range degreeKeywords {
		if seenLevel[dk.level] {
			continue
		}
		pos := strings.Index(textUpper, strings.ToUpper(dk.keyword))
		if pos < 0 {
			continue
		}
		seenLevel[dk.level] = true
		mentions = append(mentions, mention{pos: pos, keyword: dk.keyword, level: dk.level})
	}

	record := types.EducationRecord{
		HighestLevel:   types.EducationNone,
		DegreeMentions: []string{},
	}

	sort.Slice(mentions, func(i, j int) bool { return mentions[i].pos < mentions[j].pos })
	for _, m := range mentions {
		record.DegreeMentions = append(record.DegreeMentions, m.keyword)
		if m.level > record.HighestLevel {
			record.HighestLevel = m.level
		}
	}

	record.HasDegree = record.HighestLevel >= types.EducationBachelors
	return record
}
