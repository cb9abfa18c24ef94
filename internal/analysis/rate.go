package analysis

import "strconv"

// PassThreshold is the minimum component score for ATS approval. Both the
// keyword score and the structure score must clear it.
const PassThreshold = 70.0

// Rating combines the two component reports into the overall verdict.
type Rating struct {
	Overall float64
	// ATSApproved is the pass flag: both component scores at or above
	// PassThreshold.
	ATSApproved bool
	// FailedChecks is stricter than ATSApproved: true when anything at all is
	// missing. A resume can be approved while still having failed checks.
	FailedChecks bool
}

// Rate computes the composite verdict from the two scorer reports.
func Rate(kw KeywordReport, st StructureReport) Rating {
	return Rating{
		Overall:      (kw.Score + st.Score) / 2,
		ATSApproved:  kw.Score >= PassThreshold && st.Score >= PassThreshold,
		FailedChecks: len(kw.Missing) > 0 || len(st.Missing) > 0,
	}
}

// FormatScore renders a score with two decimal places for the payload.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}
