package leave

import (
	"regexp"
	"strings"

	"github.com/atlashr/timesheet-backend-go/internal/domain/leave"
)

// englishSynonyms are tried in order, first match wins. More specific
// patterns sit above their broader prefix: "PAID HOLIDAY FOOD" must resolve
// before "PAID HOLIDAY" gets a chance.
var englishSynonyms = []struct {
	pattern *regexp.Regexp
	code    leave.Code
}{
	{regexp.MustCompile(`PAID\s+HOLIDAY\s+FOOD|HOLIDAY\s+FOOD`), leave.CodeHolidayFood},
	{regexp.MustCompile(`PAID\s+HOLIDAY|PUBLIC\s+HOLIDAY`), leave.CodeHoliday},
	{regexp.MustCompile(`ANNU(AL)?|VACATION`), leave.CodeAnnual},
	{regexp.MustCompile(`SICK|MEDICAL|DOCTOR`), leave.CodeSick},
	{regexp.MustCompile(`EMERG`), leave.CodeEmergency},
	{regexp.MustCompile(`UNPAID|WITHOUT\s+PAY|NO\s+PAY`), leave.CodeUnpaid},
	{regexp.MustCompile(`MATERN`), leave.CodeMaternity},
	{regexp.MustCompile(`EXCEPTION`), leave.CodeExceptional},
	{regexp.MustCompile(`BEREAVE|CONDOLENCE|MOURNING`), leave.CodeBereaved1},
	{regexp.MustCompile(`HALF\s*DAY`), leave.CodeHalfDay},
	{regexp.MustCompile(`MISSION|BUSINESS\s+TRIP`), leave.CodeMission},
}

// arabicKeywords are the final fallback layer, matched as substrings against
// the raw (untranslated) input.
var arabicKeywords = []struct {
	keyword string
	code    leave.Code
}{
	{"سنوي", leave.CodeAnnual},
	{"مرض", leave.CodeSick},
	{"طارئ", leave.CodeEmergency},
	{"بدون راتب", leave.CodeUnpaid},
	{"بدون اجر", leave.CodeUnpaid},
	{"بدون أجر", leave.CodeUnpaid},
	{"أمومة", leave.CodeMaternity},
	{"امومة", leave.CodeMaternity},
	{"وفاة", leave.CodeBereaved1},
	{"نصف يوم", leave.CodeHalfDay},
	{"مهمة", leave.CodeMission},
	{"عيد", leave.CodeHoliday},
	{"عطلة", leave.CodeHoliday},
}

// NormalizeCode maps a free-text or legacy leave label onto the canonical
// code set. Pure and total: same input always yields the same code, unknown
// input yields CodeNone. Unknown labels are never truncated into a two-letter
// guess.
func NormalizeCode(input string) leave.Code {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return leave.CodeNone
	}

	upper := strings.ToUpper(raw)
	if c := leave.Code(upper); c.Valid() {
		return c
	}

	for _, syn := range englishSynonyms {
		if syn.pattern.MatchString(upper) {
			return syn.code
		}
	}

	for _, kw := range arabicKeywords {
		if strings.Contains(raw, kw.keyword) {
			return kw.code
		}
	}

	return leave.CodeNone
}
