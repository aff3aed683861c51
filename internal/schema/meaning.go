package schema

import "strings"

var abbreviations = map[string]string{
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "hp": "phone", "ph": "phone",
	"biz": "business", "img": "image", "url": "url",
	"zip": "zipcode", "post": "zipcode",
	"msg": "message", "txt": "text", "tit": "title", "subj": "subject",
	"usr": "user", "emp": "employee", "dept": "department", "grp": "group",
	"cat": "category", "loc": "location", "lat": "latitude", "lng": "longitude",
	"lon": "longitude", "st": "street", "bal": "balance",
	"reg": "registered", "mod": "modified", "cre": "created", "upd": "updated",
	"yn": "yesno", "flg": "flag", "stat": "status", "sts": "status",
	"typ": "type", "val": "value", "seq": "sequence", "idx": "index",
	"mail": "email",
}

// meaningWords maps words found in a decoded attribute name to the value
// family a sample generator should produce.
var meaningWords = []struct {
	word    string
	meaning string
}{
	{"email", "email"},
	{"phone", "phone"},
	{"zipcode", "zipcode"},
	{"address", "address"},
	{"city", "city"},
	{"country", "country"},
	{"company", "company"},
	{"name", "name"},
	{"title", "title"},
	{"description", "description"},
	{"comment", "description"},
	{"url", "url"},
	{"amount", "price"},
	{"price", "price"},
	{"yesno", "yesno"},
	{"flag", "yesno"},
	{"code", "code"},
}

// AnalyzeMeaning guesses what an attribute holds from its name, expanding
// common abbreviations ("cust_nm" -> "cust name" -> "name"). It returns the
// expanded name when no known meaning is found.
func AnalyzeMeaning(attribute string) string {
	n := strings.ToLower(strings.TrimSpace(attribute))
	parts := strings.FieldsFunc(n, func(r rune) bool { return r == '_' || r == ' ' || r == '-' })

	decoded := make([]string, 0, len(parts))
	for _, part := range parts {
		if full, ok := abbreviations[part]; ok {
			decoded = append(decoded, full)
		} else {
			decoded = append(decoded, part)
		}
	}
	expanded := strings.Join(decoded, " ")

	for _, mw := range meaningWords {
		if strings.Contains(expanded, mw.word) {
			return mw.meaning
		}
	}
	return expanded
}
