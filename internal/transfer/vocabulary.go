package transfer

import "sort"

// Busia county sub-counties offered on the request form.
var SubCounties = []string{
	"Bunyala", "Butula", "Matayos", "Nambale", "Samia",
	"Teso Central", "Teso North", "Teso South",
}

// Teaching subjects offered on the request form.
var Subjects = []string{
	"Agriculture", "Art and Design", "Biology", "Braile", "Business Studies",
	"Chemistry", "Christian Religious Education (CRE)", "Computer Studies",
	"English", "French", "Geography", "German", "Hindu Religious Education (HRE)",
	"History and Government", "Home Science", "Islamic Religious Education (IRE)",
	"Kiswahili", "Life Skills", "Mathematics", "Music", "Physical Education",
	"Physics", "Sign Language",
}

func contains(sorted []string, v string) bool {
	i := sort.SearchStrings(sorted, v)
	return i < len(sorted) && sorted[i] == v
}

// IsSubCounty reports whether v is one of the known sub-counties.
func IsSubCounty(v string) bool { return contains(SubCounties, v) }

// IsSubject reports whether v is one of the known teaching subjects.
func IsSubject(v string) bool { return contains(Subjects, v) }
