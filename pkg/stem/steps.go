package stem

// step1ab gets rid of plurals and -ed or -ing:
//
//	caresses  ->  caress
//	ponies    ->  poni
//	ties      ->  ti
//	caress    ->  caress
//	cats      ->  cat
//
//	feed      ->  feed
//	agreed    ->  agree
//	disabled  ->  disable
//
//	matting   ->  mat
//	mating    ->  mate
//	meeting   ->  meet
//	milling   ->  mill
//	messing   ->  mess
//
//	meetings  ->  meet
func (w *word) step1ab() {
	if w.last() == 's' {
		if j, ok := w.ends("sses"); ok {
			w.setTo(j, "ss")
		} else if j, ok := w.ends("ies"); ok {
			w.setTo(j, "i")
		} else if w.b[len(w.b)-2] != 's' {
			w.b = w.b[:len(w.b)-1]
		}
	}

	if j, ok := w.ends("eed"); ok {
		if w.measure(j) > 0 {
			w.b = w.b[:len(w.b)-1]
		}
		return
	}

	j, ok := w.ends("ed")
	if !ok {
		j, ok = w.ends("ing")
	}
	if !ok || !w.hasVowel(j) {
		return
	}
	w.b = w.b[:j]

	if j, ok := w.ends("at"); ok {
		w.setTo(j, "ate")
	} else if j, ok := w.ends("bl"); ok {
		w.setTo(j, "ble")
	} else if j, ok := w.ends("iz"); ok {
		w.setTo(j, "ize")
	} else if n := len(w.b); w.doubleConsonant(n - 1) {
		switch w.b[n-1] {
		case 'l', 's', 'z':
		default:
			w.b = w.b[:n-1]
		}
	} else if w.measure(n) == 1 && w.cvc(n-1) {
		w.setTo(n, "e")
	}
}

// step1c turns a terminal y into i when there is another vowel in the stem.
func (w *word) step1c() {
	if j, ok := w.ends("y"); ok && w.hasVowel(j) {
		w.b[j] = 'i'
	}
}

// step2Rules maps double suffixes to single ones, keyed on the penultimate
// letter. -bli and -logi are deliberate departures from the published
// algorithm (which has -abli and no -logi).
var step2Rules = map[byte][]rule{
	'a': {{"ational", "ate"}, {"tional", "tion"}},
	'c': {{"enci", "ence"}, {"anci", "ance"}},
	'e': {{"izer", "ize"}},
	'l': {{"bli", "ble"}, {"alli", "al"}, {"entli", "ent"}, {"eli", "e"}, {"ousli", "ous"}},
	'o': {{"ization", "ize"}, {"ation", "ate"}, {"ator", "ate"}},
	's': {{"alism", "al"}, {"iveness", "ive"}, {"fulness", "ful"}, {"ousness", "ous"}},
	't': {{"aliti", "al"}, {"iviti", "ive"}, {"biliti", "ble"}},
	'g': {{"logi", "log"}},
}

func (w *word) step2() {
	if len(w.b) < 2 {
		return
	}
	w.replaceFirst(step2Rules[w.b[len(w.b)-2]])
}

// step3Rules deal with -ic-, -full, -ness etc., keyed on the last letter.
var step3Rules = map[byte][]rule{
	'e': {{"icate", "ic"}, {"ative", ""}, {"alize", "al"}},
	'i': {{"iciti", "ic"}},
	'l': {{"ical", "ic"}, {"ful", ""}},
	's': {{"ness", ""}},
}

func (w *word) step3() {
	w.replaceFirst(step3Rules[w.last()])
}

var step4Suffixes = map[byte][]string{
	'a': {"al"},
	'c': {"ance", "ence"},
	'e': {"er"},
	'i': {"ic"},
	'l': {"able", "ible"},
	'n': {"ant", "ement", "ment", "ent"},
	'o': {"ion", "ou"},
	's': {"ism"},
	't': {"ate", "iti"},
	'u': {"ous"},
	'v': {"ive"},
	'z': {"ize"},
}

// step4 takes off -ant, -ence etc. in context <c>vcvc<v>.
func (w *word) step4() {
	if len(w.b) < 2 {
		return
	}
	for _, suffix := range step4Suffixes[w.b[len(w.b)-2]] {
		j, ok := w.ends(suffix)
		if !ok {
			continue
		}
		if suffix == "ion" && (j == 0 || (w.b[j-1] != 's' && w.b[j-1] != 't')) {
			return
		}
		if w.measure(j) > 1 {
			w.b = w.b[:j]
		}
		return
	}
}

// step5 removes a final -e if the measure is above 1 (or exactly 1 and the
// stem is not *o), and changes -ll to -l if the measure is above 1.
func (w *word) step5() {
	m := w.measure(len(w.b))
	if n := len(w.b); w.b[n-1] == 'e' {
		if m > 1 || m == 1 && !w.cvc(n-2) {
			w.b = w.b[:n-1]
		}
	}
	if n := len(w.b); w.b[n-1] == 'l' && w.doubleConsonant(n-1) && m > 1 {
		w.b = w.b[:n-1]
	}
}
