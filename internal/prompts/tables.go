package prompts

// The language menu itself is always shown in all four languages so a
// first-time user can pick before any language is known.
const langMenu = "Karibu Edutena CBE.\nChoose language / Chagua lugha:\n1. English\n2. Kiswahili\n3. Luhya\n4. Kikuyu"

var english = map[Key]string{
	KeyLangSelect:  langMenu,
	KeyLevelSelect: "Select level:\n1. JSS\n2. Senior",
	KeyJSSGrade:    "Select grade:\n1. Grade 7\n2. Grade 8\n3. Grade 9",
	KeySeniorGrade: "Select grade:\n1. Grade 10\n2. Grade 11\n3. Grade 12",
	KeyTerm:        "Select term:\n1. Term 1\n2. Term 2\n3. Term 3",

	KeyRateMath:     "Rate Mathematics:\n1. Exceeding\n2. Meeting\n3. Approaching\n4. Below",
	KeyRateScience:  "Rate Science:\n1. Exceeding\n2. Meeting\n3. Approaching\n4. Below",
	KeyRateSocial:   "Rate Social Studies:\n1. Exceeding\n2. Meeting\n3. Approaching\n4. Below",
	KeyRateCreative: "Rate Creative Arts:\n1. Exceeding\n2. Meeting\n3. Approaching\n4. Below",
	KeyRateTech:     "Rate Technical Skills:\n1. Exceeding\n2. Meeting\n3. Approaching\n4. Below",

	KeyPathwaySelect: "Choose your pathway:\n1. STEM\n2. Social Sciences\n3. Arts & Sports Science",

	KeyCareerList:        "Top careers in %s:\n%s",
	KeyCareerFooterShort: "Reply with a number to choose, or MORE for the full list.",
	KeyCareerFooterFull:  "Reply with a number to choose.",
	KeyCareerChosen:      "You chose %s.\nDemand: %s\nTrend: %s\nEntry: %s",
	KeyPathwayResult:     "Recommended Pathway:\n%s\nReply CAREERS to see careers",
	KeyFeedbackFocus:     "Assessment complete. Focus on improving: %s.\nKeep practising and retake the assessment next term.",
	KeyFeedbackStrong:    "Assessment complete. Great work across all subjects!\nKeep it up and retake the assessment next term.",

	KeyDoneReminder:     "Assessment complete. Reply CAREERS to see careers or START to begin again.",
	KeyInvalidPrefix:    "Invalid input. ",
	KeyApology:          "Sorry, something went wrong. Reply START to begin again.",
	KeyCompleteFirst:    "Please complete the assessment first. Reply START to begin.",
	KeyPausedHint:       "\n(Reply RESUME to continue your assessment)",
	KeyAssistantOffline: "I cannot answer questions right now.",

	KeySubjectMath:      "Mathematics",
	KeySubjectScience:   "Science",
	KeySubjectSocial:    "Social Studies",
	KeySubjectCreative:  "Creative Arts",
	KeySubjectTechnical: "Technical Skills",
}

var kiswahili = map[Key]string{
	KeyLangSelect:  langMenu,
	KeyLevelSelect: "Chagua kiwango:\n1. JSS\n2. Senior",
	KeyJSSGrade:    "Chagua darasa:\n1. Gredi 7\n2. Gredi 8\n3. Gredi 9",
	KeySeniorGrade: "Chagua darasa:\n1. Gredi 10\n2. Gredi 11\n3. Gredi 12",
	KeyTerm:        "Chagua muhula:\n1. Muhula 1\n2. Muhula 2\n3. Muhula 3",

	KeyRateMath:     "Kadiria Hisabati:\n1. Unazidi\n2. Unafikia\n3. Unakaribia\n4. Chini",
	KeyRateScience:  "Kadiria Sayansi:\n1. Unazidi\n2. Unafikia\n3. Unakaribia\n4. Chini",
	KeyRateSocial:   "Kadiria Maarifa ya Jamii:\n1. Unazidi\n2. Unafikia\n3. Unakaribia\n4. Chini",
	KeyRateCreative: "Kadiria Sanaa za Ubunifu:\n1. Unazidi\n2. Unafikia\n3. Unakaribia\n4. Chini",
	KeyRateTech:     "Kadiria Stadi za Ufundi:\n1. Unazidi\n2. Unafikia\n3. Unakaribia\n4. Chini",

	KeyPathwaySelect: "Chagua njia yako:\n1. STEM\n2. Sayansi za Jamii\n3. Sanaa na Michezo",

	KeyCareerList:        "Kazi bora katika %s:\n%s",
	KeyCareerFooterShort: "Jibu kwa nambari kuchagua, au MORE kuona orodha kamili.",
	KeyCareerFooterFull:  "Jibu kwa nambari kuchagua.",
	KeyCareerChosen:      "Umechagua %s.\nMahitaji: %s\nMwelekeo: %s\nVigezo: %s",
	KeyPathwayResult:     "Njia inayopendekezwa:\n%s\nJibu CAREERS kuona kazi",
	KeyFeedbackFocus:     "Tathmini imekamilika. Zingatia kuboresha: %s.\nEndelea kujifunza na urudie tathmini muhula ujao.",
	KeyFeedbackStrong:    "Tathmini imekamilika. Hongera kwa masomo yote!\nEndelea hivyo na urudie tathmini muhula ujao.",

	KeyDoneReminder:     "Tathmini imekamilika. Jibu CAREERS kuona kazi au START kuanza upya.",
	KeyInvalidPrefix:    "Jibu si sahihi. ",
	KeyApology:          "Samahani, hitilafu imetokea. Jibu START kuanza upya.",
	KeyCompleteFirst:    "Tafadhali kamilisha tathmini kwanza. Jibu START kuanza.",
	KeyPausedHint:       "\n(Jibu RESUME kuendelea na tathmini yako)",
	KeyAssistantOffline: "Siwezi kujibu maswali kwa sasa.",

	KeySubjectMath:      "Hisabati",
	KeySubjectScience:   "Sayansi",
	KeySubjectSocial:    "Maarifa ya Jamii",
	KeySubjectCreative:  "Sanaa za Ubunifu",
	KeySubjectTechnical: "Stadi za Ufundi",
}

// The Luhya and Kikuyu tables cover the high-traffic menu prompts;
// missing keys fall back to English in the resolver.
var luhya = map[Key]string{
	KeyLangSelect:    langMenu,
	KeyLevelSelect:   "Lobola eshichelo:\n1. JSS\n2. Senior",
	KeyJSSGrade:      "Lobola likilasi:\n1. Gredi 7\n2. Gredi 8\n3. Gredi 9",
	KeySeniorGrade:   "Lobola likilasi:\n1. Gredi 10\n2. Gredi 11\n3. Gredi 12",
	KeyTerm:          "Lobola omuhula:\n1. Omuhula 1\n2. Omuhula 2\n3. Omuhula 3",
	KeyInvalidPrefix: "Eshirio shibeyo. ",
}

var kikuyu = map[Key]string{
	KeyLangSelect:    langMenu,
	KeyLevelSelect:   "Thuura kiwango:\n1. JSS\n2. Senior",
	KeyJSSGrade:      "Thuura kirathi:\n1. Gredi 7\n2. Gredi 8\n3. Gredi 9",
	KeySeniorGrade:   "Thuura kirathi:\n1. Gredi 10\n2. Gredi 11\n3. Gredi 12",
	KeyTerm:          "Thuura muhula:\n1. Muhula 1\n2. Muhula 2\n3. Muhula 3",
	KeyInvalidPrefix: "Macokio matiagiriire. ",
}
