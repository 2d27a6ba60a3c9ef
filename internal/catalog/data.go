package catalog

import "github.com/edutena/pathways/internal/domain"

// careerTables is curated reference data, ranked by market demand.
// The first three entries per pathway match the original shortlist
// sent over SMS; the rest extend it to a ten-item catalog.
var careerTables = map[domain.Pathway][]domain.CareerRecord{
	domain.PathwaySTEM: {
		{
			Name:         "Engineering",
			Demand:       "Very High",
			Trend:        "Infrastructure and energy projects are expanding across the region",
			FocusAreas:   []string{"Mathematics", "Physics", "Technical Studies"},
			Institutions: []string{"University of Nairobi", "JKUAT", "Technical University of Kenya"},
			Entry:        "KCSE mean grade B- with strong Mathematics and Physics",
		},
		{
			Name:         "Data Science",
			Demand:       "Very High",
			Trend:        "Every sector is hiring analysts faster than universities graduate them",
			FocusAreas:   []string{"Mathematics", "Computer Studies", "Statistics"},
			Institutions: []string{"Strathmore University", "University of Nairobi", "Moringa School"},
			Entry:        "KCSE mean grade B- with B in Mathematics",
		},
		{
			Name:         "Medicine",
			Demand:       "High",
			Trend:        "Chronic shortage of clinicians in county hospitals",
			FocusAreas:   []string{"Biology", "Chemistry", "Mathematics"},
			Institutions: []string{"University of Nairobi", "Moi University", "Kenyatta University"},
			Entry:        "KCSE mean grade A- with A- in Biology and Chemistry",
		},
		{
			Name:         "Software Development",
			Demand:       "Very High",
			Trend:        "Remote work has opened global roles to local developers",
			FocusAreas:   []string{"Computer Studies", "Mathematics"},
			Institutions: []string{"Strathmore University", "Moringa School", "eMobilis"},
			Entry:        "KCSE mean grade C+ or a recognized bootcamp certificate",
		},
		{
			Name:         "Nursing",
			Demand:       "High",
			Trend:        "International recruitment programs are absorbing qualified nurses",
			FocusAreas:   []string{"Biology", "Chemistry"},
			Institutions: []string{"KMTC", "Aga Khan University", "Kenyatta University"},
			Entry:        "KCSE mean grade C with C in Biology",
		},
		{
			Name:         "Agricultural Science",
			Demand:       "High",
			Trend:        "Climate-smart farming is creating new agronomy roles",
			FocusAreas:   []string{"Biology", "Chemistry", "Agriculture"},
			Institutions: []string{"Egerton University", "JKUAT", "University of Eldoret"},
			Entry:        "KCSE mean grade C+ with C+ in Biology or Agriculture",
		},
		{
			Name:         "Pharmacy",
			Demand:       "Medium",
			Trend:        "Steady demand in retail and hospital practice",
			FocusAreas:   []string{"Chemistry", "Biology", "Mathematics"},
			Institutions: []string{"University of Nairobi", "Mount Kenya University", "KMTC"},
			Entry:        "KCSE mean grade B with B in Chemistry",
		},
		{
			Name:         "Electrical Technology",
			Demand:       "High",
			Trend:        "Rural electrification and solar installations keep technicians busy",
			FocusAreas:   []string{"Physics", "Technical Studies", "Mathematics"},
			Institutions: []string{"Technical University of Kenya", "Kabete National Polytechnic"},
			Entry:        "KCSE mean grade C- or craft certificate for artisan entry",
		},
		{
			Name:         "Actuarial Science",
			Demand:       "Medium",
			Trend:        "Insurance growth is steady but entry is competitive",
			FocusAreas:   []string{"Mathematics", "Statistics", "Economics"},
			Institutions: []string{"University of Nairobi", "Strathmore University"},
			Entry:        "KCSE mean grade B+ with A- in Mathematics",
		},
		{
			Name:         "Aviation Technology",
			Demand:       "Medium",
			Trend:        "Regional carriers are rebuilding maintenance capacity",
			FocusAreas:   []string{"Physics", "Mathematics", "Technical Studies"},
			Institutions: []string{"Kenya Aeronautical College", "Technical University of Kenya"},
			Entry:        "KCSE mean grade C+ with C+ in Physics and Mathematics",
		},
	},
	domain.PathwaySocialSciences: {
		{
			Name:         "Law",
			Demand:       "High",
			Trend:        "Devolved government and compliance work keep demand steady",
			FocusAreas:   []string{"English", "History", "Social Studies"},
			Institutions: []string{"University of Nairobi", "Strathmore University", "Kenya School of Law"},
			Entry:        "KCSE mean grade B with B in English or Kiswahili",
		},
		{
			Name:         "Psychology",
			Demand:       "High",
			Trend:        "Mental-health services are expanding in schools and counties",
			FocusAreas:   []string{"Biology", "Social Studies", "Religious Education"},
			Institutions: []string{"USIU-Africa", "Kenyatta University", "Daystar University"},
			Entry:        "KCSE mean grade C+",
		},
		{
			Name:         "Economics",
			Demand:       "High",
			Trend:        "Policy analysis and fintech roles are growing",
			FocusAreas:   []string{"Mathematics", "Social Studies", "Business Studies"},
			Institutions: []string{"University of Nairobi", "Strathmore University", "Kenyatta University"},
			Entry:        "KCSE mean grade B- with B- in Mathematics",
		},
		{
			Name:         "Education",
			Demand:       "High",
			Trend:        "CBC rollout needs trained teachers at every level",
			FocusAreas:   []string{"English", "Social Studies"},
			Institutions: []string{"Kenyatta University", "Moi University", "Teacher Training Colleges"},
			Entry:        "KCSE mean grade C+ with C+ in teaching subjects",
		},
		{
			Name:         "Journalism & Media",
			Demand:       "Medium",
			Trend:        "Digital platforms are replacing legacy newsroom jobs",
			FocusAreas:   []string{"English", "Literature", "Social Studies"},
			Institutions: []string{"University of Nairobi", "Daystar University", "KIMC"},
			Entry:        "KCSE mean grade C+ with B- in English",
		},
		{
			Name:         "Social Work",
			Demand:       "High",
			Trend:        "NGOs and county programs hire community officers continuously",
			FocusAreas:   []string{"Social Studies", "Religious Education"},
			Institutions: []string{"University of Nairobi", "Catholic University of Eastern Africa"},
			Entry:        "KCSE mean grade C",
		},
		{
			Name:         "International Relations",
			Demand:       "Medium",
			Trend:        "Nairobi's diplomatic hub status sustains a niche market",
			FocusAreas:   []string{"History", "English", "Foreign Languages"},
			Institutions: []string{"USIU-Africa", "University of Nairobi"},
			Entry:        "KCSE mean grade B-",
		},
		{
			Name:         "Human Resource Management",
			Demand:       "Medium",
			Trend:        "Professionalization of HR is raising certification demand",
			FocusAreas:   []string{"Business Studies", "English"},
			Institutions: []string{"Kenyatta University", "KCA University", "IHRM"},
			Entry:        "KCSE mean grade C+",
		},
		{
			Name:         "Public Administration",
			Demand:       "Medium",
			Trend:        "County governments absorb most graduates",
			FocusAreas:   []string{"Social Studies", "Business Studies"},
			Institutions: []string{"Kenyatta University", "Maseno University"},
			Entry:        "KCSE mean grade C+",
		},
		{
			Name:         "Criminology",
			Demand:       "Medium",
			Trend:        "Security and forensics units are slowly professionalizing",
			FocusAreas:   []string{"Social Studies", "Biology"},
			Institutions: []string{"Egerton University", "Dedan Kimathi University"},
			Entry:        "KCSE mean grade C+",
		},
	},
	domain.PathwayArtsAndSports: {
		{
			Name:         "Design",
			Demand:       "High",
			Trend:        "Brands are investing heavily in digital and product design",
			FocusAreas:   []string{"Creative Arts", "Computer Studies"},
			Institutions: []string{"University of Nairobi", "Buruburu Institute of Fine Arts", "ADMI"},
			Entry:        "KCSE mean grade C with a portfolio",
		},
		{
			Name:         "Music",
			Demand:       "Medium",
			Trend:        "Streaming royalties and live events are rebuilding the industry",
			FocusAreas:   []string{"Music", "Creative Arts"},
			Institutions: []string{"Kenyatta University", "Sauti Academy", "Kenya Conservatoire"},
			Entry:        "Audition plus KCSE certificate",
		},
		{
			Name:         "Sports",
			Demand:       "High",
			Trend:        "Professional leagues and sports science roles are expanding",
			FocusAreas:   []string{"Physical Education", "Biology"},
			Institutions: []string{"Kenyatta University", "Moi University"},
			Entry:        "Team selection plus KCSE certificate",
		},
		{
			Name:         "Film & Animation",
			Demand:       "High",
			Trend:        "Local content quotas are funding new productions",
			FocusAreas:   []string{"Creative Arts", "Literature", "Computer Studies"},
			Institutions: []string{"ADMI", "KIMC", "Multimedia University"},
			Entry:        "KCSE mean grade C- with a showreel",
		},
		{
			Name:         "Fashion & Apparel",
			Demand:       "Medium",
			Trend:        "Export processing and local fashion weeks lift demand",
			FocusAreas:   []string{"Creative Arts", "Business Studies"},
			Institutions: []string{"Kenyatta University", "Buruburu Institute of Fine Arts"},
			Entry:        "KCSE mean grade C- with a portfolio",
		},
		{
			Name:         "Photography",
			Demand:       "Medium",
			Trend:        "Events and commercial work sustain freelancers",
			FocusAreas:   []string{"Creative Arts", "Computer Studies"},
			Institutions: []string{"ADMI", "KIMC"},
			Entry:        "Certificate course plus portfolio",
		},
		{
			Name:         "Theatre & Performance",
			Demand:       "Medium",
			Trend:        "Stage and screen casting is concentrated but growing",
			FocusAreas:   []string{"Literature", "Creative Arts", "Music"},
			Institutions: []string{"Kenya National Theatre", "Kenyatta University"},
			Entry:        "Audition plus KCSE certificate",
		},
		{
			Name:         "Sports Coaching",
			Demand:       "Medium",
			Trend:        "Academies and school programs need certified coaches",
			FocusAreas:   []string{"Physical Education", "Biology"},
			Institutions: []string{"Kenyatta University", "Kenya Academy of Sports"},
			Entry:        "Federation coaching badge plus KCSE certificate",
		},
		{
			Name:         "Creative Writing",
			Demand:       "Low",
			Trend:        "Publishing is thin but content marketing absorbs writers",
			FocusAreas:   []string{"Literature", "English"},
			Institutions: []string{"University of Nairobi", "Kenyatta University"},
			Entry:        "KCSE mean grade C with B in English",
		},
		{
			Name:         "Physiotherapy",
			Demand:       "Medium",
			Trend:        "Sports medicine and rehabilitation clinics are opening countrywide",
			FocusAreas:   []string{"Biology", "Physical Education"},
			Institutions: []string{"KMTC", "Jomo Kenyatta University"},
			Entry:        "KCSE mean grade C+ with C+ in Biology",
		},
	},
}
