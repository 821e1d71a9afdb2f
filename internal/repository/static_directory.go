package repository

import "ifind-attorney/internal/domain/model"

func coord(v float64) *float64 { return &v }

// seedDirectory is the built-in firm directory, keyed by state. It is the
// default data source when no external database is configured. Records here
// are seed data only; the matcher always works on clones.
var seedDirectory = map[string][]model.LawFirm{
	"Lagos": {
		{
			Name:          "Adekunle & Partners Law Firm",
			ContactPerson: "Barr. Folake Adekunle",
			Source:        model.SourceStaticDirectory,
			Location:      "Victoria Island, Lagos",
			Address:       "14 Adeola Odeku Street, Victoria Island",
			Latitude:      coord(6.4281),
			Longitude:     coord(3.4219),
			Phone:         "+234 803 221 4410",
			Email:         "enquiries@adekunlepartners.ng",
			Website:       "https://adekunlepartners.ng",
			PracticeAreas: []string{"Corporate Law", "Mergers & Acquisitions", "Capital Markets"},
			MatchScore:    95,
		},
		{
			Name:          "Lagoon Chambers",
			ContactPerson: "Barr. Emeka Nwosu",
			Source:        model.SourceStaticDirectory,
			Location:      "Lekki Phase 1, Lagos",
			Address:       "5 Admiralty Way, Lekki Phase 1",
			Latitude:      coord(6.4478),
			Longitude:     coord(3.4723),
			Phone:         "+234 805 118 2203",
			Email:         "info@lagoonchambers.com",
			Website:       "https://lagoonchambers.com",
			PracticeAreas: []string{"Corporate Law", "Commercial Litigation"},
			MatchScore:    88,
		},
		{
			Name:          "Eko Advocates LLP",
			ContactPerson: "Barr. Yemi Bankole",
			Source:        model.SourceStaticDirectory,
			Location:      "Ikeja, Lagos",
			Address:       "22 Allen Avenue, Ikeja",
			Latitude:      coord(6.6018),
			Longitude:     coord(3.3515),
			Phone:         "+234 701 456 0098",
			Email:         "contact@ekoadvocates.ng",
			PracticeAreas: []string{"Corporate Law", "Tax Law", "Intellectual Property"},
			MatchScore:    82,
		},
		{
			Name:          "Marina Trust Solicitors",
			ContactPerson: "Barr. Chidinma Okafor",
			Source:        model.SourceStaticDirectory,
			Location:      "Lagos Island, Lagos",
			Address:       "30 Broad Street, Lagos Island",
			Latitude:      coord(6.4541),
			Longitude:     coord(3.3947),
			Phone:         "+234 809 772 5541",
			Email:         "hello@marinatrust.ng",
			Website:       "https://marinatrust.ng",
			PracticeAreas: []string{"Real Estate Law", "Property Law"},
			MatchScore:    78,
		},
		{
			Name:          "Apapa Maritime Chambers",
			ContactPerson: "Barr. Tunde Oshin",
			Source:        model.SourceStaticDirectory,
			Location:      "Apapa, Lagos",
			Address:       "8 Wharf Road, Apapa",
			Latitude:      coord(6.4489),
			Longitude:     coord(3.3589),
			Phone:         "+234 802 664 7781",
			Email:         "counsel@apapamaritime.ng",
			PracticeAreas: []string{"Maritime Law", "Shipping & Admiralty"},
			MatchScore:    80,
		},
		{
			Name:          "Surulere Legal Aid Chambers",
			ContactPerson: "Barr. Ngozi Eze",
			Source:        model.SourceStaticDirectory,
			Location:      "Surulere, Lagos",
			Address:       "112 Adeniran Ogunsanya Street, Surulere",
			Latitude:      coord(6.5005),
			Longitude:     coord(3.3542),
			Phone:         "+234 706 330 1174",
			PracticeAreas: []string{"General Practice", "Family Law"},
			MatchScore:    65,
		},
	},
	"Rivers": {
		{
			Name:          "Port Harcourt Maritime & Commercial Law",
			ContactPerson: "Barr. Ibiere Harry",
			Source:        model.SourceStaticDirectory,
			Location:      "Old GRA, Port Harcourt",
			Address:       "3 Forces Avenue, Old GRA",
			Latitude:      coord(4.7774),
			Longitude:     coord(7.0134),
			Phone:         "+234 803 554 2290",
			Email:         "practice@phmaritimelaw.ng",
			Website:       "https://phmaritimelaw.ng",
			PracticeAreas: []string{"Maritime Law", "Commercial Law"},
			MatchScore:    90,
		},
		{
			Name:          "Bonny Island Admiralty Chambers",
			ContactPerson: "Barr. Dagogo Pepple",
			Source:        model.SourceStaticDirectory,
			Location:      "Bonny, Rivers",
			Address:       "1 Hospital Road, Bonny Island",
			Latitude:      coord(4.4560),
			Longitude:     coord(7.1661),
			Phone:         "+234 805 213 8860",
			Email:         "chambers@bonnyadmiralty.ng",
			PracticeAreas: []string{"Maritime Law", "Oil & Gas Law"},
			MatchScore:    85,
		},
		{
			Name:          "Garden City Solicitors",
			ContactPerson: "Barr. Tamuno Briggs",
			Source:        model.SourceStaticDirectory,
			Location:      "Trans Amadi, Port Harcourt",
			Address:       "45 Trans Amadi Industrial Layout",
			Latitude:      coord(4.8156),
			Longitude:     coord(7.0498),
			Phone:         "+234 809 441 7725",
			Email:         "info@gardencitysolicitors.ng",
			PracticeAreas: []string{"Oil & Gas Law", "Energy Law", "Environmental Law"},
			MatchScore:    83,
		},
		{
			Name:          "Rivers Justice Partners",
			ContactPerson: "Barr. Golden Amadi",
			Source:        model.SourceStaticDirectory,
			Location:      "Diobu, Port Harcourt",
			Address:       "77 Ikwerre Road, Diobu",
			Phone:         "+234 701 980 3312",
			PracticeAreas: []string{"General Practice", "Criminal Law"},
			MatchScore:    60,
		},
	},
	"FCT": {
		{
			Name:          "Unity Chambers Abuja",
			ContactPerson: "Barr. Aisha Mohammed",
			Source:        model.SourceStaticDirectory,
			Location:      "Central Business District, Abuja",
			Address:       "Plot 1024 Shehu Shagari Way",
			Latitude:      coord(9.0579),
			Longitude:     coord(7.4951),
			Phone:         "+234 803 119 6647",
			Email:         "desk@unitychambers.ng",
			Website:       "https://unitychambers.ng",
			PracticeAreas: []string{"Constitutional Law", "Election Petitions"},
			MatchScore:    92,
		},
		{
			Name:          "Three Arms Legal LLP",
			ContactPerson: "Barr. Obinna Duru",
			Source:        model.SourceStaticDirectory,
			Location:      "Maitama, Abuja",
			Address:       "16 Gana Street, Maitama",
			Latitude:      coord(9.0765),
			Longitude:     coord(7.3986),
			Phone:         "+234 805 772 0419",
			Email:         "counsel@threearmslegal.ng",
			PracticeAreas: []string{"Corporate Law", "Public Procurement"},
			MatchScore:    86,
		},
		{
			Name:          "Maitama Crest Attorneys",
			ContactPerson: "Barr. Halima Bello",
			Source:        model.SourceStaticDirectory,
			Location:      "Maitama, Abuja",
			Address:       "4 Aguiyi Ironsi Street, Maitama",
			Latitude:      coord(9.0882),
			Longitude:     coord(7.4934),
			Phone:         "+234 809 233 8854",
			Email:         "firm@maitamacrest.ng",
			PracticeAreas: []string{"Real Estate Law", "Property Law", "Construction Law"},
			MatchScore:    79,
		},
		{
			Name:          "Gwagwalada Community Law Office",
			ContactPerson: "Barr. Musa Adamu",
			Source:        model.SourceStaticDirectory,
			Location:      "Gwagwalada, Abuja",
			Address:       "21 Park Road, Gwagwalada",
			Phone:         "+234 706 515 2208",
			PracticeAreas: []string{"General Practice"},
			MatchScore:    58,
		},
	},
	"Kano": {
		{
			Name:          "Kano Emirate Chambers",
			ContactPerson: "Barr. Sani Gumel",
			Source:        model.SourceStaticDirectory,
			Location:      "Kano Municipal, Kano",
			Address:       "10 Emir's Palace Road",
			Latitude:      coord(12.0022),
			Longitude:     coord(8.5920),
			Phone:         "+234 803 667 4431",
			Email:         "chambers@kanoemirate.ng",
			PracticeAreas: []string{"Islamic Finance Law", "Commercial Law"},
			MatchScore:    84,
		},
		{
			Name:          "Sahel Attorneys",
			ContactPerson: "Barr. Amina Dantata",
			Source:        model.SourceStaticDirectory,
			Location:      "Bompai, Kano",
			Address:       "33 Bompai Road",
			Latitude:      coord(11.9964),
			Longitude:     coord(8.5167),
			Phone:         "+234 805 341 9982",
			Email:         "office@sahelattorneys.ng",
			PracticeAreas: []string{"Trade Law", "Customs & Excise"},
			MatchScore:    76,
		},
		{
			Name:          "Kurmi Market Legal Clinic",
			ContactPerson: "Barr. Ibrahim Yusuf",
			Source:        model.SourceStaticDirectory,
			Location:      "Kurmi Market, Kano",
			Address:       "Stall Row C, Kurmi Market",
			Phone:         "+234 701 228 6634",
			PracticeAreas: []string{"General Practice", "Dispute Resolution"},
			MatchScore:    62,
		},
	},
	"Oyo": {
		{
			Name:          "Ibadan Heritage Solicitors",
			ContactPerson: "Barr. Adebayo Ogunlesi",
			Source:        model.SourceStaticDirectory,
			Location:      "Bodija, Ibadan",
			Address:       "7 Awolowo Avenue, Bodija",
			Latitude:      coord(7.3775),
			Longitude:     coord(3.9470),
			Phone:         "+234 803 880 5512",
			Email:         "solicitors@ibadanheritage.ng",
			PracticeAreas: []string{"Land Law", "Chieftaincy Disputes", "Probate"},
			MatchScore:    81,
		},
		{
			Name:          "Oyo Corporate Counsel",
			ContactPerson: "Barr. Funmilayo Akande",
			Source:        model.SourceStaticDirectory,
			Location:      "Ring Road, Ibadan",
			Address:       "90 Ring Road",
			Latitude:      coord(7.3878),
			Longitude:     coord(3.8964),
			Phone:         "+234 805 904 7763",
			Email:         "mail@oyocorporate.ng",
			PracticeAreas: []string{"Corporate Law", "Employment Law"},
			MatchScore:    74,
		},
		{
			Name:          "Molete Family Law Centre",
			ContactPerson: "Barr. Kehinde Salami",
			Source:        model.SourceStaticDirectory,
			Location:      "Molete, Ibadan",
			Address:       "12 Molete Bridge Road",
			Phone:         "+234 706 119 2240",
			PracticeAreas: []string{"Family Law", "Child Custody"},
			MatchScore:    70,
		},
	},
	"Enugu": {
		{
			Name:          "Coal City Advocates",
			ContactPerson: "Barr. Chukwuemeka Ani",
			Source:        model.SourceStaticDirectory,
			Location:      "Independence Layout, Enugu",
			Address:       "18 Chime Avenue, Independence Layout",
			Latitude:      coord(6.4584),
			Longitude:     coord(7.5464),
			Phone:         "+234 803 445 9921",
			Email:         "advocates@coalcity.ng",
			PracticeAreas: []string{"Commercial Litigation", "Debt Recovery"},
			MatchScore:    80,
		},
		{
			Name:          "Nsukka Rights Chambers",
			ContactPerson: "Barr. Ifeoma Ugwu",
			Source:        model.SourceStaticDirectory,
			Location:      "Nsukka, Enugu",
			Address:       "5 University Road, Nsukka",
			Latitude:      coord(6.8567),
			Longitude:     coord(7.3958),
			Phone:         "+234 805 667 1183",
			Email:         "rights@nsukkachambers.ng",
			PracticeAreas: []string{"Human Rights Law", "Criminal Law"},
			MatchScore:    72,
		},
		{
			Name:          "Enugu General Law Office",
			ContactPerson: "Barr. Kelechi Nnamani",
			Source:        model.SourceStaticDirectory,
			Location:      "Ogui, Enugu",
			Address:       "41 Ogui Road",
			Phone:         "+234 701 334 8810",
			PracticeAreas: []string{"General Practice"},
			MatchScore:    60,
		},
	},
	"Kwara": {
		{
			Name:          "Ilorin Central Chambers",
			ContactPerson: "Barr. Abdulrahman Saka",
			Source:        model.SourceStaticDirectory,
			Location:      "Ilorin, Kwara",
			Address:       "2 Taiwo Road, Ilorin",
			Latitude:      coord(8.4966),
			Longitude:     coord(4.5421),
			Phone:         "+234 803 221 7760",
			Email:         "central@ilorinchambers.ng",
			PracticeAreas: []string{"Family Law", "Islamic Personal Law"},
			MatchScore:    75,
		},
		{
			Name:          "Harmony Attorneys",
			ContactPerson: "Barr. Bukola Olawoyin",
			Source:        model.SourceStaticDirectory,
			Location:      "Ilorin, Kwara",
			Address:       "15 Unity Road, Ilorin",
			Latitude:      coord(8.4799),
			Longitude:     coord(4.5418),
			Phone:         "+234 805 448 3397",
			PracticeAreas: []string{"Real Estate Law", "Agricultural Law"},
			MatchScore:    68,
		},
	},
	"Anambra": {
		{
			Name:          "Onitsha Commerce Chambers",
			ContactPerson: "Barr. Nnamdi Okeke",
			Source:        model.SourceStaticDirectory,
			Location:      "Onitsha, Anambra",
			Address:       "60 New Market Road, Onitsha",
			Latitude:      coord(6.1667),
			Longitude:     coord(6.7833),
			Phone:         "+234 803 992 1145",
			Email:         "commerce@onitshachambers.ng",
			PracticeAreas: []string{"Commercial Law", "Trade Law"},
			MatchScore:    77,
		},
		{
			Name:          "Awka Probate & Estates",
			ContactPerson: "Barr. Adaeze Obi",
			Source:        model.SourceStaticDirectory,
			Location:      "Awka, Anambra",
			Address:       "9 Zik Avenue, Awka",
			Latitude:      coord(6.2104),
			Longitude:     coord(7.0741),
			Phone:         "+234 805 773 2096",
			PracticeAreas: []string{"Probate", "Estate Planning"},
			MatchScore:    66,
		},
	},
	"Kaduna": {
		{
			Name:          "Kaduna Industrial Counsel",
			ContactPerson: "Barr. Garba Aliyu",
			Source:        model.SourceStaticDirectory,
			Location:      "Kaduna North, Kaduna",
			Address:       "25 Ahmadu Bello Way",
			Latitude:      coord(10.5105),
			Longitude:     coord(7.4165),
			Phone:         "+234 803 556 8830",
			Email:         "counsel@kadunaindustrial.ng",
			PracticeAreas: []string{"Employment Law", "Industrial Relations"},
			MatchScore:    73,
		},
		{
			Name:          "Zaria Academy Law Firm",
			ContactPerson: "Barr. Fatima Shehu",
			Source:        model.SourceStaticDirectory,
			Location:      "Zaria, Kaduna",
			Address:       "3 Sokoto Road, Zaria",
			Latitude:      coord(11.0855),
			Longitude:     coord(7.7199),
			Phone:         "+234 805 119 4462",
			PracticeAreas: []string{"Education Law", "General Practice"},
			MatchScore:    64,
		},
	},
	"Delta": {
		{
			Name:          "Warri Energy Law Group",
			ContactPerson: "Barr. Efe Akpofure",
			Source:        model.SourceStaticDirectory,
			Location:      "Warri, Delta",
			Address:       "11 Airport Road, Warri",
			Latitude:      coord(5.5167),
			Longitude:     coord(5.7500),
			Phone:         "+234 803 667 2215",
			Email:         "group@warrienergylaw.ng",
			PracticeAreas: []string{"Oil & Gas Law", "Energy Law"},
			MatchScore:    82,
		},
		{
			Name:          "Asaba Riverside Solicitors",
			ContactPerson: "Barr. Ogochukwu Mordi",
			Source:        model.SourceStaticDirectory,
			Location:      "Asaba, Delta",
			Address:       "48 Nnebisi Road, Asaba",
			Latitude:      coord(6.1985),
			Longitude:     coord(6.6959),
			Phone:         "+234 805 221 9084",
			PracticeAreas: []string{"General Practice", "Land Law"},
			MatchScore:    63,
		},
	},
	"Edo": {
		{
			Name:          "Benin Royal Chambers",
			ContactPerson: "Barr. Osaze Igbinedion",
			Source:        model.SourceStaticDirectory,
			Location:      "Benin City, Edo",
			Address:       "6 Sapele Road, Benin City",
			Latitude:      coord(6.3350),
			Longitude:     coord(5.6037),
			Phone:         "+234 803 774 1106",
			Email:         "royal@beninchambers.ng",
			PracticeAreas: []string{"Land Law", "Cultural Heritage Law"},
			MatchScore:    71,
		},
	},
	"Ogun": {
		{
			Name:          "Abeokuta Rock Solicitors",
			ContactPerson: "Barr. Olumide Soyinka",
			Source:        model.SourceStaticDirectory,
			Location:      "Abeokuta, Ogun",
			Address:       "19 Lalubu Street, Oke-Ilewo",
			Latitude:      coord(7.1475),
			Longitude:     coord(3.3619),
			Phone:         "+234 805 990 3321",
			PracticeAreas: []string{"General Practice", "Real Estate Law"},
			MatchScore:    67,
		},
	},
}
