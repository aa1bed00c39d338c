package handler

// GenreChoices is the fixed list of genres offered by the venue and
// artist forms. Submitted genres are validated against this list, which
// also guarantees genre names never contain the comma the storage
// encoding reserves.
var GenreChoices = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// StateChoices is the fixed list of US state codes offered by the forms.
var StateChoices = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN",
	"MS", "MO", "MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

// validGenres reports whether every submitted genre is on the choice
// list. An empty submission is allowed; the caller decides whether the
// field is required.
func validGenres(genres []string) bool {
	for _, g := range genres {
		found := false
		for _, choice := range GenreChoices {
			if g == choice {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
