package schema

import "schemagen/internal/models"

// Default window applied when an entry carries a day but no times.
const (
	defaultOpens  = "09:00"
	defaultCloses = "17:00"
)

// makeOpeningHours consolidates raw (day, opens, closes) entries into
// OpeningHoursSpecification objects: days sharing an identical window are
// grouped into one entry, with dayOfWeek a scalar for a single day and a
// list otherwise. The pair 00:00/23:59 is normalized to 00:00/24:00,
// schema.org's convention for true 24-hour availability. Entries without
// a day are skipped.
func makeOpeningHours(entries []models.OpeningHours) []any {
	type window struct {
		opens  string
		closes string
	}

	var order []window

	grouped := map[window][]string{}

	for _, e := range entries {
		if e.Day == "" {
			continue
		}

		w := window{
			opens:  orElse(e.Opens, defaultOpens),
			closes: orElse(e.Closes, defaultCloses),
		}
		if w.opens == "00:00" && w.closes == "23:59" {
			w.closes = "24:00"
		}

		if _, seen := grouped[w]; !seen {
			order = append(order, w)
		}

		grouped[w] = append(grouped[w], e.Day)
	}

	var specs []any

	for _, w := range order {
		spec := Doc{
			"@type":  "OpeningHoursSpecification",
			"opens":  w.opens,
			"closes": w.closes,
		}

		days := grouped[w]
		if len(days) == 1 {
			spec["dayOfWeek"] = days[0]
		} else {
			spec["dayOfWeek"] = days
		}

		specs = append(specs, spec)
	}

	return specs
}
