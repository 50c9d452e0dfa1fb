package report

import (
	"time"

	"github.com/verte-zerg/sholat/internal/hijri"
	"github.com/verte-zerg/sholat/internal/model"
)

// NextMarker flags the upcoming prayer in the today table.
const NextMarker = "◀ next"

// Today lays out the day's entries, marking the one at index next.
func Today(entries []model.Prayer, next int) []string {
	t := NewTable(Column{}, Column{}, Column{Align: AlignRight}, Column{})
	for i, p := range entries {
		marker := ""
		if i == next {
			marker = NextMarker
		}
		t.Row(p.Icon, p.Name, p.Time, marker)
	}
	return t.Lines()
}

// History lays out archived days, oldest first.
func History(days []model.ArchivedDay, loc *time.Location) []string {
	t := NewTable(
		Column{Header: "Fetched"},
		Column{Header: "City"},
		Column{Header: "Date"},
		Column{Header: "Hijri"},
		Column{Header: "Imsak", Align: AlignRight},
		Column{Header: "Isya", Align: AlignRight},
	)
	for _, d := range days {
		t.Row(
			d.FetchedAt.In(loc).Format("2006-01-02 15:04"),
			d.City,
			d.Day.Date.Readable,
			hijri.Format(d.Day.Date.Hijri),
			d.Day.Timings.Imsak,
			d.Day.Timings.Isha,
		)
	}
	return t.Lines()
}
