// Package hijri formats lunar calendar dates for display.
package hijri

import (
	"fmt"

	"github.com/verte-zerg/sholat/internal/model"
)

// EraSuffix follows the year in formatted dates.
const EraSuffix = "H"

var monthsID = map[string]string{
	"Muḥarram":           "Muharram",
	"Ṣafar":              "Safar",
	"Rabīʿ al-awwal":     "Rabi'ul Awal",
	"Rabīʿ al-thānī":     "Rabi'ul Akhir",
	"Jumādá al-ūlá":      "Jumadil Awal",
	"Jumādá al-thāniyah": "Jumadil Akhir",
	"Rajab":              "Rajab",
	"Shaʿbān":            "Sya'ban",
	"Ramaḍān":            "Ramadhan",
	"Shawwāl":            "Syawal",
	"Dhū al-Qaʿdah":      "Dzulqa'dah",
	"Dhū al-Ḥijjah":      "Dzulhijjah",
}

// MonthName returns the Indonesian spelling of a transliterated month name.
// Unknown names are returned unchanged.
func MonthName(en string) string {
	if id, ok := monthsID[en]; ok {
		return id
	}
	return en
}

// Format renders a Hijri date as "<day> <month> <year> H".
func Format(d model.HijriDate) string {
	return fmt.Sprintf("%s %s %s %s", d.Day, MonthName(d.Month.En), d.Year, EraSuffix)
}
