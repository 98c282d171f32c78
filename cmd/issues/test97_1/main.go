package main

import (
	"fmt"
	"log"

	ics "github.com/arran4/golang-icalcore"
)

func main() {
	cal := ics.NewCalendarFor("Mozilla.org/NONSGML Mozilla Calendar V1.1")
	tz := cal.AddTimezone("Europe/Berlin")
	info, _ := ics.NewXProperty("X-TZINFO", "Europe/Berlin[2024a]")
	_, _ = tz.AddProperty(info)
	std, err := tz.AddStandard(ics.NewDateTime(1893, 4, 1, 0, 0, 0, nil), "+005328", "+010000")
	if err != nil {
		log.Fatal(err)
	}
	_, _ = std.AppendProperty(ics.PropertyTzname, "Europe/Berlin(STD)")

	berlin, err := ics.LoadTimeZone("Europe/Berlin")
	if err != nil {
		log.Fatal(err)
	}
	e := cal.AddEvent("d23cef0d-9e58-43c4-9391-5ad8483ca346")
	_, _ = e.SetProperty(ics.PropertyCreated, ics.NewDateTime(2024, 9, 29, 12, 6, 40, ics.UTC()))
	_, _ = e.SetProperty(ics.PropertyLastModified, ics.NewDateTime(2024, 9, 29, 12, 7, 31, ics.UTC()))
	_, _ = e.SetProperty(ics.PropertyDtstamp, ics.NewDateTime(2024, 9, 29, 12, 7, 31, ics.UTC()))
	_ = e.SetSummary("Test Event")
	_ = e.SetStart(ics.NewDateTime(2024, 9, 29, 14, 45, 0, berlin))
	_ = e.SetEnd(ics.NewDateTime(2024, 9, 29, 15, 45, 0, berlin))
	_, _ = e.SetProperty(ics.PropertyTransp, string(ics.TimeTransparencyOpaque))
	_ = e.SetLocation("Github")

	altrep, err := ics.NewParameter(ics.ParameterAltrep, "data:text/html,I%20want%20a%20custom%20linkout%20for%20Thunderbird.%3Cbr%3EThis%20is%20the%20Github%20%3Ca%20href%3D%22https%3A%2F%2Fgithub.com%2Farran4%2Fgolang-ical%2Fissues%2F97%22%3EIssue%3C%2Fa%3E.")
	if err != nil {
		log.Fatal(err)
	}
	_ = e.SetDescription("I want a custom linkout for Thunderbird.\nThis is the Github Issue.", altrep)
	fmt.Println(cal.Serialize())
}
