package feed

// Feed is a subscribed iCalendar URL whose events appear on the schedule
// next to the Google sources.
type Feed struct {
	UID  string
	Name string
	URL  string
}
