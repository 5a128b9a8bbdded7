package eventscheduler

// Interval is the computed execution window of one event,
// End is always Start plus the event duration.
type Interval struct {
	Start int
	End   int
}
