package eventscheduler

// readyQueue is a min-heap of events ready to run,
// ordered by (priority ascending, name ascending).
type readyQueue []readyEvent

type readyEvent struct {
	Priority int
	Name     string
}

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].Priority != q[j].Priority {
		return q[i].Priority < q[j].Priority
	}

	return q[i].Name < q[j].Name
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) {
	*q = append(*q, x.(readyEvent))
}

func (q *readyQueue) Pop() any {
	old := *q
	last := old[len(old)-1]
	*q = old[:len(old)-1]

	return last
}

// activeQueue is a min-heap of running events ordered by
// (end time ascending, name ascending as the stable tie-break).
type activeQueue []activeEvent

type activeEvent struct {
	EndTime   int
	Name      string
	Resources int
}

func (q activeQueue) Len() int { return len(q) }

func (q activeQueue) Less(i, j int) bool {
	if q[i].EndTime != q[j].EndTime {
		return q[i].EndTime < q[j].EndTime
	}

	return q[i].Name < q[j].Name
}

func (q activeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *activeQueue) Push(x any) {
	*q = append(*q, x.(activeEvent))
}

func (q *activeQueue) Pop() any {
	old := *q
	last := old[len(old)-1]
	*q = old[:len(old)-1]

	return last
}
