package screen

import (
	"fmt"
	"io"
	"time"
)

// fpsRecordSize is the number of presentation timestamps kept per screen
const fpsRecordSize = 128

// fpsRecorder is a ring buffer of presentation timestamps in nanoseconds
type fpsRecorder struct {
	stamps [fpsRecordSize]int64
	next   int
	count  int
}

func newFpsRecorder() *fpsRecorder {
	return &fpsRecorder{}
}

func (r *fpsRecorder) record(ts int64) {
	r.stamps[r.next] = ts
	r.next = (r.next + 1) % fpsRecordSize
	if r.count < fpsRecordSize {
		r.count++
	}
}

// ordered returns the stored timestamps, oldest first
func (r *fpsRecorder) ordered() []int64 {
	out := make([]int64, 0, r.count)
	start := (r.next - r.count + fpsRecordSize) % fpsRecordSize
	for i := 0; i < r.count; i++ {
		out = append(out, r.stamps[(start+i)%fpsRecordSize])
	}
	return out
}

// average returns the mean frame rate over the recorded window, 0 when
// fewer than two frames were presented
func (r *fpsRecorder) average() float64 {
	stamps := r.ordered()
	if len(stamps) < 2 {
		return 0
	}
	span := time.Duration(stamps[len(stamps)-1] - stamps[0])
	if span <= 0 {
		return 0
	}
	return float64(len(stamps)-1) / span.Seconds()
}

func (r *fpsRecorder) dump(w io.Writer) {
	for _, ts := range r.ordered() {
		fmt.Fprintf(w, "%d\n", ts)
	}
	fmt.Fprintf(w, "average fps=%.2f\n", r.average())
}

func (r *fpsRecorder) clear() {
	r.stamps = [fpsRecordSize]int64{}
	r.next = 0
	r.count = 0
}
