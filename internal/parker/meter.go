package parker

import (
	"fmt"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Meter tracks wall-clock, CPU, and memory deltas across a phase of the
// pipeline, the same way the source design measures its read/partition/
// solve/emit phases: take a reading at the phase's start, take another at
// its end, and report the deltas alongside a throughput figure once the
// phase has told it how much work it got done.
type Meter struct {
	now    time.Time
	user   float64
	system float64
	memory uint64
	work   float64
}

// NewMeter starts a new measurement window.
func NewMeter() *Meter {
	m := &Meter{now: time.Now()}
	m.user, m.system, m.memory = processTimes()
	return m
}

// SetWork records how many units of work (e.g. words read, solutions
// found) this window accounts for, enabling a throughput figure in
// Fields and String.
func (m *Meter) SetWork(work float64) {
	m.work = work
}

// Fields closes the measurement window and returns its deltas as
// logrus.Fields, ready to be attached to a structured log entry. Calling
// Fields resets the window to start again from now.
func (m *Meter) Fields() logrus.Fields {
	now := time.Now()
	user, system, memory := processTimes()

	elapsed := now.Sub(m.now).Seconds()
	dUser := user - m.user
	dSystem := system - m.system
	dMemory := memory - m.memory

	fields := logrus.Fields{
		"elapsed_s":    elapsed,
		"user_s":       dUser,
		"system_s":     dSystem,
		"cpu_pct":      100 * (dUser + dSystem) / elapsed,
		"rss_delta_mb": float64(dMemory) / (1024.0 * 1024.0),
	}
	if m.work > 0 && dUser >= 0.0001 {
		fields["work_per_cpu_sec"] = m.work / dUser
		fields["work_per_wall_sec"] = m.work / elapsed
	}

	m.now = now
	m.user = user
	m.system = system
	m.memory = memory
	return fields
}

// String renders the same deltas Fields does as a single human-readable
// line, kept for callers that want a quick text summary rather than
// structured fields (mirroring the source design's plain-text meter
// output for its -v flag).
func (m *Meter) String() string {
	f := m.Fields()
	if wps, ok := f["work_per_wall_sec"]; ok {
		return fmt.Sprintf("%12.6f (%10.3f+%9.3f) %7.3f%% %9.3f MiB %9.0f/sec",
			f["elapsed_s"], f["user_s"], f["system_s"], f["cpu_pct"], f["rss_delta_mb"], wps)
	}
	return fmt.Sprintf("%12.6f (%10.3f+%9.3f) %7.3f%% %9.3f MiB",
		f["elapsed_s"], f["user_s"], f["system_s"], f["cpu_pct"], f["rss_delta_mb"])
}

func processTimes() (user, system float64, size uint64) {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err != nil {
		logrus.WithError(err).Warn("parker: unable to gather resource usage data")
	}
	user = float64(usage.Utime.Sec) + float64(usage.Utime.Usec)/1e6
	system = float64(usage.Stime.Sec) + float64(usage.Stime.Usec)/1e6
	size = uint64(uint32(usage.Maxrss))
	return
}
