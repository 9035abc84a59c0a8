package chrono

import (
	"fmt"
	"sync"
	"time"
)

// Instances are cached per zone and week-numbering parameter. They are
// immutable and cheap to build, so the lock only guards the map, never
// any computation.

// Caller-built fixed zones may share a name while differing in offset,
// so the key carries the zone's offset at the epoch as well.
type registryKey struct {
	zone               string
	offset             int
	minDaysInFirstWeek int
}

func zoneOffset(loc *time.Location) int {
	_, offset := time.Unix(0, 0).In(loc).Zone()
	return offset
}

var (
	registryMu sync.Mutex
	registry   = make(map[registryKey]*Chronology)
)

// HankeHenryUTC returns the UTC Hanke-Henry chronology.
func HankeHenryUTC() *Chronology {
	c, err := HankeHenry(time.UTC, 7)
	if err != nil {
		panic(err)
	}
	return c
}

// HankeHenry returns the Hanke-Henry chronology bound to the given
// zone. A nil location means UTC. minDaysInFirstWeek must be in 1..7;
// the calendar itself always has whole weeks, so 7 is the natural
// value.
func HankeHenry(loc *time.Location, minDaysInFirstWeek int) (*Chronology, error) {
	if minDaysInFirstWeek < 1 || minDaysInFirstWeek > 7 {
		return nil, fmt.Errorf("invalid min days in first week: %d", minDaysInFirstWeek)
	}
	if loc == nil {
		loc = time.UTC
	}

	key := registryKey{zone: loc.String(), offset: zoneOffset(loc), minDaysInFirstWeek: minDaysInFirstWeek}

	registryMu.Lock()
	defer registryMu.Unlock()
	if c, ok := registry[key]; ok {
		return c, nil
	}
	c := &Chronology{cal: hankeHenry{}, loc: loc, minDaysInFirstWeek: minDaysInFirstWeek}
	registry[key] = c
	return c, nil
}
