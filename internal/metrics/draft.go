package metrics

import "github.com/vamshikrishnam1/task-performance/internal/domain"

type memberDraft struct {
	raw      RawCounts
	computed *Computed
}

// Draft accumulates one in-progress report's per-member state. Each member
// holds raw counts plus an optional computed result; any write to a member's
// raw counts clears that member's computed result, so stale TCR/TPR values
// can never survive a raw edit. A draft is for a single session and is not
// safe for concurrent use.
type Draft struct {
	members map[domain.Member]memberDraft
}

func NewDraft() *Draft {
	return &Draft{members: make(map[domain.Member]memberDraft)}
}

// SetRaw replaces a member's raw counts and invalidates any previously
// computed metrics for that member.
func (d *Draft) SetRaw(member domain.Member, raw RawCounts) {
	d.members[member] = memberDraft{raw: raw}
}

// Restore seeds a member from previously assembled data, accepting the
// supplied computed values only when they match a fresh computation over the
// raw counts. A mismatch means the metrics predate a raw edit; the member is
// kept but left uncalculated.
func (d *Draft) Restore(member domain.Member, raw RawCounts, computed Computed) {
	fresh := Calculate(raw)
	if computed == fresh {
		d.members[member] = memberDraft{raw: raw, computed: &fresh}
		return
	}
	d.members[member] = memberDraft{raw: raw}
}

// CalculateAll runs the calculator for every member with entered data and
// returns how many members were computed.
func (d *Draft) CalculateAll() int {
	for member, md := range d.members {
		computed := Calculate(md.raw)
		d.members[member] = memberDraft{raw: md.raw, computed: &computed}
	}
	return len(d.members)
}

// Raw returns a member's entered counts.
func (d *Draft) Raw(member domain.Member) (RawCounts, bool) {
	md, ok := d.members[member]
	return md.raw, ok
}

// Computed returns a member's metrics if they were calculated after the
// member's last raw edit.
func (d *Draft) Computed(member domain.Member) (Computed, bool) {
	md, ok := d.members[member]
	if !ok || md.computed == nil {
		return Computed{}, false
	}
	return *md.computed, true
}

// CalculatedCount reports how many members currently have fresh metrics.
func (d *Draft) CalculatedCount() int {
	n := 0
	for _, md := range d.members {
		if md.computed != nil {
			n++
		}
	}
	return n
}

// PendingMembers lists members with entered data whose metrics have not been
// (re)calculated, in roster order. These members are excluded from a
// finalized report.
func (d *Draft) PendingMembers() []domain.Member {
	var pending []domain.Member
	for _, member := range domain.AllMembers {
		if md, ok := d.members[member]; ok && md.computed == nil {
			pending = append(pending, member)
		}
	}
	return pending
}

// Finalized builds the team data for submission: only members whose metrics
// are fresh are included, combining their raw counts with the computed
// TCR/TPR.
func (d *Draft) Finalized() map[domain.Member]domain.TeamMemberMetrics {
	finalized := make(map[domain.Member]domain.TeamMemberMetrics)
	for member, md := range d.members {
		if md.computed == nil {
			continue
		}
		finalized[member] = domain.TeamMemberMetrics{
			Assigned:  md.raw.Assigned,
			Completed: md.raw.Completed,
			Critical:  md.raw.Critical,
			Major:     md.raw.Major,
			Minor:     md.raw.Minor,
			TCR:       md.computed.TCR,
			TPR:       md.computed.TPR,
		}
	}
	return finalized
}

// Reset clears all entered and computed data.
func (d *Draft) Reset() {
	d.members = make(map[domain.Member]memberDraft)
}
