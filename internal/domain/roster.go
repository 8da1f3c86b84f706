package domain

// Member identifies a tracked team member. The roster is closed: report
// payloads referencing anyone else are rejected at the boundary.
type Member string

const (
	MemberDeepak  Member = "deepak"
	MemberJitin   Member = "jitin"
	MemberMinhaj  Member = "minhaj"
	MemberPrateek Member = "prateek"
	MemberAshish  Member = "ashish"
	MemberDevOps  Member = "devops"
	MemberQATeam  Member = "qateam"
	MemberVamshi  Member = "vamshi"
)

// AllMembers is the display order of the roster.
var AllMembers = []Member{
	MemberDeepak,
	MemberJitin,
	MemberMinhaj,
	MemberPrateek,
	MemberAshish,
	MemberDevOps,
	MemberQATeam,
	MemberVamshi,
}

// WeekOwner identifies the person accountable for a reporting week. Owners
// are a separate roster from members; an owner need not be a team member.
type WeekOwner string

const (
	OwnerDeepak   WeekOwner = "deepak"
	OwnerJitin    WeekOwner = "jitin"
	OwnerMinhaj   WeekOwner = "minhaj"
	OwnerPrateek  WeekOwner = "prateek"
	OwnerAshish   WeekOwner = "ashish"
	OwnerDheeraj  WeekOwner = "dheeraj"
	OwnerRavi     WeekOwner = "ravi"
	OwnerSahitya  WeekOwner = "sahitya"
	OwnerAbhishek WeekOwner = "abhishek"
	OwnerVamshi   WeekOwner = "vamshi"
)

var AllWeekOwners = []WeekOwner{
	OwnerDeepak,
	OwnerJitin,
	OwnerMinhaj,
	OwnerPrateek,
	OwnerAshish,
	OwnerDheeraj,
	OwnerRavi,
	OwnerSahitya,
	OwnerAbhishek,
	OwnerVamshi,
}

// ParseMember validates a raw identifier against the member roster.
func ParseMember(s string) (Member, bool) {
	for _, m := range AllMembers {
		if string(m) == s {
			return m, true
		}
	}
	return "", false
}

// ParseWeekOwner validates a raw identifier against the owner roster.
func ParseWeekOwner(s string) (WeekOwner, bool) {
	for _, o := range AllWeekOwners {
		if string(o) == s {
			return o, true
		}
	}
	return "", false
}
