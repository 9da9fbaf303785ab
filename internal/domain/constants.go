package domain

// Prayer slide frequency
const (
	FrequencyDaily      = "Daily"
	FrequencyWeekly     = "Weekly"
	FrequencySunday     = "Sunday"
	FrequencyMidWeek    = "Mid Week"
	FrequencyEndOfMonth = "End of Month"
)

var Frequencies = []string{FrequencyDaily, FrequencyWeekly, FrequencySunday, FrequencyMidWeek, FrequencyEndOfMonth}

// Prayer request status
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResponded  = "Responded"
	StatusClosed     = "Closed"
)

var RequestStatuses = []string{StatusPending, StatusInProgress, StatusResponded, StatusClosed}

// Prayer request category
const (
	CategoryPersonal  = "Personal"
	CategoryFamily    = "Family"
	CategoryHealth    = "Health"
	CategoryFinancial = "Financial"
	CategorySpiritual = "Spiritual"
	CategoryOther     = "Other"
)

var RequestCategories = []string{CategoryPersonal, CategoryFamily, CategoryHealth, CategoryFinancial, CategorySpiritual, CategoryOther}

// Prayer request priority
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

var RequestPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// App user GGP status
const (
	GGPActive   = "Active"
	GGPPending  = "Pending"
	GGPInactive = "Inactive"
)

var GGPStatuses = []string{GGPActive, GGPPending, GGPInactive}

// Prayer resource category
const (
	ResourcePrayerGuide = "Prayer Guide"
	ResourcePrayerPoint = "Prayer Point"
	ResourceBooks       = "Books"
)

var ResourceCategories = []string{ResourcePrayerGuide, ResourcePrayerPoint, ResourceBooks}

// Live-content caps, enforced at create/activate time.
const (
	MaxActiveBroadcasts = 5
	MaxActiveVideos     = 10
	SliderSlots         = 4
)

// Quiz option bounds
const (
	MinQuizOptions = 2
	MaxQuizOptions = 4
)

func Contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
