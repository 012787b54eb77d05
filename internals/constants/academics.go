package constants

// Jenis item nilai yang dikenal
var GradeItemKinds = []string{
	"quiz",
	"midterm",
	"final",
	"assignment",
	"project",
	"lab",
	"presentation",
}

// Status risiko per mata kuliah
const (
	RiskSafe     = "safe"
	RiskNormal   = "normal"
	RiskAtRisk   = "at_risk"
	RiskHighRisk = "high_risk"
)

// Status mata kuliah (turunan dari finalized_at + passed)
const (
	CourseStatusOpen            = "open"
	CourseStatusFinalizedPassed = "finalized_passed"
	CourseStatusFinalizedFailed = "finalized_failed"
)

// Status langganan premium
const (
	SubscriptionPending  = "pending"
	SubscriptionPaid     = "paid"
	SubscriptionExpired  = "expired"
	SubscriptionCanceled = "canceled"
)
