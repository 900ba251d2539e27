package entitlement

// FreeResumeLimit is how many resumes a user without an active
// subscription may own.
const FreeResumeLimit = 2

// Decision is the outcome of a quota check. Limit is -1 when unbounded.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
}

// DecideCreate gates a resume creation attempt. Admins are never
// limited; everyone else is capped by their entitlement's resume limit,
// or by the free tier when no entitlement is active.
func DecideCreate(role string, existing int64, ent *Entitlement) Decision {
	if role == "admin" {
		return Decision{Allowed: true, Limit: -1, Remaining: -1}
	}

	limit := FreeResumeLimit
	if ent != nil {
		limit = ent.ResumeLimit
	}

	remaining := limit - int(existing)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   existing < int64(limit),
		Limit:     limit,
		Remaining: remaining,
	}
}
