package domain

// PolicyCatalog is the fixed, ordered list of policy documents every new
// hire must acknowledge before registration. IDs follow the module/page
// scheme of the policy center (module 1 page 1 = "m1p1").
var PolicyCatalog = []string{
	"m1p1", "m1p2", "m1p3",
	"m2p1", "m2p2", "m2p3", "m2p4",
	"m3p1", "m3p2", "m3p3", "m3p4",
	"m4p1", "m4p2", "m4p3",
	"m5p1", "m5p2", "m5p3",
}

// baseToolCatalog lists the setup steps required of every role.
var baseToolCatalog = []string{
	"t0_account", // domain account & password received/set
	"t1",         // email client setup
	"t_zammad",   // ticketing platform login confirmed
}

// adminOnlyTools are appended to the base catalog for admin onboarding.
var adminOnlyTools = []string{
	"t_admin_iam", // IAM console access verified
}

// ToolCatalog returns the ordered tool checklist for the given role.
func ToolCatalog(role string) []string {
	tools := make([]string, 0, len(baseToolCatalog)+len(adminOnlyTools))
	tools = append(tools, baseToolCatalog...)
	if role == RoleAdmin {
		tools = append(tools, adminOnlyTools...)
	}
	return tools
}

// KnownPolicyID reports whether id belongs to the policy catalog.
func KnownPolicyID(id string) bool {
	return contains(PolicyCatalog, id)
}

// KnownToolID reports whether id belongs to the tool catalog for role.
func KnownToolID(role, id string) bool {
	return contains(ToolCatalog(role), id)
}

// IsOnboardingComplete is the completion predicate: every catalog policy must
// be agreed and every role-appropriate tool must be checked.
func IsOnboardingComplete(role string, agreed, completed []string) bool {
	for _, id := range PolicyCatalog {
		if !contains(agreed, id) {
			return false
		}
	}
	for _, id := range ToolCatalog(role) {
		if !contains(completed, id) {
			return false
		}
	}
	return true
}

// AppendUnique adds id to the ordered set if absent. Idempotent.
func AppendUnique(set []string, id string) []string {
	if contains(set, id) {
		return set
	}
	return append(set, id)
}

func contains(set []string, id string) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}
