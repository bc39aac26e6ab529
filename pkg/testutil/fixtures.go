package testutil

// Fixed identifiers for deterministic testing. User IDs follow the
// SYNTHETIC_ prefix convention used by the dataset generator so test
// records can never be mistaken for real applicants.
const (
	TestUserID1  = "SYNTHETIC_0001"
	TestUserID2  = "SYNTHETIC_0002"
	TestTenantID = "tenant-agri-demo"
)
