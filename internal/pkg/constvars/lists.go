package constvars

// Accepted wrapper property names per list endpoint, in probe order. The
// upstream has shipped several envelope shapes over time; a bare array is
// always accepted first.
var (
	ListKeysPatients = []string{"patients", "pacientes", "data", "items", "results"}
	ListKeysPlans    = []string{"planes", "plans", "data", "items", "results"}
	ListKeysHistoria = []string{"historia", "historias", "records", "data", "items", "results"}
)
