package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func principalWithRole(role string) *Principal {
	return &Principal{Email: role + "@h.com", Authorities: []string{Authority(role)}}
}

func TestDefaultPolicyPublicPaths(t *testing.T) {
	policy := DefaultPolicy()

	public := []string{
		"/",
		"/home",
		"/hospital/landing",
		"/health/live",
		"/health/ready",
		"/api/login",
		"/api/patients/register",
		"/api/appointments",
		"/api/feedback",
		"/api/doctors/fetchAllDoctorNames",
	}
	for _, path := range public {
		assert.Equal(t, DecisionAllow, policy.Decide(http.MethodGet, path, nil), "path %s", path)
		assert.Equal(t, DecisionAllow, policy.Decide(http.MethodPost, path, nil), "path %s", path)
	}
}

func TestDefaultPolicyRoleSections(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name      string
		path      string
		principal *Principal
		want      Decision
	}{
		{"admin on admin", "/api/admin/dashboard", principalWithRole("ADMIN"), DecisionAllow},
		{"doctor on admin", "/api/admin/dashboard", principalWithRole("DOCTOR"), DecisionForbidden},
		{"anonymous on admin", "/api/admin/dashboard", nil, DecisionUnauthenticated},
		{"doctor on doctor", "/api/doctor/appointments", principalWithRole("DOCTOR"), DecisionAllow},
		{"admin on doctor", "/api/doctor/appointments", principalWithRole("ADMIN"), DecisionAllow},
		{"nurse on doctor", "/api/doctor/appointments", principalWithRole("NURSE"), DecisionForbidden},
		{"nurse on nurse", "/api/nurse/tasks", principalWithRole("NURSE"), DecisionAllow},
		{"admin on nurse", "/api/nurse/tasks", principalWithRole("ADMIN"), DecisionForbidden},
		{"staff on staff", "/api/staff/rota", principalWithRole("STAFF"), DecisionAllow},
		{"patient on patients", "/api/patients/me", principalWithRole("PATIENT"), DecisionAllow},
		{"admin on patients", "/api/patients/me", principalWithRole("ADMIN"), DecisionAllow},
		{"doctor on patients", "/api/patients/me", principalWithRole("DOCTOR"), DecisionForbidden},
		{"anonymous on patients", "/api/patients/me", nil, DecisionUnauthenticated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Decide(http.MethodGet, tt.path, tt.principal))
		})
	}
}

func TestDefaultPolicyCatchAllRequiresAuthentication(t *testing.T) {
	policy := DefaultPolicy()

	assert.Equal(t, DecisionUnauthenticated, policy.Decide(http.MethodGet, "/api/prescriptions/my-prescriptions", nil))
	assert.Equal(t, DecisionAllow, policy.Decide(http.MethodGet, "/api/prescriptions/my-prescriptions", principalWithRole("PATIENT")))
	assert.Equal(t, DecisionAllow, policy.Decide(http.MethodGet, "/api/payments/verify", principalWithRole("STAFF")))
}

func TestDefaultPolicyFirstMatchWins(t *testing.T) {
	policy := DefaultPolicy()

	// The exact register path is listed before the patient prefix, so it
	// stays open to anonymous callers even though /api/patients/** is
	// restricted.
	assert.Equal(t, DecisionAllow, policy.Decide(http.MethodPost, "/api/patients/register", nil))
	assert.Equal(t, DecisionUnauthenticated, policy.Decide(http.MethodGet, "/api/patients/all", nil))

	// The doctor-names listing is exact, its siblings fall to the
	// catch-all.
	assert.Equal(t, DecisionAllow, policy.Decide(http.MethodGet, "/api/doctors/fetchAllDoctorNames", nil))
	assert.Equal(t, DecisionUnauthenticated, policy.Decide(http.MethodGet, "/api/doctors/all", nil))
}

func TestDefaultPolicyPreflightAlwaysAllowed(t *testing.T) {
	policy := DefaultPolicy()

	for _, path := range []string{"/api/admin/dashboard", "/api/nurse/tasks", "/anything/at/all"} {
		assert.Equal(t, DecisionAllow, policy.Decide(http.MethodOptions, path, nil), "path %s", path)
	}
}

func TestDefaultPolicyExactAppointmentsOnly(t *testing.T) {
	policy := DefaultPolicy()

	// Booking is public, everything deeper is not.
	assert.Equal(t, DecisionAllow, policy.Decide(http.MethodPost, "/api/appointments", nil))
	assert.Equal(t, DecisionUnauthenticated, policy.Decide(http.MethodGet, "/api/appointments/all", nil))
}

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/login", "/api/login", true},
		{"/api/login", "/api/login/extra", false},
		{"/api/admin/**", "/api/admin", true},
		{"/api/admin/**", "/api/admin/dashboard", true},
		{"/api/admin/**", "/api/administrators", false},
		{"/**", "/", true},
		{"/**", "/anything", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, matchPattern(tt.pattern, tt.path), "%s vs %s", tt.pattern, tt.path)
	}
}
