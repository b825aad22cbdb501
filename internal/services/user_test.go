package services

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/store"
	"github.com/courseatlas/backend/internal/types"
)

func testUserService(t *testing.T) UserService {
	t.Helper()
	log := testLogger(t)
	path := filepath.Join(t.TempDir(), "users.json")
	return NewUserService(log, store.NewUserFileStore(log, path))
}

func TestSignupValidation(t *testing.T) {
	svc := testUserService(t)

	cases := []struct {
		name     string
		userName string
		email    string
		password string
		code     string
	}{
		{name: "blank_name", userName: "   ", email: "a@b.edu", password: "secret1", code: "invalid_name"},
		{name: "bad_email", userName: "Ana", email: "not-an-email", password: "secret1", code: "invalid_email"},
		{name: "email_missing_domain", userName: "Ana", email: "ana@", password: "secret1", code: "invalid_email"},
		{name: "short_password", userName: "Ana", email: "ana@uni.edu", password: "12345", code: "invalid_password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(tc.userName, tc.email, tc.password)
			wantAPIError(t, err, http.StatusBadRequest, tc.code)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := testUserService(t)
	if _, err := svc.Signup("Ana", "ana@uni.edu", "secret1"); err != nil {
		t.Fatalf("first Signup failed: %v", err)
	}
	_, err := svc.Signup("Other", "ANA@UNI.EDU", "secret2")
	wantAPIError(t, err, http.StatusConflict, "email_exists")
}

func TestLogin(t *testing.T) {
	svc := testUserService(t)
	created, err := svc.Signup("Ana", "Ana@Uni.edu", "secret1")
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if created.PasswordHash == "secret1" {
		t.Fatalf("password stored in plaintext")
	}

	user, err := svc.Login("ana@uni.edu", "secret1")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user.UID != created.UID {
		t.Fatalf("Login uid = %s, want %s", user.UID, created.UID)
	}

	_, err = svc.Login("ana@uni.edu", "wrongpass")
	wantAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")

	_, err = svc.Login("nobody@uni.edu", "secret1")
	wantAPIError(t, err, http.StatusUnauthorized, "invalid_credentials")
}

func TestWelcomeUnknownUID(t *testing.T) {
	svc := testUserService(t)
	_, err := svc.Welcome("1e0fbd9a-0000-0000-0000-000000000000")
	wantAPIError(t, err, http.StatusNotFound, "user_not_found")
}

func TestRegistrationLifecycle(t *testing.T) {
	svc := testUserService(t)
	user, err := svc.Signup("Ana", "ana@uni.edu", "secret1")
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	uid := user.UID.String()

	welcome, err := svc.Welcome(uid)
	if err != nil {
		t.Fatalf("Welcome failed: %v", err)
	}
	if welcome.Message != "Welcome, Ana!" || welcome.HasCompletedRegistration {
		t.Fatalf("fresh welcome = %+v", welcome)
	}

	course, _ := catalog.NewStore().FindCourse("CS101")
	regs, err := svc.CompleteRegistration(uid, []types.Course{course})
	if err != nil {
		t.Fatalf("CompleteRegistration failed: %v", err)
	}
	if regs.RegistrationStatus != "completed" || len(regs.RegisteredCourses) != 1 {
		t.Fatalf("registrations after completion = %+v", regs)
	}

	// Wholesale overwrite, not a merge.
	other, _ := catalog.NewStore().FindCourse("CS202")
	regs, err = svc.CompleteRegistration(uid, []types.Course{other})
	if err != nil {
		t.Fatalf("second CompleteRegistration failed: %v", err)
	}
	if len(regs.RegisteredCourses) != 1 || regs.RegisteredCourses[0].Code != "CS202" {
		t.Fatalf("registered courses = %+v, want only CS202", regs.RegisteredCourses)
	}

	regs, err = svc.ClearRegistrations(uid)
	if err != nil {
		t.Fatalf("ClearRegistrations failed: %v", err)
	}
	if regs.RegistrationStatus != "pending" || len(regs.RegisteredCourses) != 0 {
		t.Fatalf("registrations after clear = %+v", regs)
	}
}
