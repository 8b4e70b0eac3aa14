package handler

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func violationsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	out := make(map[string]string, len(ve.Violations))
	for _, v := range ve.Violations {
		out[v.Field] = v.Message
	}
	return out
}

func TestValidator_CreateUser_MissingEmail(t *testing.T) {
	v := NewValidator()
	err := v.Validate(createUserRequest{Fullname: "Martin Dupont", Password: "OpenClass21!", Age: intPtr(48)})

	got := violationsOf(t, err)
	if got["email"] != "This value should not be blank." {
		t.Fatalf("unexpected violations %v", got)
	}
	if len(got) != 1 {
		t.Fatalf("expected only email to fail, got %v", got)
	}
}

func TestValidator_CreateUser_CollectsAll(t *testing.T) {
	v := NewValidator()
	err := v.Validate(createUserRequest{Email: "not-an-email", Fullname: "Al", Password: "weakpassword", Age: intPtr(0)})

	got := violationsOf(t, err)
	want := map[string]string{
		"email":    "This value is not a valid email address.",
		"fullname": "This value is too short. It should have 3 characters or more.",
		"password": passwordMessage,
		"age":      "This value should be greater than 0.",
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestValidator_CreateUser_Valid(t *testing.T) {
	v := NewValidator()
	req := createUserRequest{Email: "martin@dupont.com", Fullname: "Martin Dupont", Password: "OpenClass21!", Age: intPtr(48)}
	if err := v.Validate(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_UpdatePatchesSkipAbsentFields(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(updateClientRequest{}); err != nil {
		t.Fatalf("empty patch should be valid: %v", err)
	}
	got := violationsOf(t, v.Validate(updateClientRequest{Name: strPtr("   ")}))
	if got["name"] != "This value should not be blank." {
		t.Fatalf("unexpected violations %v", got)
	}
	if err := v.Validate(updateUserRequest{Age: intPtr(33)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidator_MobilePrice(t *testing.T) {
	v := NewValidator()

	got := violationsOf(t, v.Validate(createMobileRequest{Name: "X1", Description: "d"}))
	if got["price"] != "This value should not be blank." {
		t.Fatalf("missing price: %v", got)
	}

	neg := decimal.NewFromInt(-1)
	got = violationsOf(t, v.Validate(createMobileRequest{Name: "X1", Description: "d", Price: &neg}))
	if got["price"] != "This value should be greater than or equal to 0." {
		t.Fatalf("negative price: %v", got)
	}

	zero := decimal.Zero
	if err := v.Validate(createMobileRequest{Name: "X1", Description: "d", Price: &zero}); err != nil {
		t.Fatalf("zero price should be allowed: %v", err)
	}
}

func TestStrongPassword(t *testing.T) {
	v := NewValidator()
	type passwordForm struct {
		P string `json:"p" validate:"password"`
	}
	cases := map[string]bool{
		"OpenClass21!": true,
		"Abcdefg1 ":    true,
		"openclass21!": false,
		"OPENCLASS21!": false,
		"OpenClass!!":  false,
		"OpenClass21":  false,
	}
	for pw, ok := range cases {
		err := v.Validate(passwordForm{P: pw})
		if (err == nil) != ok {
			t.Errorf("%q: valid=%v, want %v", pw, err == nil, ok)
		}
	}
}
