package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-user-hub/models"
)

func TestBuildListUsersQuery(t *testing.T) {
	query, args, err := buildListUsersQuery()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(query, "SELECT ") {
		t.Errorf("expected SELECT query, got %q", query)
	}
	if !strings.Contains(query, "FROM users") {
		t.Errorf("expected FROM users, got %q", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC") {
		t.Errorf("expected newest-first ordering, got %q", query)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuildUpdateUserQuery_AllFields(t *testing.T) {
	name := "Ada Lovelace"
	email := "ada@x.com"
	imageURL := "https://images.example.com/user_profiles/2026/abc.png"

	update := models.UserUpdate{
		UserID:          1,
		Name:            &name,
		Email:           &email,
		ProfileImageURL: &imageURL,
	}

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, part := range []string{
		"UPDATE users SET",
		"updated_at = NOW()",
		"name = $",
		"email = $",
		"profile_image_url = $",
		"WHERE user_id = $",
		"RETURNING",
	} {
		if !strings.Contains(query, part) {
			t.Errorf("expected query to contain %q, got %q", part, query)
		}
	}

	// 3 SET values + user_id
	if len(args) != 4 {
		t.Errorf("expected 4 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateUserQuery_SingleField(t *testing.T) {
	name := "Ada"
	update := models.UserUpdate{UserID: 7, Name: &name}

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(query, "email =") {
		t.Errorf("did not expect email SET clause, got %q", query)
	}
	if strings.Contains(query, "profile_image_url =") {
		t.Errorf("did not expect profile_image_url SET clause, got %q", query)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args (name, user_id), got %v", args)
	}
	if args[0] != "Ada" {
		t.Errorf("expected first arg to be the new name, got %v", args[0])
	}
}

func TestBuildUpdateUserQuery_NoChanges(t *testing.T) {
	_, _, err := buildUpdateUserQuery(models.UserUpdate{UserID: 1})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}
