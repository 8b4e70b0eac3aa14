package mongo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
	"github.com/AlixRomain/P7-Web-Service/internal/core/ports"
)

func TestMobileDocument_PreservesPrice(t *testing.T) {
	in := domain.Mobile{ID: 3, Name: "X1", Description: "d", Price: decimal.RequireFromString("449.99")}
	doc, err := newMobileDocument(&in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := doc.toDomain()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Price.Equal(in.Price) || out.Name != in.Name {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestUserDocument_RolesAndClient(t *testing.T) {
	clientID := int64(4)
	in := domain.User{ID: 9, Email: "a@b.test", Role: domain.RoleAdmin, CreatedAt: time.Now().UTC(), ClientID: &clientID}
	doc := newUserDocument(&in)
	if len(doc.Roles) != 3 {
		t.Fatalf("expected full admin bundle, got %v", doc.Roles)
	}
	out := doc.toDomain()
	if out.Role != domain.RoleAdmin || out.ClientID == nil || *out.ClientID != 4 {
		t.Fatalf("unexpected user: %+v", out)
	}
}

func TestKeywordFilter_EscapesRegex(t *testing.T) {
	f := keywordFilter(bson.M{}, "name", "a.b")
	re, ok := f["name"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex filter, got %#v", f["name"])
	}
	if re.Pattern != `a\.b` || re.Options != "i" {
		t.Fatalf("unexpected regex %+v", re)
	}
	if len(keywordFilter(bson.M{}, "name", "")) != 0 {
		t.Fatal("empty keyword should not filter")
	}
}

func TestPageOptions(t *testing.T) {
	opts := pageOptions(ports.SearchQuery{Order: "desc", Limit: 5, Page: 3})
	if *opts.Skip != 10 || *opts.Limit != 5 {
		t.Fatalf("unexpected skip/limit %d/%d", *opts.Skip, *opts.Limit)
	}
	sort, ok := opts.Sort.(bson.D)
	if !ok || sort[0].Value != -1 {
		t.Fatalf("unexpected sort %#v", opts.Sort)
	}
}
