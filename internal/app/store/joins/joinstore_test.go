package joinstore

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/testutil"
)

func TestExistsAndCreate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	s := New(db)

	groupID := primitive.NewObjectID()

	ok, err := s.Exists(ctx, groupID, "member@x.com")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("Exists true before any join")
	}

	j, err := s.Create(ctx, models.JoinRecord{
		GroupID:   groupID,
		UserEmail: "member@x.com",
		UserID:    "u1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if j.ID.IsZero() || j.JoinedAt.IsZero() {
		t.Error("id/joinedAt not stamped")
	}

	ok, err = s.Exists(ctx, groupID, "member@x.com")
	if err != nil {
		t.Fatalf("Exists after create: %v", err)
	}
	if !ok {
		t.Error("Exists false after join")
	}

	// Same user, different group.
	ok, err = s.Exists(ctx, primitive.NewObjectID(), "member@x.com")
	if err != nil {
		t.Fatalf("Exists other group: %v", err)
	}
	if ok {
		t.Error("membership must be scoped per group")
	}
}

func TestDeleteOwn_ScopedToCaller(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	s := New(db)

	groupID := primitive.NewObjectID()
	fx.CreateJoin(ctx, groupID, "victim@x.com", "u1")

	// Another member leaving cannot remove the victim's record.
	n, err := s.DeleteOwn(ctx, groupID, "attacker@x.com")
	if err != nil {
		t.Fatalf("DeleteOwn: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted %d records for a non-member", n)
	}

	n, err = s.DeleteOwn(ctx, groupID, "victim@x.com")
	if err != nil {
		t.Fatalf("DeleteOwn own: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted %d, want 1", n)
	}
}

func TestDeleteByGroup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	s := New(db)

	groupID := primitive.NewObjectID()
	otherGroup := primitive.NewObjectID()
	fx.CreateJoin(ctx, groupID, "a@x.com", "u1")
	fx.CreateJoin(ctx, groupID, "b@x.com", "u2")
	fx.CreateJoin(ctx, otherGroup, "c@x.com", "u3")

	n, err := s.DeleteByGroup(ctx, groupID)
	if err != nil {
		t.Fatalf("DeleteByGroup: %v", err)
	}
	if n != 2 {
		t.Errorf("deleted %d, want 2", n)
	}

	remaining, err := s.CountByGroup(ctx, otherGroup)
	if err != nil {
		t.Fatalf("CountByGroup: %v", err)
	}
	if remaining != 1 {
		t.Errorf("cascade touched another group (count %d)", remaining)
	}
}

func TestListByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx := testutil.TestContext(t)
	s := New(db)

	fx.CreateJoin(ctx, primitive.NewObjectID(), "member@x.com", "u1")
	fx.CreateJoin(ctx, primitive.NewObjectID(), "member@x.com", "u1")
	fx.CreateJoin(ctx, primitive.NewObjectID(), "other@x.com", "u2")

	joins, err := s.ListByEmail(ctx, "member@x.com")
	if err != nil {
		t.Fatalf("ListByEmail: %v", err)
	}
	if len(joins) != 2 {
		t.Errorf("len = %d, want 2", len(joins))
	}
	for _, j := range joins {
		if j.UserEmail != "member@x.com" {
			t.Errorf("leaked join for %q", j.UserEmail)
		}
	}

	none, err := s.ListByEmail(ctx, "nobody@x.com")
	if err != nil {
		t.Fatalf("ListByEmail empty: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("len = %d, want 0", len(none))
	}
}
