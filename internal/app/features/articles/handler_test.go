package articles

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/gatherhub/gatherhub/internal/domain/models"
	"github.com/gatherhub/gatherhub/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

type envelope struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func TestCreate_StampsBothOwnershipConventions(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := testutil.TestContext(t)

	id := testutil.TestIdentity("writer@x.com")
	req := testutil.NewJSONRequest(t, http.MethodPost, "/articles", map[string]any{
		"title":   "Why We Meet",
		"content": "<p>body</p><script>alert(1)</script>",
	})
	rr := httptest.NewRecorder()
	h.Create(rr, testutil.WithIdentity(req, id))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var resp envelope
	testutil.DecodeJSON(t, rr, &resp)

	oid, err := primitive.ObjectIDFromHex(resp.ID)
	if err != nil {
		t.Fatalf("id %q not a hex object id", resp.ID)
	}
	stored, err := h.Articles.GetByID(ctx, oid)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.AuthorEmail != "writer@x.com" || stored.UserEmail != "writer@x.com" {
		t.Errorf("ownership = author %q / user %q", stored.AuthorEmail, stored.UserEmail)
	}
	if stored.AuthorID != id.SubjectID || stored.UserID != id.SubjectID {
		t.Error("subject ids not stamped under both conventions")
	}
	if strings.Contains(stored.Content, "script") {
		t.Errorf("content not sanitized: %q", stored.Content)
	}
	if !strings.Contains(stored.Content, "<p>body</p>") {
		t.Errorf("allowed markup lost: %q", stored.Content)
	}
}

func TestUpdate_OnlyAuthor(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	a := fx.CreateArticle(ctx, "Original", "writer@x.com", "u1")

	body := map[string]any{"title": "Defaced"}
	req := testutil.NewJSONRequest(t, http.MethodPut, "/articles/"+a.ID.Hex(), body)
	req = testutil.WithChiURLParam(req, "id", a.ID.Hex())
	rr := httptest.NewRecorder()
	h.Update(rr, testutil.WithIdentity(req, testutil.TestIdentity("stranger@x.com")))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("stranger status = %d", rr.Code)
	}

	req = testutil.NewJSONRequest(t, http.MethodPut, "/articles/"+a.ID.Hex(), map[string]any{"title": "Revised"})
	req = testutil.WithChiURLParam(req, "id", a.ID.Hex())
	rr = httptest.NewRecorder()
	h.Update(rr, testutil.WithIdentity(req, models.Identity{Email: "writer@x.com", SubjectID: "u1"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("author status = %d, body %s", rr.Code, rr.Body.String())
	}
	stored, err := h.Articles.GetByID(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Title != "Revised" {
		t.Errorf("Title = %q", stored.Title)
	}
}

func TestUpdate_MatchesLegacyAuthorFields(t *testing.T) {
	h, _ := newTestHandler(t)
	ctx := testutil.TestContext(t)

	// Older documents carry only the author* pair.
	a, err := h.Articles.Create(ctx, models.Article{
		Title:       "Legacy",
		Content:     "<p>old</p>",
		AuthorEmail: "legacy@x.com",
		AuthorID:    "legacy-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := testutil.NewJSONRequest(t, http.MethodPut, "/articles/"+a.ID.Hex(), map[string]any{"title": "Still Mine"})
	req = testutil.WithChiURLParam(req, "id", a.ID.Hex())
	rr := httptest.NewRecorder()
	h.Update(rr, testutil.WithIdentity(req, models.Identity{Email: "legacy@x.com", SubjectID: "legacy-1"}))

	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, legacy author fields must authorize", rr.Code)
	}
}

func TestDelete_CascadesComments(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	a := fx.CreateArticle(ctx, "Doomed", "writer@x.com", "u1")
	fx.CreateComment(ctx, a.ID, "one", "reader@x.com", "r1")
	fx.CreateComment(ctx, a.ID, "two", "other@x.com", "r2")

	req := httptest.NewRequest(http.MethodDelete, "/articles/"+a.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", a.ID.Hex())
	rr := httptest.NewRecorder()
	h.Delete(rr, testutil.WithIdentity(req, models.Identity{Email: "writer@x.com", SubjectID: "u1"}))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	comments, err := h.Comments.ListByArticle(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListByArticle: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("%d comments survived the cascade", len(comments))
	}

	// The article itself is gone.
	getReq := httptest.NewRequest(http.MethodGet, "/articles/"+a.ID.Hex(), nil)
	getReq = testutil.WithChiURLParam(getReq, "id", a.ID.Hex())
	rr = httptest.NewRecorder()
	h.GetOne(rr, getReq)
	if rr.Code != http.StatusNotFound {
		t.Errorf("GetOne after delete = %d", rr.Code)
	}
}

func TestCreateComment_AuthorFromIdentity(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	a := fx.CreateArticle(ctx, "Commented", "writer@x.com", "u1")
	id := testutil.TestIdentity("reader@x.com")

	req := testutil.NewJSONRequest(t, http.MethodPost, "/articles/"+a.ID.Hex()+"/comments", map[string]any{
		"text":        "nice piece",
		"authorEmail": "spoof@x.com",
	})
	req = testutil.WithChiURLParam(req, "id", a.ID.Hex())
	rr := httptest.NewRecorder()
	h.CreateComment(rr, testutil.WithIdentity(req, id))

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}

	comments, err := h.Comments.ListByArticle(ctx, a.ID)
	if err != nil {
		t.Fatalf("ListByArticle: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("len = %d", len(comments))
	}
	if comments[0].AuthorEmail != "reader@x.com" {
		t.Errorf("AuthorEmail = %q, spoofed author must be ignored", comments[0].AuthorEmail)
	}
}

func TestCreateComment_UnknownArticle(t *testing.T) {
	h, _ := newTestHandler(t)

	missing := primitive.NewObjectID().Hex()
	req := testutil.NewJSONRequest(t, http.MethodPost, "/articles/"+missing+"/comments", map[string]any{"text": "hello"})
	req = testutil.WithChiURLParam(req, "id", missing)
	rr := httptest.NewRecorder()
	h.CreateComment(rr, testutil.WithIdentity(req, testutil.TestIdentity("reader@x.com")))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d", rr.Code)
	}
}

func TestDeleteComment_Policy(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	a := fx.CreateArticle(ctx, "Moderated", "writer@x.com", "u1")

	deleteComment := func(c models.Comment, as models.Identity) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodDelete, "/articles/"+a.ID.Hex()+"/comments/"+c.ID.Hex(), nil)
		req = testutil.WithChiURLParam(req, "id", a.ID.Hex())
		req = testutil.WithChiURLParam(req, "cid", c.ID.Hex())
		rr := httptest.NewRecorder()
		h.DeleteComment(rr, testutil.WithIdentity(req, as))
		return rr
	}

	// Comment author deletes their own.
	c1 := fx.CreateComment(ctx, a.ID, "mine", "reader@x.com", "r1")
	if rr := deleteComment(c1, models.Identity{Email: "reader@x.com", SubjectID: "r1"}); rr.Code != http.StatusOK {
		t.Errorf("author delete status = %d", rr.Code)
	}

	// Article author moderates someone else's comment.
	c2 := fx.CreateComment(ctx, a.ID, "rude", "troll@x.com", "t1")
	if rr := deleteComment(c2, models.Identity{Email: "writer@x.com", SubjectID: "u1"}); rr.Code != http.StatusOK {
		t.Errorf("moderation delete status = %d", rr.Code)
	}

	// A stranger can delete neither.
	c3 := fx.CreateComment(ctx, a.ID, "fine", "reader@x.com", "r1")
	if rr := deleteComment(c3, testutil.TestIdentity("stranger@x.com")); rr.Code != http.StatusForbidden {
		t.Errorf("stranger delete status = %d", rr.Code)
	}

	// Unknown comment id.
	ghost := models.Comment{ID: primitive.NewObjectID()}
	if rr := deleteComment(ghost, testutil.TestIdentity("reader@x.com")); rr.Code != http.StatusNotFound {
		t.Errorf("unknown comment status = %d", rr.Code)
	}
}

func TestDeleteComment_WrongArticleInURL(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	victim := fx.CreateArticle(ctx, "Victim", "writer@x.com", "u1")
	owned := fx.CreateArticle(ctx, "Owned", "attacker@x.com", "a1")
	c := fx.CreateComment(ctx, victim.ID, "keep me", "reader@x.com", "r1")

	// Owning an unrelated article must not grant moderation over a
	// comment parented elsewhere, even when that article is named in
	// the URL.
	req := httptest.NewRequest(http.MethodDelete, "/articles/"+owned.ID.Hex()+"/comments/"+c.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", owned.ID.Hex())
	req = testutil.WithChiURLParam(req, "cid", c.ID.Hex())
	rr := httptest.NewRecorder()
	h.DeleteComment(rr, testutil.WithIdentity(req, models.Identity{Email: "attacker@x.com", SubjectID: "a1"}))

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, cross-article delete must be refused", rr.Code)
	}
	comments, err := h.Comments.ListByArticle(ctx, victim.ID)
	if err != nil {
		t.Fatalf("ListByArticle: %v", err)
	}
	if len(comments) != 1 {
		t.Errorf("%d comments remain, the comment must survive", len(comments))
	}
}

func TestListComments_NewestFirst(t *testing.T) {
	h, fx := newTestHandler(t)
	ctx := testutil.TestContext(t)

	a := fx.CreateArticle(ctx, "Busy", "writer@x.com", "u1")
	fx.CreateComment(ctx, a.ID, "first", "r1@x.com", "r1")
	fx.CreateComment(ctx, a.ID, "second", "r2@x.com", "r2")

	req := httptest.NewRequest(http.MethodGet, "/articles/"+a.ID.Hex()+"/comments", nil)
	req = testutil.WithChiURLParam(req, "id", a.ID.Hex())
	rr := httptest.NewRecorder()
	h.ListComments(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var comments []models.Comment
	testutil.DecodeJSON(t, rr, &comments)
	if len(comments) != 2 {
		t.Fatalf("len = %d", len(comments))
	}
	if comments[0].Timestamp.Before(comments[1].Timestamp) {
		t.Error("comments not sorted newest first")
	}
}
