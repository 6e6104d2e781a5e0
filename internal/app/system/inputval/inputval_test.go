package inputval

import (
	"testing"

	"github.com/gatherhub/gatherhub/internal/app/system/apperr"
)

func TestStruct(t *testing.T) {
	type req struct {
		GroupName  string `json:"groupName" validate:"required"`
		MaxMembers int    `json:"maxMembers" validate:"required,gt=0"`
		Email      string `json:"email" validate:"omitempty,email"`
	}

	t.Run("valid", func(t *testing.T) {
		if err := Struct(req{GroupName: "Go Meetup", MaxMembers: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing field reported by json name", func(t *testing.T) {
		err := Struct(req{MaxMembers: 10})
		ae := apperr.From(err)
		if ae.Kind != apperr.KindValidation {
			t.Fatalf("kind = %v", ae.Kind)
		}
		if ae.Msg != "groupName is required" {
			t.Errorf("Msg = %q", ae.Msg)
		}
	})

	t.Run("constraint failure", func(t *testing.T) {
		err := Struct(req{GroupName: "Go Meetup", MaxMembers: -1})
		ae := apperr.From(err)
		if ae.Msg != "maxMembers is invalid" {
			t.Errorf("Msg = %q", ae.Msg)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		err := Struct(req{GroupName: "Go Meetup", MaxMembers: 1, Email: "not-an-email"})
		if apperr.From(err).Msg != "email is invalid" {
			t.Errorf("err = %v", err)
		}
	})
}
