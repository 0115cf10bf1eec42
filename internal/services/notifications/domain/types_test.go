package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNew_AssignsFreshID(t *testing.T) {
	t.Parallel()

	a := New(7, "follow", []byte(`{"by":9}`))
	b := New(7, "follow", []byte(`{"by":9}`))

	if a.ID == uuid.Nil || b.ID == uuid.Nil {
		t.Fatal("notifications must carry a non-nil id")
	}
	if a.ID == b.ID {
		t.Fatal("ids must be unique per notification")
	}
	if a.Fid != 7 || a.Kind != "follow" || string(a.Payload) != `{"by":9}` {
		t.Fatalf("fields not carried: %+v", a)
	}
}
