package registry

import (
	"testing"
)

type stubFrontend struct {
	id  string
	ran bool
}

func (s *stubFrontend) ID() string    { return s.id }
func (s *stubFrontend) Title() string { return "Stub " + s.id }
func (s *stubFrontend) Run(Session) error {
	s.ran = true
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Frontend { return &stubFrontend{id: "stub-a"} })
	Register("stub-b", func() Frontend { return &stubFrontend{id: "stub-b"} })

	if !Exists("stub-a") {
		t.Error("Exists(stub-a) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	f, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create(stub-b) error = %v", err)
	}
	if f.ID() != "stub-b" {
		t.Errorf("Create(stub-b).ID() = %q, expected %q", f.ID(), "stub-b")
	}
	if err := f.Run(Session{}); err != nil {
		t.Errorf("Run() error = %v", err)
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) error = nil, expected error")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("title for stub-a = %q, expected %q", info.Title, "Stub stub-a")
		}
		ids = append(ids, info.ID)
	}
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			t.Errorf("List() not sorted: %v", ids)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() did not panic")
		}
	}()
	Register("stub-dup", func() Frontend { return &stubFrontend{id: "stub-dup"} })
}
