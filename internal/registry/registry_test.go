package registry

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type stubBackend struct{ name string }

func (b stubBackend) Name() string        { return b.name }
func (b stubBackend) Description() string { return "stub " + b.name }
func (b stubBackend) Run(context.Context, Game, core.RuntimeConfig, *log.Logger) error {
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Backend { return stubBackend{"stub-b"} })
	Register("stub-a", func() Backend { return stubBackend{"stub-a"} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("registered backends should exist")
	}
	if Exists("missing") {
		t.Error("unregistered backend should not exist")
	}

	b, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.Name() != "stub-a" {
		t.Errorf("Create() returned %q", b.Name())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of unknown backend should fail")
	}

	list := List()
	var names []string
	for _, info := range list {
		names = append(names, info.Name)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("List() not sorted: %v", names)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Backend { return stubBackend{"stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Backend { return stubBackend{"stub-dup"} })
}
