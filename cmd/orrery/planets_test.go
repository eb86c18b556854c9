package main

import (
	"strings"
	"testing"

	"github.com/skyfold/orrery/scene"
)

func TestCatalogTableListsEveryPlanet(t *testing.T) {
	out, err := catalogTable()
	if err != nil {
		t.Fatal(err)
	}
	for _, sp := range scene.Catalog() {
		if !strings.Contains(out, sp.Name) {
			t.Errorf("catalog table missing %s", sp.Name)
		}
	}
	if !strings.Contains(out, "SEMI-MAJOR") {
		t.Error("catalog table missing header row")
	}
}
